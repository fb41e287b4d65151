package validation

import (
	"testing"

	"github.com/Pordilz/habit-tracker/internal/constants"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Morning Run", false},
		{"empty", "", true},
		{"whitespace only", "  \t ", true},
		{"leading whitespace kept", " Run", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Name(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Name(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestPeriodicityValue(t *testing.T) {
	tests := []struct {
		name    string
		input   constants.Periodicity
		wantErr bool
	}{
		{"daily", constants.PeriodicityDaily, false},
		{"weekly", constants.PeriodicityWeekly, false},
		{"monthly rejected", constants.Periodicity("monthly"), true},
		{"empty rejected", constants.Periodicity(""), true},
		{"case sensitive", constants.Periodicity("Daily"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PeriodicityValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("PeriodicityValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if _, ok := err.(*ValidationError); !ok {
					t.Errorf("PeriodicityValue(%q) error = %T, want *ValidationError", tt.input, err)
				}
			}
		})
	}
}

func TestParsePeriodicity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    constants.Periodicity
		wantErr bool
	}{
		{"lowercase daily", "daily", constants.PeriodicityDaily, false},
		{"mixed case", "Weekly", constants.PeriodicityWeekly, false},
		{"surrounding whitespace", "  daily ", constants.PeriodicityDaily, false},
		{"unknown", "fortnightly", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriodicity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePeriodicity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePeriodicity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
