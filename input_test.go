package stockio

import (
	"errors"
	"testing"
)

func TestParseLots(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"2", 2, false},
		{" 10 ", 10, false},
		{"2.0", 2, false}, // integral value, fractional spelling
		{"2.5", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLots(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Errorf("ParseLots(%q) error = %v, want ErrInvalidQuantity", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLots(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLots(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"1500000", 1_500_000, false},
		{"0.5", 0.5, false},
		{" 750000 ", 750_000, false},
		{"0", 0, true},
		{"-100", 0, true},
		{"", 0, true},
		{"1,5", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidQuantity", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
