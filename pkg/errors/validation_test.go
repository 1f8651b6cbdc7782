package errors

import (
	"math"
	"testing"
)

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"typical terminal", 80, 24, false},
		{"single cell", 1, 1, false},

		{"zero width", 0, 24, true},
		{"negative height", 80, -1, true},
		{"huge", 80, 20000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSize) {
				t.Errorf("ValidateSize(%d, %d) returned wrong error code: %v", tt.width, tt.height, err)
			}
		})
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		bounds  []float64
		wantErr bool
	}{
		{"ordered", []float64{0, 10}, false},
		{"negative range", []float64{-5, -1}, false},
		{"zero width", []float64{3, 3}, false},

		{"missing", nil, true},
		{"one value", []float64{1}, true},
		{"three values", []float64{1, 2, 3}, true},
		{"reversed", []float64{10, 0}, true},
		{"nan", []float64{math.NaN(), 1}, true},
		{"infinite", []float64{0, math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBounds("x_axis", tt.bounds)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBounds(%v) error = %v, wantErr %v", tt.bounds, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidBounds) {
				t.Errorf("ValidateBounds(%v) returned wrong error code: %v", tt.bounds, err)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "100ms", false},
		{"empty", "", false},
		{"wide", "高", false},

		{"newline", "a\nb", true},
		{"escape", "\x1b[31mred", true},
		{"tab", "a\tb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel("y_axis", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "chart.toml", false},
		{"valid nested", "charts/cpu/chart.toml", false},
		{"valid absolute", "/tmp/chart.toml", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidBounds,
		ErrCodeInvalidData,
		ErrCodeInvalidColor,
		ErrCodeInvalidSize,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
