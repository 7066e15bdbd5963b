package errors

import (
	"strings"
	"testing"
)

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"a40e4c", false},
		{"#A40E4C", false},
		{"fff", true},
		{"#12345g", true},
		{"", true},
		{"##a40e4c", true},
	}
	for _, tt := range tests {
		err := ValidateHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidPalette) {
			t.Errorf("ValidateHexColor(%q) code = %v, want %v", tt.in, GetCode(err), ErrCodeInvalidPalette)
		}
	}
}

func TestValidatePaletteName(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"earthy", false},
		{"desertNight", false},
		{"my_palette-2", false},
		{"", true},
		{"2fast", true},
		{"has space", true},
		{strings.Repeat("a", 65), true},
	}
	for _, tt := range tests {
		err := ValidatePaletteName(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePaletteName(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"mosaic.svg", false},
		{"out/frames/0001.png", false},
		{"/tmp/mosaic.gif", false},
		{"", true},
		{"out/", true},
		{"bad\x00name", true},
		{strings.Repeat("a", 501), true},
	}
	for _, tt := range tests {
		err := ValidateOutputPath(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestValidateRecordID(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"0b7e3a52-6f0c-4b7e-9a4e-2d3c1f0e9a11", false},
		{"0B7E3A52-6F0C-4B7E-9A4E-2D3C1F0E9A11", false},
		{"0b7e3a52x6f0c-4b7e-9a4e-2d3c1f0e9a11", true},
		{"0b7e3a52-6f0c-4b7e-9a4e-2d3c1f0e9a1", true},
		{"zb7e3a52-6f0c-4b7e-9a4e-2d3c1f0e9a11", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateRecordID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRecordID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
