package errors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"existing dir", dir, false},
		{"missing dir", filepath.Join(dir, "new", "output"), false},
		{"relative", "output", false},
		{"parent", "../output", false},

		{"empty", "", true},
		{"existing file", file, true},
		{"null byte", "out\x00put", true},
		{"control char", "out\x01put", true},
		{"newline", "out\nput", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "diagram.png")
	if err := os.WriteFile(img, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input string
		code  Code
	}{
		{"existing file", img, ""},
		{"missing file", filepath.Join(dir, "missing.png"), ErrCodeFileNotFound},
		{"directory", dir, ErrCodeInvalidPath},
		{"empty", "", ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.input)
			if got := GetCode(err); got != tt.code {
				t.Errorf("ValidateImagePath(%q) code = %q, want %q (err = %v)", tt.input, got, tt.code, err)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"pdf", "svg", "json"}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"pdf", "pdf", false},
		{"upper case", "SVG", false},
		{"json", "json", false},

		{"empty", "", true},
		{"unknown", "bmp", true},
		{"png is not extra", "png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, supported)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}
