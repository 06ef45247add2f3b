package pipeline

import (
	"path/filepath"
	"testing"

	errs "github.com/matzehuels/flowdoc/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"pdf", false},
		{"svg", false},
		{"json", false},
		{"SVG", false}, // case-insensitive
		{"png", false}, // always written; accepted and dropped
		{"PNG", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "pdf"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	err := ValidateFormats([]string{"svg", "invalid"})
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("Invalid format should fail with %s, got %v", errs.ErrCodeInvalidFormat, err)
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Empty options should pass: %v", err)
	}

	if opts.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir should be %q, got %q", DefaultOutputDir, opts.OutputDir)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
	if got := opts.AllFormats(); len(got) != 1 || got[0] != FormatPNG {
		t.Errorf("AllFormats should be [png], got %v", got)
	}
}

func TestOptionsValidate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	writeFile(t, file, "x")

	tests := []struct {
		name string
		opts Options
		code errs.Code
	}{
		{"output dir is a file", Options{OutputDir: file}, errs.ErrCodeInvalidPath},
		{"unknown format", Options{Formats: []string{"gif"}}, errs.ErrCodeInvalidFormat},
		{"negative supersample", Options{Supersample: -1}, errs.ErrCodeInvalidInput},
		{"supersample too large", Options{Supersample: MaxSupersample + 1}, errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if got := errs.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err = %v)", got, tt.code, err)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Formats: []string{"PDF", "png", "svg", "pdf", "PNG"}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	want := []string{"pdf", "svg"}
	if len(opts.Formats) != len(want) || opts.Formats[0] != want[0] || opts.Formats[1] != want[1] {
		t.Fatalf("Formats = %v, want %v", opts.Formats, want)
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if len(opts.Formats) != len(want) {
		t.Error("Formats changed on second call")
	}
}

func TestOptionsPNGFormatIsImplicit(t *testing.T) {
	opts := Options{Formats: []string{"png", "json"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("png should be accepted: %v", err)
	}
	got := opts.AllFormats()
	want := []string{FormatPNG, FormatJSON}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("AllFormats = %v, want %v", got, want)
	}
}

func TestOptionsFiles(t *testing.T) {
	opts := Options{OutputDir: "out"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"image", opts.ImageFile(), filepath.Join("out", "diagram_expedientes_flow.png")},
		{"document", opts.DocumentFile(), filepath.Join("out", "Esquema_Flujos_GestorMapeos_ERP_Expedientes.docx")},
		{"pdf", opts.ArtifactFile(FormatPDF), filepath.Join("out", "diagram_expedientes_flow.pdf")},
		{"png", opts.ArtifactFile(FormatPNG), opts.ImageFile()},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	empty := Options{}
	if got, want := empty.ImageFile(), filepath.Join(DefaultOutputDir, ImageName); got != want {
		t.Errorf("default image file = %q, want %q", got, want)
	}
}
