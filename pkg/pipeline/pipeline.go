// Package pipeline generates the flowdoc artifacts: the integration diagram
// image and the word-processing document that embeds it.
//
// This package is the single entry point used by the CLI. It owns the fixed
// output file names, output directory handling, and the order in which the
// diagram and the document are produced.
//
// # Architecture
//
// A run has two stages:
//
//  1. Render: draw the fixed diagram to PNG (plus any extra formats) and
//     write the files into the output directory
//  2. Assemble: build the document narrative, embed the PNG, and save it
//
// Each stage can be run on its own with [Runner.GenerateImage] and
// [Runner.GenerateDocument], or together with [Runner.Generate].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Generate(ctx, pipeline.Options{OutputDir: "output"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.ImagePath, result.DocumentPath)
//
// Output files are overwritten on every run.
package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/flowdoc/pkg/errors"
	"github.com/matzehuels/flowdoc/pkg/fonts"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// ImageName is the file name of the rendered diagram.
	ImageName = "diagram_expedientes_flow.png"

	// DocumentName is the file name of the generated document.
	DocumentName = "Esquema_Flujos_GestorMapeos_ERP_Expedientes.docx"

	// DefaultOutputDir is used when no output directory is configured.
	DefaultOutputDir = "output"

	// MaxSupersample bounds the supersampling factor; 4x already means a
	// 6400x3200 working canvas.
	MaxSupersample = 4
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ExtraFormats are the formats that can be requested in addition to PNG.
var ExtraFormats = []string{FormatPDF, FormatSVG, FormatJSON}

// SupportedFormats are the formats accepted in Options.Formats. PNG is
// always written, so requesting it is a no-op.
var SupportedFormats = append([]string{FormatPNG}, ExtraFormats...)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options configures a run.
type Options struct {
	// OutputDir receives every generated file. Created on demand.
	OutputDir string `json:"output_dir,omitempty" toml:"output_dir"`

	// ImagePath is an existing image to embed instead of the rendered
	// diagram. Only used by GenerateDocument.
	ImagePath string `json:"image_path,omitempty" toml:"-"`

	// Formats lists extra diagram formats written next to the PNG.
	Formats []string `json:"formats,omitempty" toml:"formats"`

	// Supersample renders the PNG at this multiple and downsamples it.
	// Zero or one disables supersampling.
	Supersample int `json:"supersample,omitempty" toml:"supersample"`

	// Fonts selects font files. Missing files fall back silently.
	Fonts fonts.Options `json:"-" toml:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a run.
type Result struct {
	// ImagePath is the PNG that was rendered or embedded.
	ImagePath string

	// DocumentPath is the saved document. Empty for image-only runs.
	DocumentPath string

	// Artifacts maps each written diagram format to its file path.
	Artifacts map[string]string

	// FontSource records which step of the font fallback chain was used.
	FontSource fonts.Source

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	RenderTime    time.Duration
	AssembleTime  time.Duration
	ImageBytes    int64
	DocumentBytes int64
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that format is a supported format.
func ValidateFormat(format string) error {
	return errs.ValidateFormat(format, SupportedFormats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := errs.ValidateOutputPath(o.OutputDir); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Supersample < 0 || o.Supersample > MaxSupersample {
		return errs.New(errs.ErrCodeInvalidInput, "supersample must be between 0 and %d, got %d", MaxSupersample, o.Supersample)
	}
	o.Formats = normalizeFormats(o.Formats)
	o.validated = true
	return nil
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ImageFile returns the path of the rendered diagram in the output directory.
func (o *Options) ImageFile() string {
	return filepath.Join(o.outputDir(), ImageName)
}

// DocumentFile returns the path of the document in the output directory.
func (o *Options) DocumentFile() string {
	return filepath.Join(o.outputDir(), DocumentName)
}

// ArtifactFile returns the path of the diagram in the given format.
func (o *Options) ArtifactFile(format string) string {
	base := strings.TrimSuffix(ImageName, filepath.Ext(ImageName))
	return filepath.Join(o.outputDir(), base+"."+format)
}

// AllFormats returns PNG followed by the requested extra formats.
func (o *Options) AllFormats() []string {
	return append([]string{FormatPNG}, o.Formats...)
}

func (o *Options) outputDir() string {
	if o.OutputDir == "" {
		return DefaultOutputDir
	}
	return o.OutputDir
}

func (o *Options) ensureOutputDir() error {
	if err := os.MkdirAll(o.OutputDir, 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create output directory %s", o.OutputDir)
	}
	return nil
}

// normalizeFormats lower-cases formats and drops duplicates and png,
// keeping order.
func normalizeFormats(formats []string) []string {
	var out []string
	for _, f := range formats {
		f = strings.ToLower(f)
		if f != FormatPNG && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
