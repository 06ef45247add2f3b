package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowdoc/pkg/diagram"
	errs "github.com/matzehuels/flowdoc/pkg/errors"
	"github.com/matzehuels/flowdoc/pkg/fonts"
	"github.com/matzehuels/flowdoc/pkg/observability"
)

// Runner executes runs. It holds no per-run state, so one Runner can serve
// several goroutines as long as they use different output directories.
type Runner struct {
	Logger *log.Logger

	// Fonts, when set, is used instead of loading fonts on every run.
	Fonts *fonts.Set
}

// NewRunner creates a runner logging to logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Generate renders the diagram and assembles the document embedding it.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string]string)}
	if err := r.render(ctx, opts, result); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := r.assemble(ctx, opts, result.ImagePath, result); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	return result, nil
}

// GenerateImage renders the diagram only and returns the PNG path.
func (r *Runner) GenerateImage(ctx context.Context, opts Options) (string, error) {
	if err := r.prepare(&opts); err != nil {
		return "", err
	}
	result := &Result{Artifacts: make(map[string]string)}
	if err := r.render(ctx, opts, result); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return result.ImagePath, nil
}

// GenerateDocument assembles the document only and returns its path.
//
// The embedded image is opts.ImagePath when set. Otherwise the diagram in
// the output directory is used, and rendered first if it does not exist.
func (r *Runner) GenerateDocument(ctx context.Context, opts Options) (string, error) {
	if err := r.prepare(&opts); err != nil {
		return "", err
	}

	result := &Result{Artifacts: make(map[string]string)}
	imagePath := opts.ImagePath
	switch {
	case imagePath != "":
		if err := errs.ValidateImagePath(imagePath); err != nil {
			return "", err
		}
	default:
		imagePath = opts.ImageFile()
		if _, err := os.Stat(imagePath); err != nil {
			if !os.IsNotExist(err) {
				return "", fmt.Errorf("stat %s: %w", imagePath, err)
			}
			opts.Logger.Debug("diagram not found, rendering it first", "path", imagePath)
			if err := r.render(ctx, opts, result); err != nil {
				return "", fmt.Errorf("render: %w", err)
			}
		}
	}

	if err := r.assemble(ctx, opts, imagePath, result); err != nil {
		return "", fmt.Errorf("assemble: %w", err)
	}
	return result.DocumentPath, nil
}

func (r *Runner) prepare(opts *Options) error {
	r.applyLogger(opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return opts.ensureOutputDir()
}

func (r *Runner) render(ctx context.Context, opts Options, result *Result) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	formats := opts.AllFormats()
	start := time.Now()
	observability.Render().OnRenderStart(ctx, formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, formats, time.Since(start), err)
	}()

	set := r.loadFonts(opts)
	artifacts, err := Render(diagram.Default(), set, opts)
	if err != nil {
		return err
	}

	for _, format := range formats {
		path := opts.ArtifactFile(format)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		result.Artifacts[format] = path
		opts.Logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(artifacts[format]))
	}

	result.ImagePath = result.Artifacts[FormatPNG]
	result.FontSource = set.Source
	result.Stats.RenderTime = time.Since(start)
	result.Stats.ImageBytes = int64(len(artifacts[FormatPNG]))

	opts.Logger.Info("rendered diagram",
		"path", result.ImagePath,
		"formats", formats,
		"fonts", set.Source,
		"duration", result.Stats.RenderTime)
	return nil
}

func (r *Runner) assemble(ctx context.Context, opts Options, imagePath string, result *Result) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	docPath := opts.DocumentFile()
	start := time.Now()
	var size int64
	observability.Document().OnAssembleStart(ctx, imagePath)
	defer func() {
		observability.Document().OnAssembleComplete(ctx, docPath, size, time.Since(start), err)
	}()

	doc, err := BuildDocument(imagePath)
	if err != nil {
		return err
	}
	if err := doc.Save(docPath); err != nil {
		return fmt.Errorf("save %s: %w", docPath, err)
	}
	if info, statErr := os.Stat(docPath); statErr == nil {
		size = info.Size()
	}

	result.ImagePath = imagePath
	result.DocumentPath = docPath
	result.Stats.AssembleTime = time.Since(start)
	result.Stats.DocumentBytes = size

	opts.Logger.Info("assembled document",
		"path", docPath,
		"image", imagePath,
		"bytes", size,
		"duration", result.Stats.AssembleTime)
	return nil
}

func (r *Runner) loadFonts(opts Options) *fonts.Set {
	if r.Fonts != nil {
		return r.Fonts
	}
	fo := opts.Fonts
	if fo.Logger == nil {
		fo.Logger = opts.Logger
	}
	return fonts.Load(fo)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
