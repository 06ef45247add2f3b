package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/flowdoc/pkg/errors"
	"github.com/matzehuels/flowdoc/pkg/pipeline"
)

// runCLI executes the root command with args and returns stdout and logs.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestRootGeneratesBoth(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "-o", dir)
	if err != nil {
		t.Fatalf("flowdoc: %v", err)
	}

	want := "image:" + filepath.Join(dir, pipeline.ImageName) + "\n" +
		"doc:" + filepath.Join(dir, pipeline.DocumentName) + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	for _, name := range []string{pipeline.ImageName, pipeline.DocumentName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestGenerateCommandFormats(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "generate", "-o", dir, "--format", "pdf,json")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, name := range []string{
		pipeline.ImageName,
		"diagram_expedientes_flow.pdf",
		"diagram_expedientes_flow.json",
		pipeline.DocumentName,
	} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
		if !strings.Contains(out, path) {
			t.Errorf("output does not list %s", path)
		}
	}
}

func TestImageCommand(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, "image", "-o", dir); err != nil {
		t.Fatalf("image: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, pipeline.ImageName)); err != nil {
		t.Errorf("image not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, pipeline.DocumentName)); !os.IsNotExist(err) {
		t.Error("image command wrote a document")
	}
}

func TestDocCommand(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, "doc", "-o", dir); err != nil {
		t.Fatalf("doc: %v", err)
	}
	for _, name := range []string{pipeline.ImageName, pipeline.DocumentName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestDocCommandMissingImage(t *testing.T) {
	_, _, err := runCLI(t, "doc", "-o", t.TempDir(), "--image", filepath.Join(t.TempDir(), "nope.png"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := runCLI(t, "image", "-o", t.TempDir(), "--format", "bmp")
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want %s", err, errs.ErrCodeInvalidFormat)
	}
}

func TestImageCommandPNGFormat(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "image", "-o", dir, "--format", "png")
	if err != nil {
		t.Fatalf("image --format png: %v", err)
	}
	if got := strings.Count(out, pipeline.ImageName); got != 1 {
		t.Errorf("image listed %d times, want 1:\n%s", got, out)
	}
}

func TestLayoutCommand(t *testing.T) {
	out, _, err := runCLI(t, "layout")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	var layout struct {
		Width  int               `json:"width"`
		Boxes  []json.RawMessage `json:"boxes"`
		Arrows []json.RawMessage `json:"arrows"`
	}
	if err := json.Unmarshal([]byte(out), &layout); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if layout.Width != 1600 || len(layout.Boxes) != 6 || len(layout.Arrows) != 5 {
		t.Errorf("layout = width %d, %d boxes, %d arrows", layout.Width, len(layout.Boxes), len(layout.Arrows))
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(out, "flowdoc version ") {
		t.Errorf("output = %q", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "bash completion"},
		{"zsh", "#compdef flowdoc"},
		{"fish", "flowdoc"},
		{"powershell", "Register-ArgumentCompleter"},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, _, err := runCLI(t, "completion", tt.shell)
			if err != nil {
				t.Fatalf("completion %s: %v", tt.shell, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("completion %s output missing %q", tt.shell, tt.want)
			}
		})
	}

	if _, _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
