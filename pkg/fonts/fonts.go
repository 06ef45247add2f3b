// Package fonts loads the three font faces used by the flow diagram and
// degrades through a fallback chain instead of failing.
//
// The chain is tried in order until both the bold and the regular font can
// be loaded:
//
//  1. Font files named in [Options] (absolute paths or names looked up in
//     [Options.Dirs])
//  2. DejaVu Sans from the system font directories (via go-findfont)
//  3. The Go fonts embedded in golang.org/x/image
//  4. The built-in 7x13 bitmap face (metrics are approximate)
//
// [Load] never returns an error; the [Set.Source] field records which step
// supplied the faces.
package fonts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Face sizes in pixels.
const (
	TitleSize = 28.0
	BoxSize   = 20.0
	SmallSize = 16.0
)

// System font file names tried before the embedded fonts.
const (
	DefaultBold    = "DejaVuSans-Bold.ttf"
	DefaultRegular = "DejaVuSans.ttf"
)

// maxFontFileSize limits the size of font files read into memory.
const maxFontFileSize = 20 << 20

// Role selects one of the three faces of a [Set].
type Role int

const (
	RoleBox Role = iota
	RoleTitle
	RoleSmall
)

// Source identifies the step of the fallback chain that produced a [Set].
type Source string

const (
	SourceFile     Source = "file"
	SourceSystem   Source = "system"
	SourceEmbedded Source = "embedded"
	SourceBasic    Source = "basic"
)

// Options configures font lookup.
type Options struct {
	// Bold and Regular name font files to use instead of DejaVu Sans.
	// Relative names are looked up in Dirs.
	Bold    string
	Regular string

	// Dirs are extra directories searched for Bold and Regular.
	Dirs []string

	// Logger receives fallback diagnostics. Nil discards them.
	Logger *log.Logger
}

// Set holds the faces for one render invocation.
type Set struct {
	Title font.Face // bold, TitleSize
	Box   font.Face // bold, BoxSize
	Small font.Face // regular, SmallSize

	// Bold and Regular are the font files backing the faces.
	// Both are nil when Source is SourceBasic.
	Bold    []byte
	Regular []byte

	Source Source
}

// Face returns the face for role.
func (s *Set) Face(role Role) font.Face {
	switch role {
	case RoleTitle:
		return s.Title
	case RoleSmall:
		return s.Small
	default:
		return s.Box
	}
}

// Load resolves a font set using the fallback chain described in the package
// documentation.
func Load(opts Options) *Set {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.Bold != "" || opts.Regular != "" {
		bold, regular := opts.Bold, opts.Regular
		if bold == "" {
			bold = DefaultBold
		}
		if regular == "" {
			regular = DefaultRegular
		}
		s, err := loadFiles(bold, regular, opts.Dirs, false)
		if err == nil {
			s.Source = SourceFile
			logger.Debug("loaded configured fonts", "bold", bold, "regular", regular)
			return s
		}
		logger.Warn("configured fonts unavailable, falling back", "err", err)
	}

	s, err := loadFiles(DefaultBold, DefaultRegular, opts.Dirs, true)
	if err == nil {
		s.Source = SourceSystem
		logger.Debug("loaded system fonts", "bold", DefaultBold, "regular", DefaultRegular)
		return s
	}
	logger.Debug("system fonts unavailable", "err", err)

	s, err = Embedded()
	if err == nil {
		logger.Debug("using embedded Go fonts")
		return s
	}
	logger.Warn("embedded fonts unavailable, using bitmap face", "err", err)

	return Basic()
}

// Basic returns the last-resort set backed by the 7x13 bitmap face.
func Basic() *Set {
	return &Set{
		Title:  basicfont.Face7x13,
		Box:    basicfont.Face7x13,
		Small:  basicfont.Face7x13,
		Source: SourceBasic,
	}
}

// Embedded returns a set built from the Go fonts bundled with x/image.
func Embedded() (*Set, error) {
	s, err := fromData(gobold.TTF, goregular.TTF)
	if err != nil {
		return nil, err
	}
	s.Source = SourceEmbedded
	return s, nil
}

func loadFiles(bold, regular string, dirs []string, system bool) (*Set, error) {
	boldData, err := readFont(bold, dirs, system)
	if err != nil {
		return nil, err
	}
	regularData, err := readFont(regular, dirs, system)
	if err != nil {
		return nil, err
	}
	return fromData(boldData, regularData)
}

func fromData(bold, regular []byte) (*Set, error) {
	b, err := opentype.Parse(bold)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	r, err := opentype.Parse(regular)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}

	title, err := newFace(b, TitleSize)
	if err != nil {
		return nil, err
	}
	box, err := newFace(b, BoxSize)
	if err != nil {
		return nil, err
	}
	small, err := newFace(r, SmallSize)
	if err != nil {
		return nil, err
	}
	return &Set{Title: title, Box: box, Small: small, Bold: bold, Regular: regular}, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %.0fpx face: %w", size, err)
	}
	return face, nil
}

// readFont locates name as a path, then in dirs, then (when system is set)
// in the OS font directories.
func readFont(name string, dirs []string, system bool) ([]byte, error) {
	path, err := locate(name, dirs, system)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxFontFileSize {
		return nil, fmt.Errorf("font file %s too large: %d bytes (max %d)", path, info.Size(), maxFontFileSize)
	}
	return os.ReadFile(path)
}

func locate(name string, dirs []string, system bool) (string, error) {
	if fileExists(name) {
		return name, nil
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if fileExists(p) {
			return p, nil
		}
	}
	if system {
		p, err := findfont.Find(name)
		if err != nil {
			return "", fmt.Errorf("find %s: %w", name, err)
		}
		return p, nil
	}
	return "", fmt.Errorf("font %s not found", name)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
