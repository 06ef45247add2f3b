package docx

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/google/uuid"
)

// EMUPerInch is the number of English Metric Units in one inch.
const EMUPerInch = 914400

const maxImageFileSize = 50 << 20

// maxHeadingLevel is the deepest built-in heading style.
const maxHeadingLevel = 9

// Inches converts a length in inches to EMU.
func Inches(in float64) int64 {
	return int64(in * EMUPerInch)
}

// Document is an in-memory word-processing document. Blocks are recorded
// as they are added and turned into a package when the document is written.
type Document struct {
	title      string
	creator    string
	identifier string
	created    time.Time

	blocks []block
}

// New returns an empty document with a random identifier.
func New() *Document {
	return &Document{
		creator:    "flowdoc",
		identifier: uuid.NewString(),
		created:    time.Now(),
	}
}

// SetTitle sets the dc:title core property.
func (d *Document) SetTitle(title string) { d.title = title }

// SetCreator sets the dc:creator core property.
func (d *Document) SetCreator(creator string) { d.creator = creator }

// SetIdentifier sets the dc:identifier core property.
func (d *Document) SetIdentifier(id string) { d.identifier = id }

// SetCreated sets the creation and modification timestamps.
func (d *Document) SetCreated(t time.Time) { d.created = t }

// Title returns the dc:title core property.
func (d *Document) Title() string { return d.title }

// Identifier returns the dc:identifier core property.
func (d *Document) Identifier() string { return d.identifier }

// AddHeading appends a heading. Level 0 uses the Title style; levels 1 to 9
// use Heading1 to Heading9. Out-of-range levels are clamped.
func (d *Document) AddHeading(text string, level int) {
	level = max(0, min(level, maxHeadingLevel))
	d.blocks = append(d.blocks, block{kind: blockHeading, text: text, level: level})
}

// AddParagraph appends a body paragraph. Newlines become line breaks.
func (d *Document) AddParagraph(text string) {
	d.blocks = append(d.blocks, block{kind: blockParagraph, text: text})
}

// AddPicture appends a paragraph holding the image at path, scaled to width
// EMU with its aspect ratio preserved. PNG, JPEG and GIF are supported.
//
// The file is checked now and read again when the document is written.
func (d *Document) AddPicture(path string, width int64) error {
	if width <= 0 {
		return fmt.Errorf("picture width must be positive, got %d", width)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat image %s: %w", path, err)
	}
	if info.Size() > maxImageFileSize {
		return fmt.Errorf("image file %s too large: %d bytes (max %d)", path, info.Size(), maxImageFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image %s: %w", path, err)
	}
	cfg, _, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode image %s: %w", path, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("image %s has no pixels", path)
	}

	d.blocks = append(d.blocks, block{
		kind:   blockPicture,
		path:   path,
		width:  width,
		height: width * int64(cfg.Height) / int64(cfg.Width),
	})
	return nil
}

// Paragraphs returns the text of every heading and paragraph in order.
// Pictures are skipped.
func (d *Document) Paragraphs() []string {
	var out []string
	for _, b := range d.blocks {
		if b.kind != blockPicture {
			out = append(out, b.text)
		}
	}
	return out
}

// Pictures returns the number of inline pictures.
func (d *Document) Pictures() int {
	n := 0
	for _, b := range d.blocks {
		if b.kind == blockPicture {
			n++
		}
	}
	return n
}

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockPicture
)

type block struct {
	kind  blockKind
	text  string
	level int

	// picture
	path          string
	width, height int64 // EMU
}
