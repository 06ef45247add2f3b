package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/units"
	godoc "github.com/gomutex/godocx/docx"
)

// corePropsPart is the package part holding the dc: metadata.
const corePropsPart = "docProps/core.xml"

// Save writes the document to path, creating parent directories and
// replacing any existing file. A partially written file is removed.
func (d *Document) Save(path string) error {
	return d.save(path, createFile)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}

func (d *Document) save(path string, create func(string) (io.WriteCloser, error)) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	f, err := create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	_, writeErr := d.WriteTo(f)
	closeErr := f.Close()

	if writeErr != nil {
		os.Remove(path)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(path)
		return fmt.Errorf("close file: %w", closeErr)
	}
	return nil
}

// WriteTo writes the document as a .docx package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	rd, err := d.build()
	if err != nil {
		return 0, err
	}
	var pkg bytes.Buffer
	if err := rd.Write(&pkg); err != nil {
		return 0, fmt.Errorf("write package: %w", err)
	}

	cw := &countingWriter{w: w}
	if err := d.copyPackage(cw, pkg.Bytes()); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// build replays the recorded blocks onto a fresh document from the default
// template, which carries the Title and Heading1-9 styles.
func (d *Document) build() (*godoc.RootDoc, error) {
	rd, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	for _, b := range d.blocks {
		switch b.kind {
		case blockHeading:
			if _, err := rd.AddHeading(b.text, uint(b.level)); err != nil {
				return nil, fmt.Errorf("add heading %q: %w", b.text, err)
			}
		case blockParagraph:
			addLines(rd.AddParagraph(""), b.text)
		case blockPicture:
			if _, err := rd.AddPicture(b.path, toInches(b.width), toInches(b.height)); err != nil {
				return nil, fmt.Errorf("add picture %s: %w", b.path, err)
			}
		}
	}
	return rd, nil
}

// addLines writes text as runs separated by line breaks.
func addLines(p *godoc.Paragraph, text string) {
	var run *godoc.Run
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if i > 0 {
			run.AddBreak(nil)
		}
		run = p.AddText(line)
	}
}

func toInches(emu int64) units.Inch {
	return units.Inch(float64(emu) / EMUPerInch)
}

// copyPackage copies src to w, replacing the core properties with this
// document's metadata.
func (d *Document) copyPackage(w io.Writer, src []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return fmt.Errorf("read package: %w", err)
	}

	zw := zip.NewWriter(w)
	for _, f := range zr.File {
		if f.Name == corePropsPart {
			continue
		}
		if err := zw.Copy(f); err != nil {
			return fmt.Errorf("copy %s: %w", f.Name, err)
		}
	}
	fw, err := zw.Create(corePropsPart)
	if err != nil {
		return fmt.Errorf("create %s in zip: %w", corePropsPart, err)
	}
	if _, err := io.WriteString(fw, d.coreProperties()); err != nil {
		return fmt.Errorf("write %s: %w", corePropsPart, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize package: %w", err)
	}
	return nil
}

func (d *Document) coreProperties() string {
	stamp := d.created.UTC().Format("2006-01-02T15:04:05Z")
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:title>%s</dc:title>
  <dc:creator>%s</dc:creator>
  <dc:identifier>%s</dc:identifier>
  <cp:lastModifiedBy>%s</cp:lastModifiedBy>
  <cp:revision>1</cp:revision>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		xmlEscape(d.title),
		xmlEscape(d.creator),
		xmlEscape(d.identifier),
		xmlEscape(d.creator),
		stamp, stamp,
	)
}

func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
