// Package docx writes word-processing (.docx) documents.
//
// A [Document] is an ordered list of headings, paragraphs and inline
// pictures. The package is a thin layer over github.com/gomutex/godocx: the
// blocks are recorded as they are added and replayed onto a document built
// from the godocx default template, which supplies the Title and Heading1
// to Heading9 styles. The core properties (title, creator, identifier and
// timestamps) are written by this package.
//
// # Usage
//
//	doc := docx.New()
//	doc.SetTitle("Esquema de flujos")
//	doc.AddHeading("Esquema de flujos", 1)
//	doc.AddParagraph("Línea uno\nLínea dos")
//	if err := doc.AddPicture("diagram.png", docx.Inches(6.5)); err != nil {
//	    return err
//	}
//	if err := doc.Save("out/esquema.docx"); err != nil {
//	    return err
//	}
//
// Newlines in paragraph text become line breaks within the paragraph.
package docx
