// Package docx assembles and serializes Office Open XML word-processing
// documents (.docx).
//
// The package implements the narrow capability set the converter needs:
// headings, paragraphs with independently styleable runs, bulleted and
// numbered list items, and code paragraphs. The container is written by hand
// (archive/zip plus WordprocessingML parts) rather than through a document
// library; Word, LibreOffice, and Pages all open the result.
package docx

import (
	"fmt"
	"os"
	"strings"
)

// Default document fonts and sizing.
const (
	DefaultFontFamily     = "Calibri"
	DefaultCodeFontFamily = "Courier New"
	DefaultFontSizePoints = 11
)

// Style identifiers referenced from document.xml and defined in styles.xml.
const (
	styleHeadingPrefix = "Heading"
	styleListParagraph = "ListParagraph"
	styleNoSpacing     = "NoSpacing"
)

// Numbering definition IDs referenced from list paragraphs.
const (
	numIDBullet  = 1
	numIDDecimal = 2
)

// MaxHeadingLevel is the deepest heading level the style sheet defines.
const MaxHeadingLevel = 4

// Options configures document-wide defaults.
type Options struct {
	// FontFamily is the default font for body text. Empty means Calibri.
	FontFamily string

	// FontSizePoints is the default body font size. Zero means 11.
	FontSizePoints int

	// CodeFontFamily is the monospace font for code runs and code blocks.
	// Empty means Courier New.
	CodeFontFamily string
}

func (o Options) withDefaults() Options {
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.FontSizePoints <= 0 {
		o.FontSizePoints = DefaultFontSizePoints
	}
	if o.CodeFontFamily == "" {
		o.CodeFontFamily = DefaultCodeFontFamily
	}
	return o
}

// run is a single styled span of text within a paragraph.
type run struct {
	text string

	// font overrides the document default for this run. Empty means inherit.
	font string
}

// paragraph is one block-level element of the document body.
type paragraph struct {
	// style is the paragraph style ID, empty for Normal.
	style string

	// numID references a numbering definition for list items, zero otherwise.
	numID int

	runs []run
}

// Document is an append-only word-processing document under construction.
// The zero value is not usable; create one with New.
type Document struct {
	opts       Options
	paragraphs []paragraph
}

// New creates an empty document with the given options.
func New(opts Options) *Document {
	return &Document{opts: opts.withDefaults()}
}

// BlockCount returns the number of block-level elements appended so far.
func (d *Document) BlockCount() int {
	return len(d.paragraphs)
}

// AddHeading appends a heading at the given level (1 through 4).
// Out-of-range levels are clamped.
func (d *Document) AddHeading(level int, text string) {
	if level < 1 {
		level = 1
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	d.paragraphs = append(d.paragraphs, paragraph{
		style: fmt.Sprintf("%s%d", styleHeadingPrefix, level),
		runs:  []run{{text: text}},
	})
}

// Paragraph is a handle for appending runs to an open paragraph.
type Paragraph struct {
	doc *Document
	idx int
}

// AddParagraph appends an empty body paragraph and returns a handle for
// adding runs to it.
func (d *Document) AddParagraph() *Paragraph {
	d.paragraphs = append(d.paragraphs, paragraph{})
	return &Paragraph{doc: d, idx: len(d.paragraphs) - 1}
}

// AddRun appends a plain text run in the document's default font.
func (p *Paragraph) AddRun(text string) *Paragraph {
	para := &p.doc.paragraphs[p.idx]
	para.runs = append(para.runs, run{text: text})
	return p
}

// AddCodeRun appends an inline code run in the monospace font.
func (p *Paragraph) AddCodeRun(text string) *Paragraph {
	para := &p.doc.paragraphs[p.idx]
	para.runs = append(para.runs, run{text: text, font: p.doc.opts.CodeFontFamily})
	return p
}

// AddListItem appends one list-item paragraph, bulleted or numbered.
// Consecutive numbered items share a single numbering sequence.
func (d *Document) AddListItem(text string, numbered bool) {
	numID := numIDBullet
	if numbered {
		numID = numIDDecimal
	}
	d.paragraphs = append(d.paragraphs, paragraph{
		style: styleListParagraph,
		numID: numID,
		runs:  []run{{text: text}},
	})
}

// AddCodeBlock appends a code paragraph: no extra spacing, monospace font.
func (d *Document) AddCodeBlock(text string) {
	d.paragraphs = append(d.paragraphs, paragraph{
		style: styleNoSpacing,
		runs:  []run{{text: text, font: d.opts.CodeFontFamily}},
	})
}

// bodyXML renders the document body as WordprocessingML.
func (d *Document) bodyXML() string {
	var b strings.Builder

	for _, para := range d.paragraphs {
		b.WriteString("<w:p>")

		if para.style != "" || para.numID != 0 {
			b.WriteString("<w:pPr>")
			if para.style != "" {
				fmt.Fprintf(&b, `<w:pStyle w:val="%s"/>`, para.style)
			}
			if para.numID != 0 {
				fmt.Fprintf(&b, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, para.numID)
			}
			b.WriteString("</w:pPr>")
		}

		for _, r := range para.runs {
			b.WriteString("<w:r>")
			if r.font != "" {
				fmt.Fprintf(&b, `<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/></w:rPr>`,
					escapeXML(r.font), escapeXML(r.font), escapeXML(r.font))
			}
			fmt.Fprintf(&b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(r.text))
			b.WriteString("</w:r>")
		}

		b.WriteString("</w:p>")
	}

	return b.String()
}

// Save serializes the document to path, overwriting any existing file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := d.Write(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// escapeXML escapes text for embedding in XML character data and attributes.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
