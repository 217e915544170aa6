// Package mdscan classifies Markdown source into a flat, ordered block sequence.
//
// The scanner is deliberately line-oriented rather than AST-based: each source
// line (or contiguous run of lines, for fenced code) maps to at most one output
// block, and emission order always matches input order. This is the subset of
// Markdown the converter renders; everything else falls through to paragraphs.
package mdscan

// BlockKind classifies a block emitted by the scanner.
type BlockKind uint8

const (
	// KindHeading is an ATX heading, levels 1 through 4.
	KindHeading BlockKind = iota

	// KindParagraph is a plain text paragraph, possibly with inline code runs.
	KindParagraph

	// KindBullet is a single bulleted list item.
	KindBullet

	// KindNumber is a single numbered list item.
	KindNumber

	// KindCode is a fenced code block.
	KindCode
)

// String returns a human-readable name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindBullet:
		return "bullet"
	case KindNumber:
		return "number"
	case KindCode:
		return "code"
	default:
		return "unknown"
	}
}

// Run is a span of paragraph text. Code runs render in a monospace font.
type Run struct {
	Text string
	Code bool
}

// Block is one unit of output emitted by Scan.
//
// Which fields are populated depends on Kind:
//   - KindHeading: Level and Text.
//   - KindParagraph: Runs.
//   - KindBullet, KindNumber: Text.
//   - KindCode: Text, and Language if the fence carried an info string.
type Block struct {
	Kind BlockKind

	// Level is the heading level (1-4). Zero for non-headings.
	Level int

	// Text is the block payload for headings, list items, and code blocks.
	Text string

	// Runs holds the alternating plain/code spans of a paragraph.
	Runs []Run

	// Language is the fence info string of a code block ("go", "python", ...).
	// Empty when the fence had no info string.
	Language string

	// Line is the 1-based source line where the block begins.
	Line int
}

// PlainText returns the block's text content with styling information dropped.
// For paragraphs this is the concatenation of all run text in order.
func (b Block) PlainText() string {
	if b.Kind != KindParagraph {
		return b.Text
	}
	var s string
	for _, r := range b.Runs {
		s += r.Text
	}
	return s
}
