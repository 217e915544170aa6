// Package preflight inspects Markdown input for constructs the line-based
// converter does not render. The converter itself never looks at an AST; this
// check exists so users opting into strict mode find out up front that their
// tables or links will be flattened to plain text.
package preflight

import (
	"bytes"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Construct names reported in findings.
const (
	ConstructLink       = "link"
	ConstructImage      = "image"
	ConstructEmphasis   = "emphasis"
	ConstructBlockquote = "blockquote"
	ConstructTable      = "table"
	ConstructHTML       = "html"
	ConstructNestedList = "nested list"
	ConstructDeepHeader = "heading deeper than level 4"
)

// Finding is one unsupported construct located in the input.
type Finding struct {
	// Construct names what was found.
	Construct string

	// Line is the 1-based source line the construct starts on.
	Line int
}

// Check parses content as GitHub Flavored Markdown and returns a finding for
// every construct the converter would drop or flatten, ordered by line.
func Check(content []byte) ([]Finding, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	var findings []Finding
	add := func(construct string, n ast.Node) {
		findings = append(findings, Finding{
			Construct: construct,
			Line:      lineOf(n, content),
		})
	}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindLink, ast.KindAutoLink:
			add(ConstructLink, n)
		case ast.KindImage:
			add(ConstructImage, n)
		case ast.KindEmphasis:
			add(ConstructEmphasis, n)
		case ast.KindBlockquote:
			add(ConstructBlockquote, n)
		case east.KindTable:
			add(ConstructTable, n)
			return ast.WalkSkipChildren, nil
		case ast.KindHTMLBlock, ast.KindRawHTML:
			add(ConstructHTML, n)
		case ast.KindList:
			// A list nested under a list item is flattened to one level.
			if _, ok := n.Parent().(*ast.ListItem); ok {
				add(ConstructNestedList, n)
			}
		case ast.KindHeading:
			if heading, ok := n.(*ast.Heading); ok && heading.Level > 4 {
				add(ConstructDeepHeader, n)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Line < findings[j].Line
	})
	return findings, nil
}

// Summarize groups findings by construct name.
func Summarize(findings []Finding) map[string]int {
	if len(findings) == 0 {
		return nil
	}
	counts := make(map[string]int, len(findings))
	for _, f := range findings {
		counts[f.Construct]++
	}
	return counts
}

// lineOf resolves the 1-based source line of a node. Nodes without source
// lines of their own (tables, inline nodes) borrow the position of their
// first sourced descendant, then of their nearest block ancestor.
func lineOf(n ast.Node, content []byte) int {
	for node := n; node != nil; node = node.Parent() {
		if start, ok := segmentStart(node); ok && start <= len(content) {
			return bytes.Count(content[:start], []byte("\n")) + 1
		}
	}
	return 1
}

// segmentStart returns the byte offset of the first source segment found in
// node or its descendants.
func segmentStart(node ast.Node) (int, bool) {
	if node.Type() == ast.TypeBlock && node.Lines().Len() > 0 {
		return node.Lines().At(0).Start, true
	}
	if textNode, ok := node.(*ast.Text); ok {
		return textNode.Segment.Start, true
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if start, ok := segmentStart(child); ok {
			return start, true
		}
	}
	return 0, false
}
