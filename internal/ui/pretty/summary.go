package pretty

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yaklabco/md2docx/pkg/convert"
)

// kindOrder fixes the display order of block kinds in the summary.
var kindOrder = []string{"heading", "paragraph", "bullet", "number", "code"}

// kindPlurals maps kind names to their display plurals.
var kindPlurals = map[string]string{
	"heading":   "headings",
	"paragraph": "paragraphs",
	"bullet":    "bullets",
	"number":    "numbered items",
	"code":      "code blocks",
}

// FormatConversionSummary formats a conversion result as a single line.
// Example: "Converted notes.md -> notes.docx (9 blocks: 2 headings,
// 5 paragraphs, 2 code blocks) in 3ms".
func (s *Styles) FormatConversionSummary(result *convert.Result) string {
	var b strings.Builder

	b.WriteString(s.Success.Render("Converted "))
	b.WriteString(s.FilePath.Render(filepath.Base(result.InputPath)))
	b.WriteString(s.Arrow.Render(" -> "))
	b.WriteString(s.FilePath.Render(filepath.Base(result.OutputPath)))

	blockWord := "blocks"
	if result.Stats.BlocksTotal == 1 {
		blockWord = "block"
	}

	breakdown := formatKindBreakdown(result.Stats.BlocksByKind)
	if breakdown != "" {
		b.WriteString(s.Count.Render(fmt.Sprintf(" (%d %s: %s)", result.Stats.BlocksTotal, blockWord, breakdown)))
	} else {
		b.WriteString(s.Count.Render(fmt.Sprintf(" (%d %s)", result.Stats.BlocksTotal, blockWord)))
	}

	b.WriteString(s.Dim.Render(" in " + formatDuration(result.Stats.Duration)))

	return b.String() + "\n"
}

// formatDuration renders a duration at millisecond granularity.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return "<1ms"
	}
	return d.Round(time.Millisecond).String()
}

// FormatFindingsWarning formats the count of unsupported constructs found by
// preflight, truncating the breakdown to fit width columns. Returns "" when
// there are none.
func (s *Styles) FormatFindingsWarning(counts map[string]int, width int) string {
	if len(counts) == 0 {
		return ""
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	total := 0
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%d %s", counts[name], name))
		total += counts[name]
	}

	constructWord := "constructs"
	if total == 1 {
		constructWord = "construct"
	}

	head := fmt.Sprintf("%d unsupported %s flattened", total, constructWord)
	detail := truncateList(parts, width-len(head)-3)

	return s.Warning.Render(head) + s.Dim.Render(" ("+detail+")") + "\n"
}

// truncateList joins parts with ", ", dropping trailing entries when the
// joined list would not fit in max columns.
func truncateList(parts []string, max int) string {
	joined := strings.Join(parts, ", ")
	if max <= 0 || len(joined) <= max {
		return joined
	}
	for len(parts) > 1 {
		parts = parts[:len(parts)-1]
		joined = strings.Join(parts, ", ") + ", ..."
		if len(joined) <= max {
			return joined
		}
	}
	return parts[0]
}

func formatKindBreakdown(byKind map[string]int) string {
	var parts []string
	for _, kind := range kindOrder {
		count := byKind[kind]
		if count == 0 {
			continue
		}
		name := kindPlurals[kind]
		if count == 1 {
			name = kind
			if kind == "number" {
				name = "numbered item"
			}
			if kind == "code" {
				name = "code block"
			}
		}
		parts = append(parts, fmt.Sprintf("%d %s", count, name))
	}
	return strings.Join(parts, ", ")
}
