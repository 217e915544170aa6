package mdscan

import "strings"

// SplitLines splits content into lines without their terminators.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{}
	}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Scan runs the line classifier over content and returns the emitted blocks.
//
// Classification is first-match-wins, per line, on the whitespace-trimmed form:
//
//  1. Empty line: skipped, no block.
//  2. "#### " / "### " / "## " / "# " prefix: heading level 4..1. Longer
//     prefixes are tested first so "####" is never taken for "#".
//  3. "```" prefix: fenced code. All raw lines up to (not including) the next
//     line whose trimmed form starts with "```" become one code block, joined
//     with no separator. The closing fence is consumed. A fence left open at
//     end of input consumes the remainder. An empty fence emits nothing.
//  4. "- " or "* " prefix: bulleted list item.
//  5. Leading digit with ". " inside the first five characters: numbered list
//     item; the text is everything after the first ". ".
//  6. Anything else: paragraph, split on backticks into alternating plain and
//     inline-code runs.
//
// Blocks are returned in source order.
func Scan(content []byte) []Block {
	lines := SplitLines(content)
	var blocks []Block

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		switch {
		case line == "":
			i++

		case strings.HasPrefix(line, "#### "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 4, Text: line[5:], Line: i + 1})
			i++

		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 3, Text: line[4:], Line: i + 1})
			i++

		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 2, Text: line[3:], Line: i + 1})
			i++

		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 1, Text: line[2:], Line: i + 1})
			i++

		case strings.HasPrefix(line, "```"):
			block, next := scanFence(lines, i)
			if block != nil {
				blocks = append(blocks, *block)
			}
			i = next

		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Kind: KindBullet, Text: line[2:], Line: i + 1})
			i++

		case isNumberedItem(line):
			_, text, _ := strings.Cut(line, ". ")
			blocks = append(blocks, Block{Kind: KindNumber, Text: text, Line: i + 1})
			i++

		default:
			blocks = append(blocks, Block{
				Kind: KindParagraph,
				Runs: splitInline(line),
				Line: i + 1,
			})
			i++
		}
	}

	return blocks
}

// scanFence consumes a fenced code block starting at the opening fence on
// lines[start]. It returns the code block (nil when the fence body is empty)
// and the index of the first unconsumed line.
func scanFence(lines []string, start int) (*Block, int) {
	opening := strings.TrimSpace(lines[start])
	info := strings.TrimSpace(strings.TrimPrefix(opening, "```"))

	var body strings.Builder
	consumed := 0

	i := start + 1
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		// Raw line content, untrimmed: indentation inside the fence is payload.
		body.WriteString(lines[i])
		consumed++
		i++
	}

	// Consume the closing fence if we stopped on one rather than at EOF.
	if i < len(lines) {
		i++
	}

	if consumed == 0 {
		return nil, i
	}

	return &Block{
		Kind:     KindCode,
		Text:     body.String(),
		Language: info,
		Line:     start + 1,
	}, i
}

// numberedPrefixWindow bounds how far into a line the ". " marker of a
// numbered list item may appear.
const numberedPrefixWindow = 5

// isNumberedItem reports whether a trimmed line looks like a numbered list
// item: it starts with a digit and contains ". " within the first five
// characters. The window admits multi-digit indices ("10. item") but it is a
// heuristic: any sentence opening with "N. " is taken for a list item too.
func isNumberedItem(line string) bool {
	if line == "" || line[0] < '0' || line[0] > '9' {
		return false
	}
	window := line
	if len(window) > numberedPrefixWindow {
		window = window[:numberedPrefixWindow]
	}
	return strings.Contains(window, ". ")
}

// splitInline splits a paragraph line on backticks into alternating plain and
// inline-code runs. Even-indexed segments are plain, odd-indexed segments are
// code. An unmatched trailing backtick degrades gracefully: the final segment
// simply stays code or plain according to its index. Empty segments produce
// no run.
func splitInline(line string) []Run {
	segments := strings.Split(line, "`")
	runs := make([]Run, 0, len(segments))

	for idx, segment := range segments {
		if segment == "" {
			continue
		}
		runs = append(runs, Run{Text: segment, Code: idx%2 == 1})
	}

	return runs
}
