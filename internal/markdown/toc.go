package markdown

import "strings"

// Heading is a table-of-contents entry derived from a document body. Level is
// 2 or 3; ID matches the anchor the renderer assigns to the same heading.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// ExtractHeadings scans the raw body for level-2 and level-3 heading lines
// without rendering the document, so a table of contents can be built before
// (or instead of) a full parse. Lines inside fenced code blocks are ignored.
// Anchor ids use the same derivation and duplicate suffixing as Parse.
func ExtractHeadings(body string) []Heading {
	anchors := newAnchorSet()
	var headings []Heading

	inFence := false
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		level, text := headingLine(trimmed)
		if level < 2 || level > 3 {
			continue
		}
		text = inlinePlain(text)
		headings = append(headings, Heading{
			ID:    anchors.claim(text),
			Text:  text,
			Level: level,
		})
	}

	return headings
}

// inlinePlain reduces inline markdown in a heading line to the plain text the
// renderer flattens the same heading to: link and image labels survive,
// destinations are dropped, emphasis delimiters are removed. Code span
// backticks are kept, matching nodeText.
func inlinePlain(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); {
		switch c := text[i]; c {
		case '!':
			if i+1 < len(text) && text[i+1] == '[' {
				i++
				continue
			}
			sb.WriteByte(c)
			i++
		case '[':
			i++
		case ']':
			if i+1 < len(text) && text[i+1] == '(' {
				if end := strings.IndexByte(text[i+1:], ')'); end >= 0 {
					i += end + 2
					continue
				}
			}
			i++
		case '*', '_':
			run := i
			for run < len(text) && text[run] == c {
				run++
			}
			before := i == 0 || text[i-1] == ' '
			after := run == len(text) || text[run] == ' '
			// A space-flanked run can neither open nor close emphasis and
			// stays literal. Intraword underscores are literal too;
			// intraword asterisks are emphasis delimiters.
			if (before && after) || (c == '_' && before == after) {
				sb.WriteString(text[i:run])
			}
			i = run
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return strings.TrimSpace(sb.String())
}

// headingLine returns the marker count and heading text for an ATX heading
// line, or (0, "") when the line is not a heading.
func headingLine(line string) (int, string) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0, ""
	}
	text := strings.TrimSpace(line[level+1:])
	if text == "" {
		return 0, ""
	}
	return level, text
}
