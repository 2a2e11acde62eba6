package markdown

import (
	"strings"
	"testing"
)

const sampleBody = `# Welcome

## Getting Started

Some intro text with ` + "`inline code`" + ` in it.

### Getting Started

- first
- second

1. one
2. two

> Quoted wisdom
> -- Jane Doe

` + "```go\npackage main\n\nfunc main() {}\n```" + `

![diagram](/images/diagram.png)

---

| Name | Price |
| ---- | ----- |
| Launchpad | $499 |
`

func TestParseHeadingsAssignAnchors(t *testing.T) {
	blocks, err := NewRenderer().Parse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var headings []Block
	for _, b := range blocks {
		if b.Type == BlockHeading {
			headings = append(headings, b)
		}
	}

	if len(headings) != 3 {
		t.Fatalf("expected 3 headings, got %d", len(headings))
	}
	if headings[0].Level != 1 || headings[0].AnchorID != "" {
		t.Fatalf("level-1 heading should carry no anchor, got %q", headings[0].AnchorID)
	}
	if headings[1].AnchorID != "getting-started" {
		t.Fatalf("expected anchor getting-started, got %q", headings[1].AnchorID)
	}
	if headings[2].AnchorID != "getting-started-2" {
		t.Fatalf("expected duplicate anchor suffix, got %q", headings[2].AnchorID)
	}
}

func TestParseInlineCodeKeptInText(t *testing.T) {
	blocks, err := NewRenderer().Parse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var para Block
	for _, b := range blocks {
		if b.Type == BlockParagraph {
			para = b
			break
		}
	}
	if !strings.Contains(para.Text, "`inline code`") {
		t.Fatalf("expected inline code markers preserved, got %q", para.Text)
	}
}

func TestParseLists(t *testing.T) {
	blocks, err := NewRenderer().Parse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var lists []Block
	for _, b := range blocks {
		if b.Type == BlockList {
			lists = append(lists, b)
		}
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].Ordered {
		t.Fatalf("first list should be unordered")
	}
	if !lists[1].Ordered {
		t.Fatalf("second list should be ordered")
	}
	if len(lists[0].Items) != 2 || lists[0].Items[0] != "first" {
		t.Fatalf("unexpected list items: %#v", lists[0].Items)
	}
}

func TestParseQuoteAttribution(t *testing.T) {
	blocks, err := NewRenderer().Parse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var quote Block
	for _, b := range blocks {
		if b.Type == BlockQuote {
			quote = b
			break
		}
	}
	if quote.Text != "Quoted wisdom" {
		t.Fatalf("unexpected quote text %q", quote.Text)
	}
	if quote.Attribution != "Jane Doe" {
		t.Fatalf("expected attribution Jane Doe, got %q", quote.Attribution)
	}
}

func TestParseCodeBlock(t *testing.T) {
	blocks, err := NewRenderer().Parse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var code Block
	for _, b := range blocks {
		if b.Type == BlockCode {
			code = b
			break
		}
	}
	if code.Language != "go" {
		t.Fatalf("expected language go, got %q", code.Language)
	}
	if code.LineCount != 3 {
		t.Fatalf("expected 3 lines, got %d", code.LineCount)
	}
	if !strings.Contains(code.Text, "func main()") {
		t.Fatalf("code text missing body: %q", code.Text)
	}
}

func TestParseImageTableRule(t *testing.T) {
	blocks, err := NewRenderer().Parse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var img, table, rule *Block
	for i := range blocks {
		switch blocks[i].Type {
		case BlockImage:
			img = &blocks[i]
		case BlockTable:
			table = &blocks[i]
		case BlockRule:
			rule = &blocks[i]
		}
	}

	if img == nil || img.Src != "/images/diagram.png" || img.Alt != "diagram" {
		t.Fatalf("unexpected image block: %#v", img)
	}
	if rule == nil {
		t.Fatalf("expected a horizontal rule block")
	}
	if table == nil {
		t.Fatalf("expected a table block")
	}
	if len(table.Header) != 2 || table.Header[0] != "Name" {
		t.Fatalf("unexpected table header: %#v", table.Header)
	}
	if len(table.Rows) != 1 || table.Rows[0][1] != "$499" {
		t.Fatalf("unexpected table rows: %#v", table.Rows)
	}
}

func TestParseCustomBlocks(t *testing.T) {
	body := "```callout:warning\nBack up before upgrading.\n```\n\n" +
		"```gallery\n/img/a.png\n/img/b.png\n```\n\n" +
		"```video\n/videos/demo.mp4 Launch demo\n```\n\n" +
		"```callout:shrug\nUnknown severity.\n```\n"

	blocks, err := NewRenderer().Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(blocks))
	}

	if blocks[0].Type != BlockCallout || blocks[0].Severity != CalloutWarning {
		t.Fatalf("unexpected callout: %#v", blocks[0])
	}
	if blocks[0].Text != "Back up before upgrading." {
		t.Fatalf("unexpected callout text: %q", blocks[0].Text)
	}

	if blocks[1].Type != BlockGallery || len(blocks[1].Images) != 2 || blocks[1].Images[1] != "/img/b.png" {
		t.Fatalf("unexpected gallery: %#v", blocks[1])
	}

	if blocks[2].Type != BlockVideo || blocks[2].Src != "/videos/demo.mp4" || blocks[2].Title != "Launch demo" {
		t.Fatalf("unexpected video: %#v", blocks[2])
	}

	if blocks[3].Severity != CalloutInfo {
		t.Fatalf("unknown severity should degrade to info, got %q", blocks[3].Severity)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	r := NewRenderer()
	first, err := r.Parse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second, err := r.Parse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("non-deterministic block count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].AnchorID != second[i].AnchorID || first[i].Text != second[i].Text {
			t.Fatalf("block %d differs between runs", i)
		}
	}
}

func TestHTMLRendersMarkup(t *testing.T) {
	out, err := NewRenderer().HTML([]byte("## Title\n\nBody text.\n"))
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(string(out), "<h2") {
		t.Fatalf("expected h2 markup, got %s", out)
	}
}
