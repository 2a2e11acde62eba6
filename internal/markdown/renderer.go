package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// BlockType enumerates the structured block kinds the renderer emits.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockQuote     BlockType = "quote"
	BlockCode      BlockType = "code"
	BlockImage     BlockType = "image"
	BlockTable     BlockType = "table"
	BlockRule      BlockType = "rule"
	BlockCallout   BlockType = "callout"
	BlockGallery   BlockType = "gallery"
	BlockVideo     BlockType = "video"
)

// Callout severities. Unknown severities degrade to info.
const (
	CalloutInfo    = "info"
	CalloutWarning = "warning"
	CalloutSuccess = "success"
	CalloutError   = "error"
)

// Block is one display-ready element of a rendered document. Fields are
// populated according to Type; unused fields stay zero and are omitted from
// JSON payloads.
type Block struct {
	Type BlockType `json:"type"`

	// Headings. AnchorID is set for levels 2 and 3 only.
	Level    int    `json:"level,omitempty"`
	AnchorID string `json:"anchorId,omitempty"`

	// Headings, paragraphs, quotes, callouts. Inline code spans are kept
	// delimited with backticks.
	Text string `json:"text,omitempty"`

	// Lists.
	Ordered bool     `json:"ordered,omitempty"`
	Items   []string `json:"items,omitempty"`

	// Quotes: optional author credit from a trailing "-- Name" line.
	Attribution string `json:"attribution,omitempty"`

	// Code blocks. LineCount supports line-numbered display; Text carries
	// the verbatim code for the copy affordance.
	Language  string `json:"language,omitempty"`
	LineCount int    `json:"lineCount,omitempty"`

	// Images and video embeds.
	Src   string `json:"src,omitempty"`
	Alt   string `json:"alt,omitempty"`
	Title string `json:"title,omitempty"`

	// Callouts.
	Severity string `json:"severity,omitempty"`

	// Galleries: one source path per entry.
	Images []string `json:"images,omitempty"`

	// Tables.
	Header []string   `json:"header,omitempty"`
	Rows   [][]string `json:"rows,omitempty"`
}

// Renderer converts markdown bodies into structured block trees and HTML. It
// is stateless with respect to its input and performs no I/O, so a single
// instance can be shared across requests without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer constructs a renderer with the GFM extension set enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// HTML renders the body straight to HTML for consumers that want markup
// rather than the structured tree.
func (r *Renderer) HTML(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse maps the body onto a flat sequence of display blocks. The same input
// always yields the same structure; heading anchor ids match ExtractHeadings
// for the same body.
func (r *Renderer) Parse(source []byte) ([]Block, error) {
	doc := r.engine.Parser().Parse(text.NewReader(source))
	anchors := newAnchorSet()

	var blocks []Block
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		block, ok := r.convertNode(node, source, anchors)
		if ok {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}

func (r *Renderer) convertNode(node ast.Node, source []byte, anchors *anchorSet) (Block, bool) {
	switch n := node.(type) {
	case *ast.Heading:
		block := Block{
			Type:  BlockHeading,
			Level: n.Level,
			Text:  nodeText(n, source),
		}
		if n.Level == 2 || n.Level == 3 {
			block.AnchorID = anchors.claim(block.Text)
		}
		return block, true

	case *ast.Paragraph:
		if img, ok := soleImage(n); ok {
			return Block{
				Type:  BlockImage,
				Src:   string(img.Destination),
				Alt:   nodeText(img, source),
				Title: string(img.Title),
			}, true
		}
		return Block{Type: BlockParagraph, Text: nodeText(n, source)}, true

	case *ast.List:
		block := Block{Type: BlockList, Ordered: n.IsOrdered()}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			block.Items = append(block.Items, nodeText(item, source))
		}
		return block, true

	case *ast.Blockquote:
		return convertQuote(n, source), true

	case *ast.FencedCodeBlock:
		return convertFenced(n, source), true

	case *ast.CodeBlock:
		code := segmentText(n.Lines(), source)
		return Block{
			Type:      BlockCode,
			Text:      code,
			LineCount: lineCount(code),
		}, true

	case *ast.ThematicBreak:
		return Block{Type: BlockRule}, true

	case *extast.Table:
		return convertTable(n, source), true
	}

	return Block{}, false
}

// convertQuote gathers the quoted text and splits off a trailing "-- Author"
// credit line when present.
func convertQuote(quote *ast.Blockquote, source []byte) Block {
	var lines []string
	for child := quote.FirstChild(); child != nil; child = child.NextSibling() {
		if txt := nodeText(child, source); txt != "" {
			lines = append(lines, strings.Split(txt, "\n")...)
		}
	}

	block := Block{Type: BlockQuote}
	if len(lines) > 1 {
		last := strings.TrimSpace(lines[len(lines)-1])
		if strings.HasPrefix(last, "-- ") {
			block.Attribution = strings.TrimSpace(strings.TrimPrefix(last, "-- "))
			lines = lines[:len(lines)-1]
		}
	}
	block.Text = strings.TrimSpace(strings.Join(lines, "\n"))
	return block
}

// convertFenced routes fenced blocks by info string: callout:<severity>,
// gallery, and video are custom display blocks; anything else is code.
func convertFenced(fence *ast.FencedCodeBlock, source []byte) Block {
	language := string(fence.Language(source))
	body := segmentText(fence.Lines(), source)

	switch {
	case strings.HasPrefix(language, "callout:"), language == "callout":
		severity := strings.TrimPrefix(language, "callout:")
		switch severity {
		case CalloutWarning, CalloutSuccess, CalloutError:
		default:
			severity = CalloutInfo
		}
		return Block{
			Type:     BlockCallout,
			Severity: severity,
			Text:     strings.TrimSpace(body),
		}

	case language == "gallery":
		block := Block{Type: BlockGallery}
		for _, line := range strings.Split(body, "\n") {
			if src := strings.TrimSpace(line); src != "" {
				block.Images = append(block.Images, src)
			}
		}
		return block

	case language == "video":
		fields := strings.Fields(strings.TrimSpace(body))
		block := Block{Type: BlockVideo}
		if len(fields) > 0 {
			block.Src = fields[0]
		}
		if len(fields) > 1 {
			block.Title = strings.Join(fields[1:], " ")
		}
		return block
	}

	return Block{
		Type:      BlockCode,
		Language:  language,
		Text:      body,
		LineCount: lineCount(body),
	}
}

func convertTable(table *extast.Table, source []byte) Block {
	block := Block{Type: BlockTable}
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, nodeText(cell, source))
		}
		if _, ok := row.(*extast.TableHeader); ok {
			block.Header = cells
			continue
		}
		block.Rows = append(block.Rows, cells)
	}
	return block
}

// soleImage reports whether the paragraph consists of a single image, which
// is rendered as a standalone image block rather than inline content.
func soleImage(para *ast.Paragraph) (*ast.Image, bool) {
	if para.ChildCount() != 1 {
		return nil, false
	}
	img, ok := para.FirstChild().(*ast.Image)
	return img, ok
}

// nodeText flattens the inline content of a node into plain text, keeping
// inline code spans delimited with backticks and soft breaks as newlines.
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch t := n.(type) {
		case *ast.Text:
			if entering {
				sb.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					sb.WriteByte('\n')
				}
			}
		case *ast.CodeSpan:
			sb.WriteByte('`')
		case *ast.AutoLink:
			if entering {
				sb.Write(t.URL(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// segmentText reassembles the raw source covered by a node's line segments.
func segmentText(lines *text.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func lineCount(code string) int {
	if code == "" {
		return 0
	}
	return strings.Count(code, "\n") + 1
}
