package blog

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// frontMatterEnvelope mirrors the metadata block each content file begins
// with. Date stays a string here because authors write ISO-ish values in a
// handful of layouts; parsing happens in postDate.
type frontMatterEnvelope struct {
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Excerpt  string   `yaml:"excerpt"`
	Image    string   `yaml:"image"`
	Tags     []string `yaml:"tags"`
	Author   string   `yaml:"author"`
	ReadTime string   `yaml:"readTime"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
}

// parseFrontMatter extracts metadata and the markdown body from the provided
// source bytes.
func parseFrontMatter(source []byte) (frontMatterEnvelope, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return frontMatterEnvelope{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}

// postDate resolves the envelope's date string against the accepted layouts.
// A missing or unparseable date yields the zero time, which sorts last.
func postDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
