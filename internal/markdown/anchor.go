package markdown

import (
	"fmt"
	"strings"
)

// AnchorID derives the stable anchor identifier for a heading: the rendered
// text lowercased with whitespace runs collapsed into single hyphens.
func AnchorID(text string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	return strings.Join(fields, "-")
}

// anchorSet hands out anchor ids, suffixing repeats deterministically so two
// headings with identical text inside one document never collide (-2, -3, ...).
type anchorSet struct {
	seen map[string]int
}

func newAnchorSet() *anchorSet {
	return &anchorSet{seen: map[string]int{}}
}

func (s *anchorSet) claim(text string) string {
	id := AnchorID(text)
	count := s.seen[id]
	s.seen[id] = count + 1
	if count == 0 {
		return id
	}
	return fmt.Sprintf("%s-%d", id, count+1)
}
