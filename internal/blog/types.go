package blog

import "time"

// Post is one blog entry read from the content directory. Posts are built at
// load time and treated as immutable for the process lifetime; content
// changes require editing the source files.
type Post struct {
	// Slug is the unique key, derived from the source filename.
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Excerpt  string    `json:"excerpt"`
	Image    string    `json:"image,omitempty"`
	Tags     []string  `json:"tags"`
	Author   string    `json:"author"`
	ReadTime string    `json:"readTime"`
	// Body carries the raw markdown source; rendering happens downstream.
	Body string `json:"content"`
}

// HasTag reports whether the post carries the given tag (exact match).
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// sharedTagCount counts tags the post has in common with the supplied set.
func (p Post) sharedTagCount(tags map[string]struct{}) int {
	count := 0
	for _, t := range p.Tags {
		if _, ok := tags[t]; ok {
			count++
		}
	}
	return count
}
