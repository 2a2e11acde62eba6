package blog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

// DefaultRelatedLimit caps the related-posts list.
const DefaultRelatedLimit = 3

// Config controls where the blog service finds its content.
type Config struct {
	// ContentDir is the directory holding one markdown file per post.
	ContentDir string
	// Patterns overrides the recognized content extensions.
	Patterns []string
	// Recursive enables sub-directory traversal.
	Recursive bool
}

// Service exposes the blog read operations: listing, lookup, filtering, and
// related-post ranking. Posts are read from the content source on each call;
// there is no mutation path.
type Service struct {
	loader *Loader
	logger interfaces.Logger
}

// NewService constructs a Service over the configured content directory. A
// missing directory is not an error: the service degrades to empty listings.
func NewService(cfg Config, provider interfaces.LoggerProvider) *Service {
	logger := logging.BlogLogger(provider)

	var filesystem fs.FS
	dir := strings.TrimSpace(cfg.ContentDir)
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			logger.Warn("blog.content_dir_unavailable", "dir", dir, "error", err)
		} else {
			filesystem = os.DirFS(dir)
		}
	}

	return &Service{
		loader: NewLoader(filesystem, LoaderConfig{Patterns: cfg.Patterns, Recursive: cfg.Recursive}, logger),
		logger: logger,
	}
}

// NewServiceFS constructs a Service over an explicit filesystem, mainly for
// tests and embedded content.
func NewServiceFS(filesystem fs.FS, cfg LoaderConfig, provider interfaces.LoggerProvider) *Service {
	logger := logging.BlogLogger(provider)
	return &Service{
		loader: NewLoader(filesystem, cfg, logger),
		logger: logger,
	}
}

// List returns every post sorted by date descending.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	return s.loader.LoadDirectory(ctx)
}

// Latest returns the most recent posts, at most limit entries.
func (s *Service) Latest(ctx context.Context, limit int) ([]Post, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		limit = 0
	}
	if limit > len(posts) {
		limit = len(posts)
	}
	return posts[:limit], nil
}

// GetBySlug returns the post with the given slug or a NotFoundError. Slugs
// that break the slug rules are rejected with ErrSlugInvalid before any
// lookup.
func (s *Service) GetBySlug(ctx context.Context, postSlug string) (*Post, error) {
	if !slug.IsValid(postSlug) {
		return nil, fmt.Errorf("%w: %q", ErrSlugInvalid, postSlug)
	}
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == postSlug {
			return &posts[i], nil
		}
	}
	return nil, &NotFoundError{Slug: postSlug}
}

// Tags returns the lexicographically sorted union of tags across all posts.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return TagCatalog(posts), nil
}

// Search lists posts matching the free-text query and tag filter.
func (s *Service) Search(ctx context.Context, query, tag string) ([]Post, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(posts, query, tag), nil
}

// Related ranks the other posts by shared-tag count against the given slug.
func (s *Service) Related(ctx context.Context, postSlug string) ([]Post, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == postSlug {
			return Related(posts[i], posts, DefaultRelatedLimit), nil
		}
	}
	return nil, &NotFoundError{Slug: postSlug}
}

// Filter returns the subsequence of posts matching both predicates, in input
// order. A post matches query (case-insensitive substring) when the query is
// empty or appears in its title, excerpt, or any tag; it matches tag when tag
// is empty or a member of its tag set.
func Filter(posts []Post, query, tag string) []Post {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Post, 0, len(posts))
	for _, post := range posts {
		if tag != "" && !post.HasTag(tag) {
			continue
		}
		if query != "" && !matchesQuery(post, query) {
			continue
		}
		out = append(out, post)
	}
	return out
}

func matchesQuery(post Post, query string) bool {
	if strings.Contains(strings.ToLower(post.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Excerpt), query) {
		return true
	}
	for _, t := range post.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// Related returns up to limit posts sharing at least one tag with current,
// ordered by shared-tag count descending with stable ties, the current post
// excluded.
func Related(current Post, posts []Post, limit int) []Post {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	currentTags := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		currentTags[t] = struct{}{}
	}

	type scored struct {
		post  Post
		count int
	}

	var candidates []scored
	for _, post := range posts {
		if post.Slug == current.Slug {
			continue
		}
		if count := post.sharedTagCount(currentTags); count > 0 {
			candidates = append(candidates, scored{post: post, count: count})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].count > candidates[j].count
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Post, len(candidates))
	for i, c := range candidates {
		out[i] = c.post
	}
	return out
}

// TagCatalog computes the sorted set union of tags across posts.
func TagCatalog(posts []Post) []string {
	seen := map[string]struct{}{}
	for _, post := range posts {
		for _, t := range post.Tags {
			if t = strings.TrimSpace(t); t != "" {
				seen[t] = struct{}{}
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// FormatDate renders a post date for display, matching the long en-US style
// the site uses ("June 1, 2024").
func FormatDate(post Post) string {
	if post.Date.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d, %d", post.Date.Month().String(), post.Date.Day(), post.Date.Year())
}
