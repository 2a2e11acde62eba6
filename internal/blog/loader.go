package blog

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

// LoaderConfig configures how content files are discovered.
type LoaderConfig struct {
	// Patterns limits discovered files (defaults to "*.md" and "*.mdx").
	Patterns []string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns a content filesystem into Post records. Failures never abort a
// whole load: unreadable or malformed files are skipped with a warning so the
// remaining posts still surface.
type Loader struct {
	fs        fs.FS
	patterns  []string
	recursive bool
	logger    interfaces.Logger
}

// NewLoader constructs a Loader over the provided filesystem. A nil
// filesystem is valid and yields empty results, which callers display as the
// ordinary "no posts" state.
func NewLoader(filesystem fs.FS, cfg LoaderConfig, logger interfaces.Logger) *Loader {
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = []string{"*.md", "*.mdx"}
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Loader{
		fs:        filesystem,
		patterns:  append([]string(nil), patterns...),
		recursive: cfg.Recursive,
		logger:    logger,
	}
}

// LoadDirectory reads every matching content file and returns posts sorted by
// date descending, ties stable in file enumeration order. Duplicate slugs
// resolve last-write-wins with a logged warning.
func (l *Loader) LoadDirectory(ctx context.Context) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.fs == nil {
		return []Post{}, nil
	}

	var posts []Post
	index := map[string]int{}

	walkErr := fs.WalkDir(l.fs, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			// Missing or unreadable directories degrade to empty, they are
			// not a fault.
			l.logger.Warn("blog.loader.walk_failed", "path", filePath, "error", err)
			return fs.SkipDir
		}
		if d.IsDir() {
			if !l.recursive && filePath != "." {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !l.matches(filePath) {
			return nil
		}

		post, ok := l.loadFile(filePath)
		if !ok {
			return nil
		}

		if at, seen := index[post.Slug]; seen {
			l.logger.Warn("blog.loader.duplicate_slug", "slug", post.Slug, "path", filePath)
			posts[at] = post
			return nil
		}
		index[post.Slug] = len(posts)
		posts = append(posts, post)
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return nil, walkErr
		}
		l.logger.Warn("blog.loader.directory_failed", "error", walkErr)
		return []Post{}, nil
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

func (l *Loader) matches(filePath string) bool {
	base := path.Base(filePath)
	for _, pattern := range l.patterns {
		if ok, err := path.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// loadFile parses one content file. Any failure is logged and the file is
// skipped so a single malformed post cannot take down the listing.
func (l *Loader) loadFile(filePath string) (Post, bool) {
	data, err := fs.ReadFile(l.fs, filePath)
	if err != nil {
		l.logger.Warn("blog.loader.read_failed", "path", filePath, "error", err)
		return Post{}, false
	}

	meta, body, err := parseFrontMatter(data)
	if err != nil {
		l.logger.Warn("blog.loader.frontmatter_failed", "path", filePath, "error", err)
		return Post{}, false
	}

	return Post{
		Slug:     slugFromPath(filePath),
		Title:    meta.Title,
		Date:     postDate(meta.Date),
		Excerpt:  meta.Excerpt,
		Image:    meta.Image,
		Tags:     append([]string(nil), meta.Tags...),
		Author:   meta.Author,
		ReadTime: meta.ReadTime,
		Body:     string(body),
	}, true
}

// slugFromPath derives the post key from the filename without extension,
// normalized through the shared slug rules.
func slugFromPath(filePath string) string {
	base := path.Base(filePath)
	base = strings.TrimSuffix(base, path.Ext(base))
	if normalized, err := slug.Normalize(base); err == nil && normalized != "" {
		return normalized
	}
	return strings.ToLower(base)
}
