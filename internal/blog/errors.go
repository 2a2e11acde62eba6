package blog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPostNotFound = errors.New("blog: post not found")
	ErrSlugInvalid  = errors.New("blog: slug contains invalid characters")
)

// NotFoundError captures lookups for slugs with no backing content file.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrPostNotFound.Error()
	}
	if slug := strings.TrimSpace(e.Slug); slug != "" {
		return fmt.Sprintf("%s: slug=%s", ErrPostNotFound.Error(), slug)
	}
	return ErrPostNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrPostNotFound
}
