package blog

import "errors"

var (
	ErrPostNotFound       = errors.New("blog: post not found")
	ErrInvalidFrontMatter = errors.New("blog: invalid front matter")
	ErrDuplicateSlug      = errors.New("blog: duplicate slug")
	ErrNotLoaded          = errors.New("blog: store not loaded")
	ErrInvalidSchedule    = errors.New("blog: invalid refresh schedule")
)
