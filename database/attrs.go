package database

import "time"

type BlockAttrs struct {
	SortOrder int
	Type      string
	Text      *string
	ImageURL  *string
}

type PostAttrs struct {
	Title        string
	Slug         string
	Excerpt      *string
	CoverImage   *string
	BannerPhrase *string
	AuthorName   *string
	PublishedAt  *time.Time
	Blocks       []BlockAttrs
}

// PostUpdateAttrs carries a partial update. Nil pointers mean "leave the
// current value alone"; PublishedAt participates only when HasPublishedAt is
// set, so a present-but-null payload field can unpublish. Blocks replace the
// whole set, even with an empty list, but only when ReplaceBlocks is set.
type PostUpdateAttrs struct {
	Title          *string
	Slug           *string
	Excerpt        *string
	CoverImage     *string
	BannerPhrase   *string
	AuthorName     *string
	PublishedAt    *time.Time
	HasPublishedAt bool
	Blocks         []BlockAttrs
	ReplaceBlocks  bool
}
