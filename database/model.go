package database

import "time"

const (
	BlockTypeHeading   = "heading"
	BlockTypeParagraph = "paragraph"
	BlockTypeImage     = "image"
)

// IsValidBlockType reports whether abstract belongs to the closed block
// variant set.
func IsValidBlockType(abstract string) bool {
	switch abstract {
	case BlockTypeHeading, BlockTypeParagraph, BlockTypeImage:
		return true
	}

	return false
}

// Post is the aggregate root. A nil PublishedAt marks a draft.
type Post struct {
	ID           uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title        string     `gorm:"column:title;size:255;not null"`
	Slug         string     `gorm:"column:slug;size:191;not null;uniqueIndex"`
	Excerpt      *string    `gorm:"column:excerpt;type:text"`
	CoverImage   *string    `gorm:"column:cover_image;size:1024"`
	BannerPhrase *string    `gorm:"column:banner_phrase;size:512"`
	AuthorName   *string    `gorm:"column:author_name;size:255;index"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`

	Blocks []PostBlock `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "blog_posts"
}

func (p Post) IsDraft() bool {
	return p.PublishedAt == nil
}

// PostBlock is one ordered content unit of a Post. Blocks have no lifecycle
// of their own: they are only written as part of a Post write and are removed
// by the cascade when their Post goes.
type PostBlock struct {
	ID        uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	PostID    uint64  `gorm:"column:post_id;not null;index"`
	SortOrder int     `gorm:"column:sort_order;not null"`
	Type      string  `gorm:"column:type;size:32;not null"`
	Text      *string `gorm:"column:text;type:text"`
	ImageURL  *string `gorm:"column:image_url;size:1024"`
}

func (PostBlock) TableName() string {
	return "blog_post_blocks"
}
