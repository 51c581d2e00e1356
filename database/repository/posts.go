package repository

import (
	"fmt"
	"strings"

	"github.com/inkpress/database"
	"github.com/inkpress/database/repository/pagination"
	"github.com/inkpress/pkg/gorm"
	baseGorm "gorm.io/gorm"
)

type ListMode string

const (
	ListPublished ListMode = "published"
	ListDraft     ListMode = "draft"
	ListAll       ListMode = "all"
)

// ParseListMode degrades unknown input to the public default.
func ParseListMode(raw string) ListMode {
	switch ListMode(strings.ToLower(strings.TrimSpace(raw))) {
	case ListDraft:
		return ListDraft
	case ListAll:
		return ListAll
	default:
		return ListPublished
	}
}

type Posts struct {
	DB *database.Connection
}

// GetAll returns one page of posts for the given mode. Drafts sort after
// published posts, then by publish date and creation date, newest first.
func (p Posts) GetAll(mode ListMode, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	var numItems int64
	var posts []database.Post

	query := p.DB.Sql().Model(&database.Post{})

	switch mode {
	case ListDraft:
		query = query.Where("published_at IS NULL")
	case ListPublished:
		query = query.Where("published_at IS NOT NULL")
	}

	if err := pagination.Count(&numItems, query, p.DB.GetSession(), "blog_posts.id"); err != nil {
		return nil, fmt.Errorf("issue counting posts: %w", err)
	}

	err := query.
		Order("published_at IS NULL").
		Order("published_at DESC").
		Order("created_at DESC").
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing posts: %w", err)
	}

	paginate.SetNumItems(numItems)

	return pagination.MakePagination[database.Post](posts, paginate), nil
}

// FindBySlug fetches one post with its blocks preloaded in render order.
// A missing post returns (nil, nil) so not-found stays distinct from errors.
func (p Posts) FindBySlug(slug string) (*database.Post, error) {
	return p.findOne("slug = ?", strings.ToLower(strings.TrimSpace(slug)))
}

func (p Posts) FindByID(id uint64) (*database.Post, error) {
	return p.findOne("id = ?", id)
}

func (p Posts) findOne(condition string, value any) (*database.Post, error) {
	post := database.Post{}

	result := p.DB.Sql().
		Where(condition, value).
		Preload("Blocks", func(db *baseGorm.DB) *baseGorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&post)

	if gorm.IsNotFound(result.Error) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, fmt.Errorf("issue finding post: %w", result.Error)
	}

	return &post, nil
}

// Create persists the post and, when present, its initial block list in a
// single transaction.
func (p Posts) Create(attrs database.PostAttrs) (*database.Post, error) {
	post := database.Post{
		Title:        attrs.Title,
		Slug:         attrs.Slug,
		Excerpt:      attrs.Excerpt,
		CoverImage:   attrs.CoverImage,
		BannerPhrase: attrs.BannerPhrase,
		AuthorName:   attrs.AuthorName,
		PublishedAt:  attrs.PublishedAt,
	}

	err := p.DB.Transaction(func(tx *baseGorm.DB) error {
		if result := tx.Create(&post); result.Error != nil {
			return fmt.Errorf("issue creating post [%s]: %w", attrs.Slug, result.Error)
		}

		return createBlocks(tx, post.ID, attrs.Blocks)
	})

	if err != nil {
		return nil, err
	}

	return p.FindByID(post.ID)
}

// Update merges the supplied fields into the stored post. When the attrs ask
// for it, the whole block set is replaced inside the same transaction so a
// crash cannot leave the post block-less.
func (p Posts) Update(id uint64, attrs database.PostUpdateAttrs) (*database.Post, error) {
	post, err := p.FindByID(id)
	if err != nil {
		return nil, err
	}

	if post == nil {
		return nil, nil
	}

	err = p.DB.Transaction(func(tx *baseGorm.DB) error {
		updates := map[string]any{}

		if attrs.Title != nil {
			updates["title"] = *attrs.Title
		}

		if attrs.Slug != nil {
			updates["slug"] = *attrs.Slug
		}

		if attrs.Excerpt != nil {
			updates["excerpt"] = *attrs.Excerpt
		}

		if attrs.CoverImage != nil {
			updates["cover_image"] = *attrs.CoverImage
		}

		if attrs.BannerPhrase != nil {
			updates["banner_phrase"] = *attrs.BannerPhrase
		}

		if attrs.AuthorName != nil {
			updates["author_name"] = *attrs.AuthorName
		}

		if attrs.HasPublishedAt {
			updates["published_at"] = attrs.PublishedAt
		}

		if len(updates) > 0 {
			if result := tx.Model(&database.Post{}).Where("id = ?", id).Updates(updates); result.Error != nil {
				return fmt.Errorf("issue updating post [%d]: %w", id, result.Error)
			}
		}

		if !attrs.ReplaceBlocks {
			return nil
		}

		if result := tx.Where("post_id = ?", id).Delete(&database.PostBlock{}); result.Error != nil {
			return fmt.Errorf("issue clearing blocks for post [%d]: %w", id, result.Error)
		}

		return createBlocks(tx, id, attrs.Blocks)
	})

	if err != nil {
		return nil, err
	}

	return p.FindByID(id)
}

// Delete removes the post; its blocks go through the cascade constraint.
// It reports whether a row was actually removed.
func (p Posts) Delete(id uint64) (bool, error) {
	result := p.DB.Sql().Delete(&database.Post{}, id)

	if result.Error != nil {
		return false, fmt.Errorf("issue deleting post [%d]: %w", id, result.Error)
	}

	return result.RowsAffected > 0, nil
}

func createBlocks(tx *baseGorm.DB, postID uint64, attrs []database.BlockAttrs) error {
	if len(attrs) == 0 {
		return nil
	}

	blocks := make([]database.PostBlock, 0, len(attrs))

	for _, attr := range attrs {
		blocks = append(blocks, database.PostBlock{
			PostID:    postID,
			SortOrder: attr.SortOrder,
			Type:      attr.Type,
			Text:      attr.Text,
			ImageURL:  attr.ImageURL,
		})
	}

	if result := tx.Create(&blocks); result.Error != nil {
		return fmt.Errorf("issue creating blocks for post [%d]: %w", postID, result.Error)
	}

	return nil
}
