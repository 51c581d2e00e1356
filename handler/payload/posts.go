package payload

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/inkpress/database"
	"github.com/inkpress/pkg/portal"
)

// PostRequestBody is the untyped boundary for post writes. Every field is
// raw JSON so the normalizer decides its meaning, and so "absent" stays
// distinguishable from "present but null" for publishedAt and blocks.
type PostRequestBody struct {
	Title        json.RawMessage `json:"title"`
	Slug         json.RawMessage `json:"slug"`
	Excerpt      json.RawMessage `json:"excerpt"`
	CoverImage   json.RawMessage `json:"coverImage"`
	BannerPhrase json.RawMessage `json:"bannerPhrase"`
	AuthorName   json.RawMessage `json:"authorName"`
	Author       json.RawMessage `json:"author"`
	PublishedAt  json.RawMessage `json:"publishedAt"`
	Blocks       json.RawMessage `json:"blocks"`
}

// GetAuthorName resolves the author field, accepting "author" as an alias
// for "authorName".
func (b PostRequestBody) GetAuthorName() *string {
	if name := ParseOptionalString(b.AuthorName); name != nil {
		return name
	}

	return ParseOptionalString(b.Author)
}

type AuthorResponse struct {
	Name string `json:"name"`
}

type BlockResponse struct {
	ID       uint64  `json:"id"`
	Type     string  `json:"type"`
	Text     *string `json:"text"`
	ImageURL *string `json:"imageUrl"`

	// Order mirrors SortOrder. Two generations of clients read different
	// keys for the same value.
	Order     int `json:"order"`
	SortOrder int `json:"sortOrder"`
}

type PostResponse struct {
	ID           uint64          `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Excerpt      *string         `json:"excerpt"`
	CoverImage   *string         `json:"coverImage"`
	BannerPhrase *string         `json:"bannerPhrase"`
	AuthorName   *string         `json:"authorName"`
	Author       *AuthorResponse `json:"author"`
	PublishedAt  *time.Time      `json:"publishedAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	Blocks       []BlockResponse `json:"blocks"`
}

type UploadResponse struct {
	Ok  bool   `json:"ok"`
	URL string `json:"url"`
}

type DeleteResponse struct {
	Ok bool `json:"ok"`
}

func GetSlugFrom(r *http.Request) string {
	str := portal.MakeStringable(r.PathValue("slug"))

	return strings.TrimSpace(str.ToLower())
}

func GetIDFrom(r *http.Request) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(r.PathValue("id")), 10, 64)
}

func GetPostResponse(p database.Post) PostResponse {
	var author *AuthorResponse
	if p.AuthorName != nil && *p.AuthorName != "" {
		author = &AuthorResponse{Name: *p.AuthorName}
	}

	return PostResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Excerpt:      p.Excerpt,
		CoverImage:   p.CoverImage,
		BannerPhrase: p.BannerPhrase,
		AuthorName:   p.AuthorName,
		Author:       author,
		PublishedAt:  p.PublishedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Blocks:       GetBlocksResponse(p.Blocks),
	}
}

func GetBlocksResponse(blocks []database.PostBlock) []BlockResponse {
	result := make([]BlockResponse, 0, len(blocks))

	for _, block := range blocks {
		result = append(result, BlockResponse{
			ID:        block.ID,
			Type:      block.Type,
			Text:      block.Text,
			ImageURL:  block.ImageURL,
			Order:     block.SortOrder,
			SortOrder: block.SortOrder,
		})
	}

	return result
}
