package pagination

import "math"

const MinPage = 1
const MaxLimit = 100
const DefaultLimit = 10

type Paginate struct {
	Page     int
	Limit    int
	NumItems int64
}

func (p *Paginate) SetNumItems(number int64) {
	p.NumItems = number
}

func (p *Paginate) GetOffset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * p.Limit
}

// Pagination holds one page of data plus its metadata. NextPage and
// PreviousPage are pointers so they drop out of the JSON output when there is
// no adjacent page.
type Pagination[T any] struct {
	Data         []T   `json:"data"`
	Page         int   `json:"page"`
	Total        int64 `json:"total"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func MakePagination[T any](data []T, paginate Paginate) *Pagination[T] {
	pageSize := float64(paginate.Limit)
	if pageSize <= 0 {
		pageSize = DefaultLimit
	}

	totalPages := int(
		math.Ceil(float64(paginate.NumItems) / pageSize),
	)

	result := Pagination[T]{
		Data:       data,
		Page:       paginate.Page,
		Total:      paginate.NumItems,
		PageSize:   paginate.Limit,
		TotalPages: totalPages,
	}

	if result.Page < result.TotalPages {
		next := result.Page + 1
		result.NextPage = &next
	}

	if result.Page > 1 && result.Page <= result.TotalPages {
		previous := result.Page - 1
		result.PreviousPage = &previous
	}

	return &result
}

// HydratePagination maps a page of source items into a page of destination
// items while preserving all pagination metadata.
func HydratePagination[S any, D any](source *Pagination[S], mapper func(S) D) *Pagination[D] {
	mapped := make([]D, len(source.Data))

	for i, item := range source.Data {
		mapped[i] = mapper(item)
	}

	return &Pagination[D]{
		Data:         mapped,
		Total:        source.Total,
		Page:         source.Page,
		PageSize:     source.PageSize,
		TotalPages:   source.TotalPages,
		NextPage:     source.NextPage,
		PreviousPage: source.PreviousPage,
	}
}
