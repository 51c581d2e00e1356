package paginate

import (
	"net/url"
	"strconv"

	"github.com/inkpress/database/repository/pagination"
)

// MakeFrom reads page/limit query params, clamping both so a hostile query
// string can never ask for an unbounded page.
func MakeFrom(url url.Values) pagination.Paginate {
	page := pagination.MinPage
	pageSize := pagination.DefaultLimit

	if url.Get("page") != "" {
		if tPage, err := strconv.Atoi(url.Get("page")); err == nil {
			page = tPage
		}
	}

	if url.Get("limit") != "" {
		if limit, err := strconv.Atoi(url.Get("limit")); err == nil {
			pageSize = limit
		}
	}

	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	if pageSize < 1 {
		pageSize = pagination.DefaultLimit
	}

	if pageSize > pagination.MaxLimit {
		pageSize = pagination.MaxLimit
	}

	return pagination.Paginate{
		Page:  page,
		Limit: pageSize,
	}
}
