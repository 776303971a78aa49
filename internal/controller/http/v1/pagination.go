package v1

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func parsePagination(r *http.Request) (page int, limit int, err error) {
	page, limit = 1, defaultLimit

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.Atoi(p)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("%w: invalid page", errBadRequest)
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.Atoi(l)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, fmt.Errorf("%w: invalid limit, must be in [1;%d]", errBadRequest, maxLimit)
		}
	}

	return page, limit, nil
}

// paginate cuts one page out of items, which keep their order.
func paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	total := len(items)

	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	return items[start:end], Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}
