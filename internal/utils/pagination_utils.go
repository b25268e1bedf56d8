// package utils provides utility functions to support various operations within the application.
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"heritage-server/internal/schemas"
)

const (
	defaultLimit = 10
	maxLimit     = 50
	maxPage      = 100000
)

// ParsePaginationParams extracts the 'page' and 'limit' parameters from the request's query parameters.
// It provides default values and clamps them into a sane range.
func ParsePaginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query(PageParamKey))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	limit, err := strconv.Atoi(c.Query(LimitParamKey))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// NewPagination builds the pagination block of a paginated response.
func NewPagination(page, limit, total int) schemas.Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}

	return schemas.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
