package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultPage    = 1 // pages are 1-based
)

// NormalizePagination clamps page and per_page to valid ranges.
func NormalizePagination(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// CalculateOffsetLimit converts a 1-based page number into a SQL offset and limit.
func CalculateOffsetLimit(page, perPage int) (offset uint64, limit int) {
	page, limit = NormalizePagination(page, perPage)
	offset = uint64((page - 1) * limit)
	return offset, limit
}

// TotalPages returns ceil(total/perPage); 0 when there are no rows.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(perPage)))
}

// ParsePaginationParams extracts page and per_page query parameters,
// falling back to defaults on missing or malformed values.
func ParsePaginationParams(c *gin.Context) (page, perPage int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil {
		perPage = DefaultPerPage
	}
	_, perPage = NormalizePagination(page, perPage)

	return page, perPage
}
