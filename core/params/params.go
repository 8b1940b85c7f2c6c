package params

import (
	"strings"

	"event-portal/core/constants"
	"event-portal/core/utils"

	"github.com/labstack/echo/v4"
)

type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
	Status     string
	Category   string
	Filter     string
}

// NewQueryParams reads paging and filter parameters. Both "page" and "page_number" are accepted.
func NewQueryParams(c echo.Context) QueryParams {
	page := c.QueryParam("page")
	if page == "" {
		page = c.QueryParam("page_number")
	}
	size := c.QueryParam("pageSize")
	if size == "" {
		size = c.QueryParam("page_size")
	}

	p := QueryParams{
		PageNumber: utils.ToNumberWithDefault(page, constants.DefaultPageNumber),
		PageSize:   utils.ToNumberWithDefault(size, constants.DefaultPageSize),
		Search:     strings.TrimSpace(c.QueryParam("search")),
		Status:     strings.TrimSpace(c.QueryParam("status")),
		Category:   strings.TrimSpace(c.QueryParam("category")),
		Filter:     strings.TrimSpace(c.QueryParam("filter")),
	}
	return p.Normalize()
}

func (p QueryParams) Normalize() QueryParams {
	if p.PageNumber < 1 {
		p.PageNumber = constants.DefaultPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = constants.DefaultPageSize
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}
	return p
}

func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}
