// Package pagination implements the page/size/sort query contract shared by
// every list endpoint.
package pagination

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	DefaultSize = 10
	MaxSize     = 100
)

type Params struct {
	Page      int
	Size      int
	Sort      string
	Direction string
}

// Parse builds Params from raw query values, clamping page and size and
// falling back to the default sort when the requested field is not in the
// whitelist. Direction is asc unless desc is requested.
func Parse(page, size, sort, direction, defaultSort string, sortable []string) Params {
	p := Params{Page: 0, Size: DefaultSize, Sort: defaultSort, Direction: "asc"}

	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(size); err == nil && n >= 1 {
		p.Size = n
		if p.Size > MaxSize {
			p.Size = MaxSize
		}
	}
	for _, field := range sortable {
		if field == sort {
			p.Sort = sort
			break
		}
	}
	if strings.EqualFold(direction, "desc") {
		p.Direction = "desc"
	}
	return p
}

// FromCtx reads the standard query parameters off a request.
func FromCtx(c *fiber.Ctx, defaultSort string, sortable []string) Params {
	return Parse(
		c.Query("page"),
		c.Query("size"),
		c.Query("sort"),
		c.Query("direction"),
		defaultSort,
		sortable,
	)
}

// Scope applies ordering, limit and offset to a GORM query.
func (p Params) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(p.Sort + " " + p.Direction).
			Limit(p.Size).
			Offset(p.Page * p.Size)
	}
}

// Page wraps a result slice in the list envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	PageNumber    int   `json:"page"`
	Size          int   `json:"size"`
}

// NewPage computes totalPages from the element count and page size.
func NewPage[T any](content []T, total int64, p Params) Page[T] {
	pages := int(total) / p.Size
	if int(total)%p.Size != 0 {
		pages++
	}
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    pages,
		PageNumber:    p.Page,
		Size:          p.Size,
	}
}
