package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// Paginator is one page of an ordered result set. From and To are the
// 1-based positions of the first and last item, null on an empty page.
type Paginator[T any] struct {
	CurrentPage int   `json:"current_page"`
	Data        []T   `json:"data"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
}

func NewPaginator[T any](data []T, total int64, page, perPage int) Paginator[T] {
	if data == nil {
		data = []T{}
	}

	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}

	p := Paginator[T]{
		CurrentPage: page,
		Data:        data,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}

	if len(data) > 0 {
		from := (page-1)*perPage + 1
		to := from + len(data) - 1
		p.From = &from
		p.To = &to
	}

	return p
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}
