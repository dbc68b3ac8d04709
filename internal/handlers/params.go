package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/customer-crm/internal/httperr"
)

// pathID parses a numeric path parameter. Anything that is not a positive
// integer cannot name a stored record, so it is answered with a 404.
func pathID(c *gin.Context, param, resource string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || n == 0 {
		httperr.Respond(c, httperr.ErrNotFound(resource))
		return 0, false
	}
	return uint(n), true
}

// bindJSON decodes the request body into req. An empty body is treated
// as an empty object so that field validation reports what is missing.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return false
	}
	return true
}

// queryPage reads ?page=, falling back to the first page.
func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
