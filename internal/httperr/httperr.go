package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type ValidationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unprocessable(c *gin.Context, ve *ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
		Message: ve.Message(),
		Errors:  ve.Fields,
	})
}

// Respond converts any error returned by a use case into the JSON
// response for it. Unknown errors are reported as a generic 500 and
// recorded on the gin context for the access log.
func Respond(c *gin.Context, err error) {
	var (
		ve *ValidationError
		nf NotFoundError
		ri ReferentialIntegrityError
	)

	switch {
	case errors.As(err, &ve):
		Unprocessable(c, ve)

	case errors.As(err, &nf):
		resource := strings.ToLower(nf.Resource)
		NotFound(c, resource+"_not_found", capitalize(resource)+" not found.")

	case errors.As(err, &ri):
		v := NewValidationError()
		v.Add(ri.Field, "The selected "+strings.ReplaceAll(ri.Field, "_", " ")+" is invalid.")
		Unprocessable(c, v)

	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "Something went wrong.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
