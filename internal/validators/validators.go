package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/customer-crm/internal/httperr"
)

// Accepted layouts for the "date" rule.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the project's custom rules
// registered. Field names are reported by their json tag.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		if err := v.RegisterValidation("date", isDate); err != nil {
			panic(err)
		}

		instance = v
	})
	return instance
}

func isDate(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	_, ok := ParseDate(s)
	return ok
}

// ParseDate parses s with any layout accepted by the "date" rule.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Struct validates in and returns a *httperr.ValidationError listing every
// violated field, or nil.
func Struct(in any) error {
	err := Validator().Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := httperr.NewValidationError()
	for _, fe := range verrs {
		out.Add(fe.Field(), Message(fe))
	}
	return out
}

// Message renders one failed rule as a human-readable sentence.
func Message(fe validator.FieldError) string {
	field := Humanize(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "date":
		return fmt.Sprintf("The %s field must be a valid date.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// TypeMessage reports a field whose value had the wrong JSON type. kind is
// the rule the field is declared with: "string" or "date".
func TypeMessage(field, kind string) string {
	field = Humanize(field)

	switch kind {
	case "string":
		return fmt.Sprintf("The %s field must be a string.", field)
	case "date":
		return fmt.Sprintf("The %s field must be a valid date.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// Humanize turns a json field name into words: "category_id" -> "category id".
func Humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
