package customer

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
	"github.com/BruksfildServices01/customer-crm/internal/validators"
)

// Input is the whitelisted set of writable customer fields, shared by
// create and update. A zero CategoryID means "not provided".
type Input struct {
	Name        string `json:"name" validate:"required,max=255"`
	Reference   string `json:"reference" validate:"required,max=255"`
	CategoryID  uint   `json:"category_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required,date"`
	Description string `json:"description"`

	// Invalid names the fields whose submitted value had an unusable type.
	// Their other rule violations are replaced by a type error.
	Invalid []string `json:"-" validate:"-"`
}

var fieldKinds = map[string]string{
	"name":        "string",
	"reference":   "string",
	"start_date":  "date",
	"description": "string",
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Reference = strings.TrimSpace(in.Reference)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

const categoryInvalid = "The selected category id is invalid."

// validate checks the field rules and, when category_id is present, that
// it references an existing category. All violations are reported together.
func validate(
	ctx context.Context,
	repo domain.Repository,
	in Input,
) error {

	verr := httperr.NewValidationError()
	if err := validators.Struct(in); err != nil && !errors.As(err, &verr) {
		return err
	}

	for _, field := range in.Invalid {
		if field == "category_id" {
			verr.Set(field, categoryInvalid)
			continue
		}
		verr.Set(field, validators.TypeMessage(field, fieldKinds[field]))
	}

	if in.CategoryID != 0 {
		exists, err := repo.CategoryExists(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			verr.Add("category_id", categoryInvalid)
		}
	}

	return verr.OrNil()
}

// apply copies validated input onto c.
func (in Input) apply(c *models.Customer) {
	t, _ := validators.ParseDate(in.StartDate)
	y, m, d := t.Date()

	c.Name = in.Name
	c.Reference = in.Reference
	c.CategoryID = in.CategoryID
	c.StartDate = models.NewDate(y, m, d)
	c.Description = in.Description
}
