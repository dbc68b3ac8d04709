package contact

import (
	"errors"
	"strings"

	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
	"github.com/BruksfildServices01/customer-crm/internal/validators"
)

// Input holds the only contact fields a client may write. The owning
// customer always comes from the request path.
type Input struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"max=255"`

	// Invalid names the fields whose submitted value was not a string.
	Invalid []string `json:"-" validate:"-"`
}

func (in Input) normalized() Input {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	return in
}

func (in Input) validate() error {
	verr := httperr.NewValidationError()
	if err := validators.Struct(in); err != nil && !errors.As(err, &verr) {
		return err
	}

	for _, field := range in.Invalid {
		verr.Set(field, validators.TypeMessage(field, "string"))
	}
	return verr.OrNil()
}

func (in Input) apply(ct *models.Contact) {
	ct.FirstName = in.FirstName
	ct.LastName = in.LastName
}
