package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field values of the wrong JSON type are recorded as Invalid instead of
// failing the decode, so they can be reported next to the other field
// errors of the same request.

type CustomerRequest struct {
	Name        Text   `json:"name"`
	Reference   Text   `json:"reference"`
	CategoryID  FlexID `json:"category_id"`
	StartDate   Text   `json:"start_date"`
	Description Text   `json:"description"`
}

// InvalidFields lists, in field order, the json names of the fields
// that arrived with an unusable type.
func (r CustomerRequest) InvalidFields() []string {
	return invalidFields([]namedField{
		{"name", r.Name.Invalid},
		{"reference", r.Reference.Invalid},
		{"category_id", r.CategoryID.Invalid},
		{"start_date", r.StartDate.Invalid},
		{"description", r.Description.Invalid},
	})
}

type ContactRequest struct {
	FirstName Text `json:"first_name"`
	LastName  Text `json:"last_name"`
}

func (r ContactRequest) InvalidFields() []string {
	return invalidFields([]namedField{
		{"first_name", r.FirstName.Invalid},
		{"last_name", r.LastName.Invalid},
	})
}

type namedField struct {
	name    string
	invalid bool
}

func invalidFields(fields []namedField) []string {
	var out []string
	for _, f := range fields {
		if f.invalid {
			out = append(out, f.name)
		}
	}
	return out
}

var jsonNull = []byte("null")

// Text is a string field. null decodes to "".
type Text struct {
	Value   string
	Invalid bool
}

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*t = Text{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = Text{Invalid: true}
		return nil
	}
	*t = Text{Value: s}
	return nil
}

// FlexID is an identifier that may arrive as a JSON number or a numeric
// string, as HTML select values do. null and "" decode to zero.
type FlexID struct {
	Value   uint
	Invalid bool
}

func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*id = FlexID{}
		return nil
	}

	raw := string(b)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*id = FlexID{Invalid: true}
			return nil
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*id = FlexID{}
			return nil
		}
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || uint64(uint(n)) != n {
		*id = FlexID{Invalid: true}
		return nil
	}
	*id = FlexID{Value: uint(n)}
	return nil
}
