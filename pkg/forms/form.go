// Package forms binds and validates submitted HTML form values.
package forms

import (
	"net/url"
	"sort"
	"strings"

	"github.com/vittin/site/pkg/security"
)

// Field declares one form input and its validators.
type Field struct {
	Name       string
	Validators []Validator
}

// Form is an ordered set of fields.
type Form struct {
	fields []Field
}

// New creates a form from its fields.
func New(fields ...Field) *Form {
	return &Form{fields: fields}
}

// Errors maps field names to their first validation message.
type Errors map[string]string

// Error implements error with a stable field order.
func (e Errors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e[name])
	}
	return strings.Join(parts, "; ")
}

// Bind strips control characters from and trims every declared field from values and runs its validators.
// The returned error is nil or an Errors value.
func (f *Form) Bind(values url.Values) (map[string]string, error) {
	data := make(map[string]string, len(f.fields))
	errs := make(Errors)

	for _, field := range f.fields {
		value := strings.TrimSpace(security.StripControl(values.Get(field.Name)))
		data[field.Name] = value

		for _, v := range field.Validators {
			if err := v.Validate(value); err != nil {
				errs[field.Name] = err.Error()
				break
			}
		}
	}

	if len(errs) > 0 {
		return data, errs
	}
	return data, nil
}
