package letter

import "github.com/dmitrymomot/resignly/pkg/validator"

// FormValidation maps each validated field to its error message. An empty
// message means the field is valid.
type FormValidation map[Field]string

// Message returns the error for f, or "" when f is valid.
func (v FormValidation) Message(f Field) string {
	return v[f]
}

// ValidateField applies the rules of field to value in declared order and
// returns the first failing message, or "" when the value is valid or the
// field has no rules.
func ValidateField(field Field, value string) string {
	ve, failed := validator.First(rulesFor(field, value)...)
	if !failed {
		return ""
	}
	return ve.Message
}

// ValidateForm validates the fields required for export. When the last
// working date is a valid date on or before today, the result for that field
// is the future-date error regardless of the field rules.
func ValidateForm(data Data, opts ...Option) FormValidation {
	v := make(FormValidation, len(RequiredFields))
	for _, f := range RequiredFields {
		v[f] = ValidateField(f, data.Get(f))
	}

	if data.Present(FieldLastWorkingDate) {
		if _, err := ParseDate(data.LastWorkingDate, opts...); err == nil && !IsFuture(data.LastWorkingDate, opts...) {
			v[FieldLastWorkingDate] = msgFutureRequired
		}
	}

	return v
}

// IsFormValid reports whether every entry of v is empty.
func IsFormValid(v FormValidation) bool {
	for _, msg := range v {
		if msg != "" {
			return false
		}
	}
	return true
}

// Errors returns the non-empty messages of v in form order.
func (v FormValidation) Errors() []string {
	var out []string
	for _, f := range Fields {
		if msg := v[f]; msg != "" {
			out = append(out, msg)
		}
	}
	return out
}
