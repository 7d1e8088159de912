package export

import (
	"strings"

	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/letter"
)

// Readiness is the result of the export precondition check.
type Readiness struct {
	Errors []string `json:"errors"`
	Valid  bool     `json:"isValid"`
}

// Err returns a *ReadinessError when r is not valid, nil otherwise.
func (r Readiness) Err() error {
	if r.Valid {
		return nil
	}
	return &ReadinessError{Errors: r.Errors}
}

var readinessChecks = []struct {
	field   letter.Field
	message string
}{
	{letter.FieldEmployeeName, "Employee name is required"},
	{letter.FieldEmployeePosition, "Employee position is required"},
	{letter.FieldCompanyName, "Company name is required"},
	{letter.FieldSupervisorName, "Supervisor name is required"},
	{letter.FieldLastWorkingDate, "Last working date is required"},
}

// ValidateReadiness collects every missing precondition: a selected template
// and a non-blank value for each required field.
func ValidateReadiness(tpl *catalog.Template, data letter.Data) Readiness {
	var errs []string
	if tpl == nil {
		errs = append(errs, "Please select a template")
	}
	for _, c := range readinessChecks {
		if strings.TrimSpace(data.Get(c.field)) == "" {
			errs = append(errs, c.message)
		}
	}
	return Readiness{Valid: len(errs) == 0, Errors: errs}
}
