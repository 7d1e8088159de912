package letter

import (
	"github.com/dmitrymomot/resignly/pkg/validator"
)

// Length limits per field.
const (
	MinNameLength     = 2
	MaxPersonLength   = 50
	MaxCompanyLength  = 100
	MaxReasonLength   = 500
	MaxMessageLength  = 1000
	datePattern       = `^\d{4}-\d{2}-\d{2}$`
	msgInvalidDate    = "Please enter a valid date"
	msgFutureRequired = "Last working date must be in the future"
)

// rulesFor returns the ordered rules for field f evaluated against value.
// Fields without rules return nil.
func rulesFor(f Field, value string) []validator.Rule {
	name := string(f)
	switch f {
	case FieldEmployeeName:
		return []validator.Rule{
			validator.RequiredString(name, value).WithMessage("Employee name is required"),
			validator.MinLenString(name, value, MinNameLength).WithMessage("Name must be at least 2 characters"),
			validator.MaxLenString(name, value, MaxPersonLength).WithMessage("Name must be less than 50 characters"),
		}
	case FieldEmployeePosition:
		return []validator.Rule{
			validator.RequiredString(name, value).WithMessage("Position is required"),
			validator.MinLenString(name, value, MinNameLength).WithMessage("Position must be at least 2 characters"),
			validator.MaxLenString(name, value, MaxCompanyLength).WithMessage("Position must be less than 100 characters"),
		}
	case FieldCompanyName:
		return []validator.Rule{
			validator.RequiredString(name, value).WithMessage("Company name is required"),
			validator.MinLenString(name, value, MinNameLength).WithMessage("Company name must be at least 2 characters"),
			validator.MaxLenString(name, value, MaxCompanyLength).WithMessage("Company name must be less than 100 characters"),
		}
	case FieldSupervisorName:
		return []validator.Rule{
			validator.RequiredString(name, value).WithMessage("Supervisor name is required"),
			validator.MinLenString(name, value, MinNameLength).WithMessage("Supervisor name must be at least 2 characters"),
			validator.MaxLenString(name, value, MaxPersonLength).WithMessage("Supervisor name must be less than 50 characters"),
		}
	case FieldLastWorkingDate:
		return dateRules(name, value, "Last working date is required")
	case FieldResignationDate:
		return dateRules(name, value, "Resignation date is required")
	case FieldReason:
		return []validator.Rule{
			validator.MaxLenString(name, value, MaxReasonLength).WithMessage("Reason must be less than 500 characters"),
		}
	case FieldCustomMessage:
		return []validator.Rule{
			validator.MaxLenString(name, value, MaxMessageLength).WithMessage("Custom message must be less than 1000 characters"),
		}
	}
	return nil
}

func dateRules(name, value, required string) []validator.Rule {
	return []validator.Rule{
		validator.RequiredString(name, value).WithMessage(required),
		validator.MatchesRegex(name, value, datePattern, "a YYYY-MM-DD date").WithMessage(msgInvalidDate),
		validator.Date(name, value).WithMessage(msgInvalidDate),
	}
}
