package letter

import "strings"

// Field names a LetterData field. The names match the template identifiers.
type Field string

// Known fields.
const (
	FieldEmployeeName     Field = "employeeName"
	FieldEmployeePosition Field = "employeePosition"
	FieldCompanyName      Field = "companyName"
	FieldSupervisorName   Field = "supervisorName"
	FieldLastWorkingDate  Field = "lastWorkingDate"
	FieldResignationDate  Field = "resignationDate"
	FieldReason           Field = "reason"
	FieldCustomMessage    Field = "customMessage"
)

// Fields lists every known field in form order.
var Fields = []Field{
	FieldEmployeeName,
	FieldEmployeePosition,
	FieldCompanyName,
	FieldSupervisorName,
	FieldLastWorkingDate,
	FieldResignationDate,
	FieldReason,
	FieldCustomMessage,
}

// RequiredFields are the fields checked by ValidateForm.
var RequiredFields = []Field{
	FieldEmployeeName,
	FieldEmployeePosition,
	FieldCompanyName,
	FieldSupervisorName,
	FieldLastWorkingDate,
}

// Known reports whether f is one of the known fields.
func (f Field) Known() bool {
	for _, k := range Fields {
		if k == f {
			return true
		}
	}
	return false
}

var fieldLabels = map[Field]string{
	FieldEmployeeName:     "Your full name",
	FieldEmployeePosition: "Your position",
	FieldCompanyName:      "Company name",
	FieldSupervisorName:   "Supervisor name",
	FieldLastWorkingDate:  "Last working day",
	FieldResignationDate:  "Resignation date",
	FieldReason:           "Reason for leaving",
	FieldCustomMessage:    "Personal message",
}

// Label returns the form label of f.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Required reports whether f must be filled before export.
func (f Field) Required() bool {
	for _, r := range RequiredFields {
		if r == f {
			return true
		}
	}
	return false
}

// Data is the user-entered record driving rendering and export.
type Data struct {
	EmployeeName     string `json:"employeeName" form:"employeeName" sanitize:"no_control"`
	EmployeePosition string `json:"employeePosition" form:"employeePosition" sanitize:"no_control"`
	CompanyName      string `json:"companyName" form:"companyName" sanitize:"no_control"`
	SupervisorName   string `json:"supervisorName" form:"supervisorName" sanitize:"no_control"`
	LastWorkingDate  string `json:"lastWorkingDate" form:"lastWorkingDate" sanitize:"no_control"`
	ResignationDate  string `json:"resignationDate" form:"resignationDate" sanitize:"no_control"`
	Reason           string `json:"reason" form:"reason" sanitize:"no_control"`
	CustomMessage    string `json:"customMessage" form:"customMessage" sanitize:"no_control"`
}

// Get returns the raw value of f. Unknown fields return "".
func (d Data) Get(f Field) string {
	switch f {
	case FieldEmployeeName:
		return d.EmployeeName
	case FieldEmployeePosition:
		return d.EmployeePosition
	case FieldCompanyName:
		return d.CompanyName
	case FieldSupervisorName:
		return d.SupervisorName
	case FieldLastWorkingDate:
		return d.LastWorkingDate
	case FieldResignationDate:
		return d.ResignationDate
	case FieldReason:
		return d.Reason
	case FieldCustomMessage:
		return d.CustomMessage
	}
	return ""
}

// Set assigns value to f and reports whether f is known.
func (d *Data) Set(f Field, value string) bool {
	switch f {
	case FieldEmployeeName:
		d.EmployeeName = value
	case FieldEmployeePosition:
		d.EmployeePosition = value
	case FieldCompanyName:
		d.CompanyName = value
	case FieldSupervisorName:
		d.SupervisorName = value
	case FieldLastWorkingDate:
		d.LastWorkingDate = value
	case FieldResignationDate:
		d.ResignationDate = value
	case FieldReason:
		d.Reason = value
	case FieldCustomMessage:
		d.CustomMessage = value
	default:
		return false
	}
	return true
}

// Present reports whether f holds a non-blank value.
func (d Data) Present(f Field) bool {
	return strings.TrimSpace(d.Get(f)) != ""
}

// NewData returns a record with empty fields and the resignation date set to
// today.
func NewData(opts ...Option) Data {
	return Data{ResignationDate: Today(opts...)}
}
