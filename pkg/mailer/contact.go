package mailer

import (
	"github.com/dmitrymomot/resignly/pkg/validator"
)

// Contact form limits.
const (
	MaxContactNameLength    = 100
	MaxContactSubjectLength = 200
	MinContactMessageLength = 10
	MaxContactMessageLength = 5000
)

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Name    string `form:"name" sanitize:"text,single_line,trim"`
	Email   string `form:"email" sanitize:"email"`
	Subject string `form:"subject" sanitize:"text,single_line,trim"`
	Message string `form:"message" sanitize:"text,trim"`
}

// Validate returns the first error message per field, keyed by form field
// name. The map is empty when the message is valid.
func (m ContactMessage) Validate() map[string]string {
	err := validator.Apply(
		validator.RequiredString("name", m.Name).WithMessage("Name is required"),
		validator.MaxLenString("name", m.Name, MaxContactNameLength).WithMessage("Name must be less than 100 characters"),
		validator.RequiredString("email", m.Email).WithMessage("Email is required"),
		validator.Email("email", m.Email).WithMessage("Please enter a valid email address"),
		validator.RequiredString("subject", m.Subject).WithMessage("Subject is required"),
		validator.MaxLenString("subject", m.Subject, MaxContactSubjectLength).WithMessage("Subject must be less than 200 characters"),
		validator.RequiredString("message", m.Message).WithMessage("Message is required"),
		validator.MinLenString("message", m.Message, MinContactMessageLength).WithMessage("Message must be at least 10 characters"),
		validator.MaxLenString("message", m.Message, MaxContactMessageLength).WithMessage("Message must be less than 5000 characters"),
	)
	if err == nil {
		return map[string]string{}
	}
	return validator.ExtractValidationErrors(err).Fields()
}
