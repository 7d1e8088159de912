package export

import "strings"

// Document is a rendered letter ready for serialization.
type Document struct {
	// Body is the rendered letter text.
	Body string
	// Date is the formatted current date printed above the letter.
	Date string
	// Author is the employee name, used in document metadata.
	Author string
}

// Fixed document metadata.
const (
	DocumentTitle   = "Resignation Letter"
	DocumentSubject = "Professional Resignation Letter"
	PDFCreator      = "Resignation Letter Template"
	DOCXCreator     = "Resignation Letter Generator"
	defaultAuthor   = "Employee"
)

// PlainText prefixes the letter with the date and a blank line.
func PlainText(doc Document) string {
	return doc.Date + "\n\n" + doc.Body
}

func (d Document) author() string {
	if a := strings.TrimSpace(d.Author); a != "" {
		return a
	}
	return defaultAuthor
}
