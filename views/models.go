package views

import (
	"github.com/dmitrymomot/resignly/pkg/blog"
	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/letter"
	"github.com/dmitrymomot/resignly/pkg/mailer"
)

// FAQ is one question on the home page.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Home is the data of the home page.
type Home struct {
	Grid  Grid
	FAQ   []FAQ
	Posts []blog.Post
}

// Grid is the template catalog with its active filters.
type Grid struct {
	Templates  []catalog.Template
	Categories []catalog.Category
	Category   string
	Query      string
}

// FormField is one input of the letter form.
type FormField struct {
	Name     letter.Field
	Label    string
	Type     string // text, date or textarea
	Value    string
	Error    string
	Min      string
	Required bool
}

// FieldError returns the in-place error slot of f.
func (f FormField) FieldError() FieldError {
	return FieldError{Name: f.Name, Error: f.Error}
}

// LetterForm is the generator form.
type LetterForm struct {
	TemplateID string
	Fields     []FormField
}

// Preview is the rendered letter with its statistics.
type Preview struct {
	Text  string
	Stats letter.Stats
}

// Validation summarizes a validated form.
type Validation struct {
	Valid  bool
	Errors []string
}

// FieldError is the error message slot below one form field. OOB marks it
// for an out-of-band swap.
type FieldError struct {
	Name  letter.Field
	Error string
	OOB   bool
}

// Generator is the data of the letter generator page.
type Generator struct {
	Template      catalog.Template
	Form          LetterForm
	Preview       Preview
	Formats       []export.Format
	PrivacyNotice string
}

// BlogList is the data of the blog index.
type BlogList struct {
	Posts      []blog.Post
	Categories []string
	Tags       []string
	Category   string
	Tag        string
	Page       int
	Pages      int
}

// HasPrev reports whether a previous page exists.
func (b BlogList) HasPrev() bool { return b.Page > 1 }

// HasNext reports whether a next page exists.
func (b BlogList) HasNext() bool { return b.Page < b.Pages }

// BlogPost is the data of a single post page.
type BlogPost struct {
	Post    blog.Post
	HTML    string
	Related []blog.Post
}

// Contact is the contact form state.
type Contact struct {
	Form      mailer.ContactMessage
	Errors    map[string]string
	Sent      bool
	Reference string
}

// Error is the data of the error page and toast.
type Error struct {
	Code      int
	Title     string
	Message   string
	Errors    []string
	RequestID string
}
