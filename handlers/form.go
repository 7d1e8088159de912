package handlers

import (
	"strings"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/letter"
	"github.com/dmitrymomot/resignly/views"
)

// templateIDField is the hidden form field carrying the selected template.
const templateIDField = "templateId"

func fieldType(f letter.Field) string {
	switch f {
	case letter.FieldLastWorkingDate, letter.FieldResignationDate:
		return "date"
	case letter.FieldReason, letter.FieldCustomMessage:
		return "textarea"
	}
	return "text"
}

// letterForm builds the generator form for data. errs may be nil.
func letterForm(templateID string, data letter.Data, errs letter.FormValidation, opts ...letter.Option) views.LetterForm {
	form := views.LetterForm{TemplateID: templateID, Fields: make([]views.FormField, 0, len(letter.Fields))}
	for _, f := range letter.Fields {
		field := views.FormField{
			Name:     f,
			Label:    f.Label(),
			Type:     fieldType(f),
			Value:    data.Get(f),
			Error:    errs.Message(f),
			Required: f.Required(),
		}
		if f == letter.FieldLastWorkingDate {
			field.Min = letter.MinDate(opts...)
		}
		form.Fields = append(form.Fields, field)
	}
	return form
}

// bindLetter reads the letter fields and the selected template from the
// form. A missing or unknown template yields nil.
func bindLetter(c resignly.Context) (letter.Data, *catalog.Template, error) {
	var data letter.Data
	if err := c.Bind(&data); err != nil {
		return letter.Data{}, nil, err
	}

	id := strings.TrimSpace(c.Form(templateIDField))
	if id == "" {
		return data, nil, nil
	}
	tpl, err := catalog.Get(id)
	if err != nil {
		return data, nil, nil //nolint:nilerr
	}
	return data, &tpl, nil
}
