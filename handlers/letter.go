package handlers

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/htmx"
	"github.com/dmitrymomot/resignly/pkg/letter"
	"github.com/dmitrymomot/resignly/views"
)

// Events fired through HX-Trigger.
const (
	EventFormValidity  = "form-validity"
	EventLetterCleared = "letter-cleared"
	EventLetterCopy    = "letter-copy"
)

// ExportSessionHeader identifies the browser tab running an export.
const ExportSessionHeader = "X-Export-Session"

// ExportIDHeader carries the id of a downloaded export.
const ExportIDHeader = "X-Export-ID"

// Letter serves the htmx endpoints of the generator: live preview,
// validation, export and reset. Nothing a user enters is kept after the
// response is written.
type Letter struct {
	views    Views
	exporter *export.Exporter
	scope    resignly.Extractor
	opts     []letter.Option
}

// NewLetter creates the generator handler.
func NewLetter(v Views, exporter *export.Exporter, opts ...letter.Option) *Letter {
	return &Letter{
		views:    v,
		exporter: exporter,
		scope: resignly.NewExtractor(
			resignly.FromHeader(ExportSessionHeader),
			resignly.FromForm("exportSession"),
			resignly.FromRemoteIP(),
		),
		opts: opts,
	}
}

// Routes implements resignly.Handler.
func (h *Letter) Routes(r resignly.Router) {
	r.Route("/letter", func(r resignly.Router) {
		r.POST("/preview", h.preview)
		r.POST("/validate", h.validate)
		r.POST("/export/{format}", h.export)
		r.POST("/reset", h.reset)
	})
}

func (h *Letter) preview(c resignly.Context) error {
	data, tpl, err := bindLetter(c)
	if err != nil {
		return err
	}
	if tpl == nil {
		return resignly.ErrBadRequest("Please select a template")
	}

	text := letter.Render(tpl.Body, data, h.opts...)
	return c.Render(http.StatusOK, h.views.partial("letter_preview", views.Preview{
		Text:  text,
		Stats: letter.StatsOf(text),
	}))
}

type validationResponse struct {
	Fields letter.FormValidation `json:"fields"`
	Errors []string              `json:"errors"`
	Valid  bool                  `json:"valid"`
}

func (h *Letter) validate(c resignly.Context) error {
	data, _, err := bindLetter(c)
	if err != nil {
		return err
	}

	result := letter.ValidateForm(data, h.opts...)
	valid := letter.IsFormValid(result)

	if !c.IsHTMX() {
		return c.JSON(http.StatusOK, validationResponse{Fields: result, Errors: result.Errors(), Valid: valid})
	}

	oob := make([]htmx.Renderable, 0, len(letter.RequiredFields))
	for _, f := range letter.RequiredFields {
		oob = append(oob, h.views.partial("field_error", views.FieldError{Name: f, Error: result.Message(f), OOB: true}))
	}

	return c.Render(http.StatusOK,
		h.views.partial("validation_summary", views.Validation{Valid: valid, Errors: result.Errors()}),
		htmx.WithOOB(oob...),
		htmx.WithTriggerDetail(EventFormValidity, map[string]bool{"valid": valid}),
	)
}

func (h *Letter) export(c resignly.Context) error {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		return resignly.ErrNotFound("Unknown export format", resignly.WithError(err))
	}

	data, tpl, err := bindLetter(c)
	if err != nil {
		return err
	}

	scope, _ := h.scope.Extract(c)
	res, err := h.exporter.Export(c, export.Request{
		Template: tpl,
		Scope:    scope,
		Format:   format,
		Data:     data,
	}, httpDeliverer{c: c})
	if err != nil {
		return err
	}

	c.LogDebug("export delivered", "export_id", res.ID, "format", string(res.Format))
	return nil
}

func (h *Letter) reset(c resignly.Context) error {
	templateID := c.Form(templateIDField)
	data := letter.Clear(h.opts...)

	return c.Render(http.StatusOK,
		h.views.partial("letter_form", letterForm(templateID, data, nil, h.opts...)),
		htmx.WithTrigger(EventLetterCleared),
	)
}

type clipboardResponse struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

// httpDeliverer answers the export request itself: downloads become
// attachments and clipboard text is returned to the browser, which writes it
// to the clipboard.
type httpDeliverer struct {
	c resignly.Context
}

func (d httpDeliverer) Download(_ context.Context, dl export.Download) error {
	d.c.SetHeader(ExportIDHeader, dl.ID)
	d.c.SetHeader("Cache-Control", "no-store")
	return d.c.Attachment(dl.FileName, dl.MIME, dl.Data)
}

func (d httpDeliverer) Clipboard(_ context.Context, text string) error {
	d.c.SetHeader("Cache-Control", "no-store")
	if d.c.IsHTMX() {
		htmx.NewConfig(htmx.WithTriggerDetail(EventLetterCopy, map[string]string{"text": text})).ApplyHeaders(d.c.Response())
	}
	return d.c.JSON(http.StatusOK, clipboardResponse{Text: text, Message: export.FormatCopy.SuccessMessage()})
}
