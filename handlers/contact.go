package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/pkg/mailer"
	"github.com/dmitrymomot/resignly/views"
)

// ContactSender delivers contact form messages and returns a reference.
type ContactSender interface {
	SendContact(ctx context.Context, msg mailer.ContactMessage) (string, error)
}

// Contact serves the contact form.
type Contact struct {
	views  Views
	sender ContactSender
}

// NewContact creates the contact handler.
func NewContact(v Views, sender ContactSender) *Contact {
	return &Contact{views: v, sender: sender}
}

var contactMeta = views.Meta{
	Title:       "Contact",
	Description: "Get in touch with questions, feedback or template ideas.",
	Path:        "/contact",
}

// Routes implements resignly.Handler.
func (h *Contact) Routes(r resignly.Router) {
	r.GET("/contact", h.form)
	r.POST("/contact", h.submit)
}

func (h *Contact) form(c resignly.Context) error {
	return h.views.render(c, http.StatusOK, "contact", contactMeta, views.Contact{})
}

func (h *Contact) submit(c resignly.Context) error {
	var msg mailer.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return err
	}

	ref, err := h.sender.SendContact(c, msg)
	if err != nil {
		var invalid *mailer.ContactError
		if !errors.As(err, &invalid) {
			return err
		}
		return h.respond(c, http.StatusUnprocessableEntity, views.Contact{Form: msg, Errors: invalid.Fields})
	}

	c.LogInfo("contact message sent", "reference", ref)
	return h.respond(c, http.StatusOK, views.Contact{Sent: true, Reference: ref})
}

func (h *Contact) respond(c resignly.Context, code int, data views.Contact) error {
	return c.RenderPartial(code,
		h.views.page("contact", contactMeta, data),
		h.views.partial("contact_form", data),
	)
}
