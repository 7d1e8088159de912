package mailer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	texttemplate "text/template"

	"github.com/google/uuid"

	"github.com/dmitrymomot/resignly/pkg/logger"
	"github.com/dmitrymomot/resignly/pkg/sanitizer"
)

// ContactTemplate is the template used by SendContact.
const ContactTemplate = "contact.md"

// Mailer renders templates and hands the result to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
	logger   *slog.Logger
	newID    func() string
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		m.logger = logger.Component(l, "mailer")
	}
}

// WithIDGenerator replaces the uuid generator for message references.
func WithIDGenerator(fn func() string) Option {
	return func(m *Mailer) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// New returns a Mailer. A nil renderer uses the built-in templates.
func New(sender Sender, renderer *Renderer, cfg Config, opts ...Option) *Mailer {
	if renderer == nil {
		renderer = NewRenderer(Templates())
	}
	if cfg.DefaultLayout == "" {
		cfg.DefaultLayout = "base.html"
	}
	m := &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
		logger:   logger.NewNope(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendParams describes a templated email.
type SendParams struct {
	To       string
	Template string
	Data     any

	// Subject overrides the template's Subject metadata.
	Subject string
	Layout  string
	ReplyTo string
	Headers map[string]string
	Tags    Tags
}

// Send renders params.Template and sends it. The subject is taken from
// params, then from template metadata, and is itself executed as a template
// with params.Data.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	res, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject, _ = res.Metadata["Subject"].(string)
	}
	subject, err = executeSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}
	if m.config.SubjectPrefix != "" && subject != "" {
		subject = m.config.SubjectPrefix + " " + subject
	}

	return m.SendRaw(ctx, &Email{
		To:      []string{params.To},
		From:    m.config.From,
		ReplyTo: params.ReplyTo,
		Subject: subject,
		HTML:    res.HTML,
		Text:    res.Text,
		Headers: params.Headers,
		Tags:    params.Tags,
	})
}

// SendRaw sends a prepared email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if err := email.validate(); err != nil {
		return err
	}
	if email.From == "" {
		email.From = m.config.From
	}

	if err := m.sender.Send(ctx, email); err != nil {
		m.logger.ErrorContext(ctx, "email delivery failed",
			slog.String("subject", email.Subject),
			slog.Any("error", err),
		)
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// SendContact sanitizes and validates msg, then emails it to the configured
// contact address with the sender as reply-to. It returns the message
// reference. Invalid input returns a *ContactError.
func (m *Mailer) SendContact(ctx context.Context, msg ContactMessage) (string, error) {
	if err := sanitizer.SanitizeStruct(&msg); err != nil {
		return "", err
	}
	if fields := msg.Validate(); len(fields) > 0 {
		return "", &ContactError{Fields: fields}
	}

	id := m.newID()
	err := m.Send(ctx, SendParams{
		To:       m.config.ContactTo,
		Template: ContactTemplate,
		ReplyTo:  Recipient(msg.Name, msg.Email),
		Headers:  map[string]string{"X-Contact-ID": id},
		Tags:     Tags{"type": "contact"},
		Data: struct {
			ContactMessage
			ID string
		}{msg, id},
	})
	if err != nil {
		return "", err
	}

	m.logger.InfoContext(ctx, "contact message sent", slog.String("contact_id", id))
	return id, nil
}

// ContactError lists the invalid fields of a ContactMessage.
type ContactError struct {
	Fields map[string]string
}

func (e *ContactError) Error() string {
	return "mailer: invalid contact message"
}

func executeSubject(subject string, data any) (string, error) {
	if !strings.Contains(subject, "{{") {
		return subject, nil
	}
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
