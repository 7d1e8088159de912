package mailer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/pkg/logger"
	"github.com/dmitrymomot/resignly/pkg/mailer"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *mailer.Email) error {
	return m.Called(ctx, email).Error(0)
}

var testConfig = mailer.Config{
	From:          "Resignly <noreply@example.com>",
	ContactTo:     "support@example.com",
	SubjectPrefix: "[Resignly]",
}

func validContact() mailer.ContactMessage {
	return mailer.ContactMessage{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Subject: "Template request",
		Message: "Could you add a template for contractors?",
	}
}

func TestMailer_SendContact(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := mailer.New(sender, nil, testConfig, mailer.WithIDGenerator(func() string { return "msg-1" }))

	var sent *mailer.Email
	sender.On("Send", mock.Anything, mock.AnythingOfType("*mailer.Email")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Email) }).
		Return(nil)

	id, err := m.SendContact(context.Background(), validContact())
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	sender.AssertExpectations(t)

	require.NotNil(t, sent)
	assert.Equal(t, []string{"support@example.com"}, sent.To)
	assert.Equal(t, "Resignly <noreply@example.com>", sent.From)
	assert.Equal(t, "Jane Smith <jane@example.com>", sent.ReplyTo)
	assert.Equal(t, "[Resignly] Contact form: Template request", sent.Subject)
	assert.Equal(t, "msg-1", sent.Headers["X-Contact-ID"])
	assert.Equal(t, "contact", sent.Tags["type"])
	assert.Contains(t, sent.HTML, "<blockquote>")
	assert.Contains(t, sent.HTML, "Could you add a template for contractors?")
	assert.Contains(t, sent.HTML, `class="btn"`)
	assert.Contains(t, sent.Text, "> Could you add a template for contractors?")
}

func TestMailer_SendContact_SanitizesInput(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := mailer.New(sender, nil, testConfig)

	var sent *mailer.Email
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Email) }).
		Return(nil)

	msg := validContact()
	msg.Name = "  <b>Jane</b>\nSmith "
	msg.Email = " JANE@Example.com "
	msg.Message = "<script>alert(1)</script>Please add more templates."

	_, err := m.SendContact(context.Background(), msg)
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "Jane Smith <jane@example.com>", sent.ReplyTo)
	assert.NotContains(t, sent.HTML, "<script")
	assert.NotContains(t, sent.HTML, "<b>Jane")
}

func TestMailer_SendContact_Invalid(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := mailer.New(sender, nil, testConfig)

	_, err := m.SendContact(context.Background(), mailer.ContactMessage{Email: "not-an-email", Message: "short"})

	var cerr *mailer.ContactError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, map[string]string{
		"name":    "Name is required",
		"email":   "Please enter a valid email address",
		"subject": "Subject is required",
		"message": "Message must be at least 10 characters",
	}, cerr.Fields)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMailer_SendContact_DeliveryFailure(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := mailer.New(sender, nil, testConfig, mailer.WithLogger(logger.NewNope()))
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("provider down"))

	id, err := m.SendContact(context.Background(), validContact())
	require.ErrorIs(t, err, mailer.ErrSendFailed)
	assert.Empty(t, id)
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"layouts/base.html": {Data: []byte(`<main>{{.Content}}</main>`)},
		"welcome.md":        {Data: []byte("---\nSubject: Hello {{.Name}}\n---\nHi **{{.Name}}**\n")},
	}

	sender := &MockSender{}
	m := mailer.New(sender, mailer.NewRenderer(fsys), mailer.Config{From: "a@example.com"})
	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
		return e.Subject == "Hello Ann" &&
			e.From == "a@example.com" &&
			e.HTML == "<main><p>Hi <strong>Ann</strong></p>\n</main>"
	})).Return(nil)

	err := m.Send(context.Background(), mailer.SendParams{
		To:       "ann@example.com",
		Template: "welcome.md",
		Data:     map[string]string{"Name": "Ann"},
	})
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_SendErrors(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := mailer.New(sender, mailer.NewRenderer(fstest.MapFS{}), mailer.Config{})

	err := m.Send(context.Background(), mailer.SendParams{Template: "x.md"})
	require.ErrorIs(t, err, mailer.ErrNoRecipient)

	err = m.Send(context.Background(), mailer.SendParams{To: "a@example.com", Template: "missing.md"})
	require.ErrorIs(t, err, mailer.ErrRenderFailed)
	require.ErrorIs(t, err, mailer.ErrTemplateNotFound)

	err = m.SendRaw(context.Background(), &mailer.Email{To: []string{"a@example.com"}, HTML: "<p>x</p>"})
	require.ErrorIs(t, err, mailer.ErrNoSubject)

	err = m.SendRaw(context.Background(), &mailer.Email{To: []string{"a@example.com"}, Subject: "x"})
	require.ErrorIs(t, err, mailer.ErrNoContent)

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestLogSender(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	s := mailer.NewLogSender(logger.NewText(&buf, 0))
	err := s.Send(context.Background(), &mailer.Email{
		To:      []string{"support@example.com"},
		Subject: "Hello",
		HTML:    "<p>secret body</p>",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "subject=Hello")
	assert.NotContains(t, buf.String(), "secret body")
}

func TestContactMessage_Validate(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validContact().Validate())

	msg := validContact()
	msg.Subject = strings.Repeat("s", mailer.MaxContactSubjectLength+1)
	assert.Equal(t, map[string]string{"subject": "Subject must be less than 200 characters"}, msg.Validate())
}
