package mailer

import "fmt"

// Tags label a message for the provider's dashboards. A struct{}{} value is
// a presence-only tag.
type Tags map[string]any

// Recipient formats an RFC 5322 address. Without a name it is just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a message ready to hand to a Sender.
type Email struct {
	Headers map[string]string
	Tags    Tags
	Subject string
	HTML    string
	// Text is the plain text alternative.
	Text    string
	From    string
	ReplyTo string
	To      []string
}

func (e *Email) validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.HTML == "":
		return ErrNoContent
	}
	return nil
}
