// Package mailer renders markdown email templates and sends them through a
// pluggable Sender.
//
// Templates are markdown files with YAML front matter. The body is executed
// with text/template, converted to HTML by goldmark and wrapped in an
// html/template layout:
//
//	---
//	Subject: "Contact form: {{.Subject}}"
//	---
//	## New message from {{.Name}}
//
//	{{quote .Message}}
//
//	[!button|Reply](mailto:{{.Email}})
//
// The [!button|Label](URL) syntax renders a styled call-to-action link.
//
// The built-in templates cover the site contact form:
//
//	m := mailer.New(resend.New(resendCfg), nil, cfg, mailer.WithLogger(log))
//	id, err := m.SendContact(ctx, msg)
//
// When no provider is configured, NewLogSender logs each email instead.
package mailer
