package mailer

// Config holds the addresses used for outgoing mail.
type Config struct {
	From          string `env:"MAIL_FROM" envDefault:"Resignly <noreply@resignly.app>"`
	ContactTo     string `env:"CONTACT_TO" envDefault:"support@resignly.app"`
	SubjectPrefix string `env:"MAIL_SUBJECT_PREFIX" envDefault:"[Resignly]"`
	DefaultLayout string `env:"MAIL_DEFAULT_LAYOUT" envDefault:"base.html"`
}
