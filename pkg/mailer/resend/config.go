package resend

// Config holds the Resend API credentials.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
}

// Enabled reports whether an API key is set.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}
