package email

// Provider sends outbound email.
type Provider interface {
	Send(email *Email) error
	Validate() error
	Close() error
}

// NoopProvider drops all mail. Used when SMTP is not configured (tests,
// local development).
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error { return nil }
func (p *NoopProvider) Validate() error         { return nil }
func (p *NoopProvider) Close() error            { return nil }
