package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Inbox    string
}

// Mailer sends contact-form messages over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	inbox  string
}

// New creates a new Mailer. Returns an error when credentials are missing so
// the caller can surface a configuration problem instead of failing later.
func New(cfg Config) (*Mailer, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("mail credentials are missing")
	}
	inbox := cfg.Inbox
	if inbox == "" {
		inbox = cfg.Username
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		inbox:  inbox,
	}, nil
}

// SendContactMessage delivers a contact-form submission to the configured
// inbox.
func (m *Mailer) SendContactMessage(name, fromEmail, title, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fromEmail)
	msg.SetHeader("To", m.inbox)
	msg.SetHeader("Subject", fmt.Sprintf("New Message from Contact Form: %s", title))
	msg.SetBody("text/plain", fmt.Sprintf("You have received a new message from %s (%s):\n\n%s", name, fromEmail, message))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}
	return nil
}
