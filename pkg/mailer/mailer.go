package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"
)

// Message is a transport-agnostic outbound email. Text is the plain body and
// HTML, when set, is attached as a multipart alternative.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
	Headers map[string]string
}

// Sender dispatches a single outbound email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config contains the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender implements Sender over SMTP using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewSMTPSender constructs an SMTP-backed sender.
func NewSMTPSender(cfg Config, logger zerolog.Logger) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host must be provided")
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}

	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger.With().Str("component", "smtp_sender").Logger(),
	}, nil
}

// Send dispatches the message synchronously. The SMTP dial blocks until the
// transport's own timeout fires; the context is only checked up front.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	for key, value := range msg.Headers {
		m.SetHeader(key, value)
	}

	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug().Strs("to", msg.To).Msg("email dispatched")
	return nil
}
