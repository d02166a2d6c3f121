package email

import (
	"crypto/tls"
	"fmt"

	"github.com/SujayAnishetti/ClinicalTrials/internal/logger"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider on top of gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

// NewSMTPProvider creates an SMTP provider for the given config.
func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if config.UseTLS {
		dialer.TLSConfig = &tls.Config{ServerName: config.Host}
	}

	return &SMTPProvider{
		config:   config,
		dialer:   dialer,
		renderer: renderer,
	}
}

// Send delivers a single message over a fresh connection.
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.dialer.DialAndSend(p.buildMessage(email))
}

// SendBatch dials once and sends every message over that connection.
// A dial failure fails the entire batch; an individual send failure is
// recorded and logged without aborting the rest.
func (p *SMTPProvider) SendBatch(emails []*Email) ([]SendResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sender, err := p.dialer.Dial()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer sender.Close()

	results := make([]SendResult, 0, len(emails))

	for _, email := range emails {
		recipient := ""
		if len(email.To) > 0 {
			recipient = email.To[0]
		}

		sendErr := gomail.Send(sender, p.buildMessage(email))
		logger.SMTPLog(recipient, email.Subject, sendErr)
		results = append(results, SendResult{Recipient: recipient, Err: sendErr})
	}

	return results, nil
}

// SendTemplate renders a named template and sends it to the recipients.
func (p *SMTPProvider) SendTemplate(to []string, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	subject, body, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: body,
	})
}

// Validate checks the SMTP configuration.
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	return nil
}

// Close releases provider resources. Connections are per-call, so
// there is nothing to tear down.
func (p *SMTPProvider) Close() error {
	return nil
}

func (p *SMTPProvider) buildMessage(email *Email) *gomail.Message {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	if p.config.FromName != "" {
		m.SetAddressHeader("From", from, p.config.FromName)
	} else {
		m.SetHeader("From", from)
	}

	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return m
}
