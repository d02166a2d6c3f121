package email

// SendResult is the outcome of one message in a batch.
type SendResult struct {
	Recipient string
	Err       error
}

// Provider is the outbound email interface.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// SendBatch delivers a batch of messages over one connection and
	// reports a per-message outcome, index-aligned with the input. A
	// connection failure fails the whole batch.
	SendBatch(emails []*Email) ([]SendResult, error)

	// SendTemplate renders a named template and sends the result.
	SendTemplate(to []string, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named email templates.
type TemplateRenderer interface {
	// Render produces the subject and HTML body for a template.
	Render(templateName string, data TemplateData) (subject string, body string, err error)

	// AddTemplate registers a template.
	AddTemplate(name string, subject string, body string) error

	// TemplateNames lists the registered template names.
	TemplateNames() []string
}
