package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue. The only
// template today is the registration verification code; Subject/Text/HTML
// allow raw one-off messages.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "verification_code"
	Data     map[string]any `json:"data,omitempty"`
}

// TemplateVerificationCode identifies the registration-code email.
// Data keys: "Name", "Code".
const TemplateVerificationCode = "verification_code"
