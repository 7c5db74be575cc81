package mailer

// TemplateRegistrationConfirmation is the template name for the email
// sent after a successful citizen or partner registration.
const TemplateRegistrationConfirmation = "registration_confirmation"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is recommended as fallback. Template+Data render
// subject/text/html in the worker when set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
