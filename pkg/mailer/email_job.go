package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template+Data or Subject with Text/HTML is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// WelcomeJob builds the job enqueued after a user registers.
func WelcomeJob(appName, to, name string) EmailJob {
	return EmailJob{
		To:       to,
		Template: "welcome",
		Data: map[string]any{
			"AppName": appName,
			"Name":    name,
			"Email":   to,
		},
	}
}
