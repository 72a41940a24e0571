package email

import (
	"bytes"
	"fmt"
	"go-jobboard-backend/config"
	"html/template"
	"net/smtp"
)

// Sender delivers a rendered message to one recipient.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	send      func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewsletterEmailData holds the data for subscription confirmation emails
type NewsletterEmailData struct {
	Email string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		send:      smtp.SendMail,
	}
}

// newsletterEmailTemplate is the HTML template for subscription confirmations
const newsletterEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Newsletter subscription</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>You're subscribed!</h1>
        </div>
        <div class="content">
            <p>Thanks for subscribing with {{.Email}}.</p>
            <p>We'll send you the newest remote jobs every week.</p>
        </div>
        <div class="footer">
            <p>You received this email because {{.Email}} was entered in our newsletter form.</p>
        </div>
    </div>
</body>
</html>`

var newsletterTmpl = template.Must(template.New("newsletter").Parse(newsletterEmailTemplate))

// RenderNewsletterConfirmation renders the confirmation body.
func RenderNewsletterConfirmation(data NewsletterEmailData) (string, error) {
	var body bytes.Buffer
	if err := newsletterTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// Send delivers an HTML email to a single recipient
func (s *EmailService) Send(to, subject, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		htmlBody,
	))

	// Setup SMTP authentication
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
