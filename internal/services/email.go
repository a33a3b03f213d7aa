package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/resend/resend-go/v2"

	"billiton/internal/config"
)

// Mailer sends notification emails. Delivery is best-effort everywhere it is
// used: callers log failures and carry on.
type Mailer interface {
	SendHTMLEmail(to, subject, htmlBody, textBody string) error
}

// EmailService delivers emails through the configured provider: the Resend
// HTTP API, plain SMTP, or the console (development).
type EmailService struct {
	cfg    *config.EmailConfig
	resend *resend.Client
}

// NewEmailService creates a new email service. The Resend client is built
// once here and shared across requests.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{cfg: cfg}
	if cfg.Provider == "resend" {
		s.resend = resend.NewClient(cfg.ResendAPIKey)
	}
	return s
}

// SendHTMLEmail sends an HTML email with plain text fallback
func (s *EmailService) SendHTMLEmail(to, subject, htmlBody, textBody string) error {
	switch s.cfg.Provider {
	case "resend":
		return s.sendViaResend(to, subject, htmlBody, textBody)
	case "smtp":
		return s.sendViaSMTP(to, subject, htmlBody, textBody)
	default:
		log.Printf("[EMAIL] Would send to %s: %s", to, subject)
		return nil
	}
}

// sendViaResend sends through the Resend transactional email API
func (s *EmailService) sendViaResend(to, subject, htmlBody, textBody string) error {
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.resend.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("[EMAIL] Sent via resend: id=%s", sent.Id)
	return nil
}

// sendViaSMTP sends a multipart HTML+text message over plain SMTP
func (s *EmailService) sendViaSMTP(to, subject, htmlBody, textBody string) error {
	// Validate configuration
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	// Set up authentication
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	// Create email message
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	// Build multipart message
	boundary := "----=_NextPart_1234567890"

	headers := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n"

	// Plain text part
	message := headers +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		textBody + "\r\n"

	// HTML part (if provided)
	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"Content-Transfer-Encoding: quoted-printable\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	// Send email
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
