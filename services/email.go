package services

import (
	"fmt"
	"log"

	"licenca_flow_go/config"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail delivers an email via Resend. In test mode the message is logged
// to the console instead of sent.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		log.Printf("[EMAIL TEST MODE] To: %v | Subject: %s\n%s", email.To, email.Subject, email.TextBody)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("resend API key not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendSubmissionConfirmation notifies the applicant that the inscription was
// submitted for review
func SendSubmissionConfirmation(cfg *config.Config, toEmail string, processID uint) error {
	subject := fmt.Sprintf("Inscrição #%d submetida", processID)
	text := fmt.Sprintf(
		"Sua inscrição #%d foi submetida com sucesso e aguarda análise.\n\nAcompanhe o andamento em %s.",
		processID, cfg.AppURL,
	)
	html := fmt.Sprintf(
		`<p>Sua inscrição <strong>#%d</strong> foi submetida com sucesso e aguarda análise.</p>
<p>Acompanhe o andamento em <a href="%s">%s</a>.</p>`,
		processID, cfg.AppURL, cfg.AppURL,
	)

	return SendEmail(cfg, &Email{
		To:       []string{toEmail},
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	})
}
