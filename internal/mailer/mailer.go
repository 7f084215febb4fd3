package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"techfest/internal/config"
)

// SendConfirmationEmail mails one registration confirmation. It is a no-op
// when SMTP credentials are not configured.
func SendConfirmationEmail(log *zerolog.Logger, cfg *config.Config, eventName, teamName, recipientEmail string) error {
	if cfg.SMTPFrom == "" || cfg.SMTPPassword == "" {
		log.Debug().Msg("SMTP not configured, skipping confirmation email")
		return nil
	}

	subject := fmt.Sprintf("Registration confirmed: %s", eventName)
	body := fmt.Sprintf("Hello!\n\nYour registration for %q has been recorded.", eventName)
	if teamName != "" {
		body = fmt.Sprintf("Hello!\n\nYour team %q has been registered for %q.", teamName, eventName)
	}
	body += "\nSee you at the fest!"

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		cfg.SMTPFrom, recipientEmail, subject, body,
	)

	auth := smtp.PlainAuth("", cfg.SMTPFrom, cfg.SMTPPassword, cfg.SMTPHost)
	if err := smtp.SendMail(cfg.SMTPAddr, auth, cfg.SMTPFrom, []string{recipientEmail}, []byte(msg)); err != nil {
		log.Warn().Msgf("failed to send email to %s: %v", recipientEmail, err)
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().Msgf("confirmation email sent to %s (event: %s)", recipientEmail, eventName)
	return nil
}
