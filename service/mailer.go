package service

import (
	"fmt"

	mail "github.com/go-mail/mail/v2"
	"github.com/noorix/hub/backend/models"
)

// Mailer sends operational mail over SMTP. All sends are best effort: a
// delivery failure is logged by the caller, never surfaced to the user whose
// request triggered it.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string // feedback notification inbox
}

// Configured reports whether enough SMTP settings are present to send.
func (m *Mailer) Configured() bool {
	return m != nil && m.Host != "" && m.From != "" && m.To != ""
}

// NotifyFeedback mails the configured inbox about a newly submitted
// feedback item.
func (m *Mailer) NotifyFeedback(fb *models.Feedback) error {
	if !m.Configured() {
		return fmt.Errorf("mailer not configured")
	}
	msg := mail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", "New feedback: "+fb.Subject)
	body := fmt.Sprintf("From: %s\nSubmitted: %s\n\n%s",
		fb.CreatedByEmail, fb.CreatedAt.Format("2006-01-02 15:04:05 MST"), fb.Message)
	msg.SetBody("text/plain", body)

	d := mail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	return d.DialAndSend(msg)
}
