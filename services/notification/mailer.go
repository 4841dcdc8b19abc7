package notification

import (
	"fmt"
	"net/smtp"

	"roomly/config"
	"roomly/models"
)

// SMTPMailer sends email through a plain SMTP relay.
type SMTPMailer struct{}

func (SMTPMailer) Send(to, subject, body string) error {
	cfg := config.AppConfig
	from := cfg.SMTPUser

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		from, to, subject, body))

	auth := smtp.PlainAuth("", from, cfg.SMTPPass, cfg.SMTPHost)
	return smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, from, []string{to}, msg)
}

// RenderEmail produces the subject and HTML body for a reservation event.
func RenderEmail(p models.EmailPayload) (subject, body string) {
	switch p.Kind {
	case models.NotificationKindCreated:
		subject = "Your reservation is confirmed"
	case models.NotificationKindUpdated:
		subject = "Your reservation was updated"
	case models.NotificationKindCancelled:
		subject = "Your reservation was cancelled"
	case models.NotificationKindAdminAlert:
		subject = "New reservation activity"
	default:
		subject = "Reservation notification"
	}

	body = fmt.Sprintf(`
		<h2>%s</h2>
		<p>Room: <strong>%s</strong></p>
		<p>From: %s<br>To: %s</p>
		<p>Reservation reference: %s</p>
	`, subject, p.ResourceName, p.Start, p.End, p.ReservationID)
	return subject, body
}
