package mailing

import (
	"strconv"

	"gopkg.in/gomail.v2"
)

type (
	Mailer interface {
		Enabled() bool
		SendMail(toEmail string, subject string, body string) error
	}

	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	mailer struct {
		config MailConfig
	}
)

func NewMailer(config MailConfig) Mailer {
	return &mailer{config: config}
}

// Enabled reports whether SMTP is configured. Callers treat mail as
// best-effort and skip it entirely when it is not.
func (m *mailer) Enabled() bool {
	return m.config.SMTPHost != ""
}

func (m *mailer) SendMail(toEmail string, subject string, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.config.SMTPEmail)
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	return dialer.DialAndSend(message)
}
