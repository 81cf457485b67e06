package alert

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

type Sender interface {
	SendAlert(riskScore float64, manual bool) error
	SendTest() error
	Configured() bool
	Recipients() []string
}

type Mailer struct {
	host       string
	port       int
	user       string
	password   string
	recipients []string
}

func NewMailer(host string, port int, user, password string, recipients []string) *Mailer {
	return &Mailer{
		host:       host,
		port:       port,
		user:       user,
		password:   password,
		recipients: recipients,
	}
}

func (m *Mailer) Configured() bool {
	return m.host != "" && m.user != "" && m.password != "" && len(m.recipients) > 0
}

func (m *Mailer) Recipients() []string {
	return m.recipients
}

func (m *Mailer) SendAlert(riskScore float64, manual bool) error {
	trigger := "automatic risk threshold"
	if manual {
		trigger = "manual request"
	}

	subject := fmt.Sprintf("Discourse Escalation Alert - Risk Score %.1f", riskScore)
	body := fmt.Sprintf(
		"Escalation risk has reached %.1f.\n\nTrigger: %s\nTime: %s\n\nReview the dashboard for drivers and affected issue clusters.",
		riskScore, trigger, time.Now().UTC().Format(time.RFC1123),
	)

	return m.send(subject, body)
}

func (m *Mailer) SendTest() error {
	return m.send(
		"Civicpulse Test Email",
		"This is a test email confirming the alert delivery configuration works.",
	)
}

func (m *Mailer) send(subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("email is not configured: set EMAIL_HOST, EMAIL_USER, EMAIL_APP_PASSWORD and EMAIL_RECIPIENTS")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", m.recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// ParseRecipients splits a comma-separated recipient list from the
// environment, dropping empty entries.
func ParseRecipients(raw string) []string {
	var recipients []string
	for _, r := range strings.Split(raw, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			recipients = append(recipients, r)
		}
	}
	return recipients
}
