// Package mailer delivers contact-form notifications. Delivery is best
// effort: callers log failures and move on, the submitter never sees them.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"church-backend/internal/models"
)

// Mailer is the outbound email channel. SMTPMailer talks to a real relay;
// MockMailer logs, for development and tests.
type Mailer interface {
	SendContactNotification(msg *models.Message) error
}

// SMTPMailer sends through a standard SMTP relay (gmail-style submission
// port with PLAIN auth).
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	// To is the church inbox notified about new messages.
	To string
}

func NewSMTPMailer(host string, port int, username, password, to string) *SMTPMailer {
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		To:       to,
	}
}

// SendContactNotification emails the church inbox about the submission and
// sends a confirmation back to the submitter. The confirmation failing
// does not fail the notification.
func (m *SMTPMailer) SendContactNotification(msg *models.Message) error {
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)

	notification := buildMessage(m.Username, m.To,
		fmt.Sprintf("New Message from M.O.C Website: %s", msg.Subject),
		notificationBody(msg))
	if err := smtp.SendMail(addr, auth, m.Username, []string{m.To}, notification); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	confirmation := buildMessage(m.Username, msg.Email,
		"We Received Your Message - Mission Outreach Church",
		confirmationBody(msg))
	if err := smtp.SendMail(addr, auth, m.Username, []string{msg.Email}, confirmation); err != nil {
		// The church was notified; a lost confirmation is not worth a retry.
		log.Printf("[Mailer] Confirmation email to %s failed: %v", msg.Email, err)
	}

	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func notificationBody(msg *models.Message) string {
	phone := msg.Phone
	if phone == "" {
		phone = "Not provided"
	}
	return fmt.Sprintf(
		"New contact form submission\r\n\r\nFrom: %s\r\nEmail: %s\r\nPhone: %s\r\nSubject: %s\r\n\r\n%s\r\n\r\nSubmitted on: %s\r\n",
		msg.Name, msg.Email, phone, msg.Subject, msg.Message, msg.Timestamp)
}

func confirmationBody(msg *models.Message) string {
	return fmt.Sprintf(
		"Dear %s,\r\n\r\nWe have received your message and will get back to you as soon as possible.\r\n\r\nGod bless!\r\nMission Outreach Church (M.O.C)\r\n",
		msg.Name)
}

// MockMailer logs instead of sending; used when SMTP is not configured.
type MockMailer struct{}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendContactNotification(msg *models.Message) error {
	log.Printf("[Mailer] (mock) would notify about message %d from %s <%s>", msg.ID, msg.Name, msg.Email)
	return nil
}
