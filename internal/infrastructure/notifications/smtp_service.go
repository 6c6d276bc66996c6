package notifications

import (
	"fmt"
	"net/smtp"

	"github.com/you/authsvc/domain"
)

// SMTPServiceImpl implements domain.NotificationService over plain SMTP
type SMTPServiceImpl struct {
	host     string
	port     string
	from     string
	username string
	password string
}

// NewSMTPService creates a new SMTP notification service
func NewSMTPService(host, port, from, username, password string) domain.NotificationService {
	return &SMTPServiceImpl{
		host:     host,
		port:     port,
		from:     from,
		username: username,
		password: password,
	}
}

// SendEmail implements domain.NotificationService
func (s *SMTPServiceImpl) SendEmail(to, subject, body string) error {
	// If the sender is not configured, log instead of sending
	if s.host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendSMS implements domain.NotificationService
func (s *SMTPServiceImpl) SendSMS(to, message string) error {
	// SMS not implemented over SMTP
	fmt.Printf("[MOCK SMS] To: %s, Message: %s\n", to, message)
	return nil
}
