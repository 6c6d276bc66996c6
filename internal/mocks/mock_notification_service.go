package mocks

import "sync"

// MockNotificationService implements domain.NotificationService interface
// for testing. Sent messages are recorded for assertions; delivery runs on
// a goroutine in the OTP service, so access is synchronized.
type MockNotificationService struct {
	SendEmailFunc func(to, subject, body string) error
	SendSMSFunc   func(to, message string) error

	mu         sync.Mutex
	SentEmails []SentEmail
	SentSMS    []SentSMS
}

type SentEmail struct {
	To      string
	Subject string
	Body    string
}

type SentSMS struct {
	To      string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail records the email
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// SendSMS records the SMS
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentSMS = append(m.SentSMS, SentSMS{To: to, Message: message})
	return nil
}

// Emails returns a snapshot of recorded emails.
func (m *MockNotificationService) Emails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentEmail(nil), m.SentEmails...)
}

// SMS returns a snapshot of recorded SMS messages.
func (m *MockNotificationService) SMS() []SentSMS {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentSMS(nil), m.SentSMS...)
}
