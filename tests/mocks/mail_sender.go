package mocks

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/kkuglocal/campus-backend/internal/domain/valueobject/mail"
)

type MockMailSender struct {
	mu        sync.Mutex
	sentMails []mail.Payload
}

func NewMockMailSender() *MockMailSender {
	return &MockMailSender{
		sentMails: make([]mail.Payload, 0),
	}
}

func (m *MockMailSender) SendMail(ctx context.Context, payload mail.Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sentMails = append(m.sentMails, payload)
	return nil
}

func (m *MockMailSender) GetSentMails() []mail.Payload {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]mail.Payload{}, m.sentMails...)
}

func (m *MockMailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sentMails = make([]mail.Payload, 0)
}

func (m *MockMailSender) AssertMailSent(t *testing.T, email, subject string) {
	t.Helper()

	mails := m.GetSentMails()
	for _, sent := range mails {
		if sent.To == email && strings.Contains(sent.Subject, subject) {
			return
		}
	}
	t.Errorf("expected mail to %s with subject containing %q, none found", email, subject)
}

func (m *MockMailSender) AssertMailBodyContains(t *testing.T, email, substr string) {
	t.Helper()

	mails := m.GetSentMails()
	for _, sent := range mails {
		if sent.To == email && strings.Contains(sent.Body, substr) {
			return
		}
	}
	t.Errorf("expected mail to %s with body containing %q, none found", email, substr)
}

func (m *MockMailSender) AssertNoMailSent(t *testing.T, email string) {
	t.Helper()

	mails := m.GetSentMails()
	for _, sent := range mails {
		if sent.To == email {
			t.Errorf("expected no mail to %s, but found one with subject %q", email, sent.Subject)
			return
		}
	}
}
