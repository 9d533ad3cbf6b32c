package email

import "sync"

// MockProvider накапливает отправленные письма в памяти. Для тестов.
type MockProvider struct {
	mu   sync.Mutex
	Sent []*Email
	Err  error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Send(email *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, email)
	return nil
}

func (m *MockProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	return m.Send(email)
}

func (m *MockProvider) SendActivation(to string, username string, activationURL string) error {
	return m.Send(&Email{
		To:      []string{to},
		Subject: "Activate your account",
		Body:    activationURL,
	})
}

func (m *MockProvider) Validate() error { return nil }
func (m *MockProvider) Close() error    { return nil }

// LastSent возвращает последнее отправленное письмо либо nil
func (m *MockProvider) LastSent() *Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return nil
	}
	return m.Sent[len(m.Sent)-1]
}
