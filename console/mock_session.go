/* mock_session.go
 * Contains mock implementation of Session for testing
 */

package console

// MockSession implements Session for testing purposes
type MockSession struct {
	// SentMessages stores all messages sent during tests
	SentMessages []string
}

// Send implements Session.Send
func (m *MockSession) Send(content string) {
	m.SentMessages = append(m.SentMessages, content)
}

// GetLastMessage returns the last message sent, or "" if none
func (m *MockSession) GetLastMessage() string {
	if len(m.SentMessages) == 0 {
		return ""
	}
	return m.SentMessages[len(m.SentMessages)-1]
}

// ClearMessages clears all stored messages
func (m *MockSession) ClearMessages() {
	m.SentMessages = nil
}

// NewMockSession creates a new MockSession for testing
func NewMockSession() *MockSession {
	return &MockSession{
		SentMessages: make([]string, 0),
	}
}
