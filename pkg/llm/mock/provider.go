package mock

import (
	"context"
	"sync"
	"time"

	"catalog-chat-be/pkg/llm"
)

const defaultReply = "This is a mock assistant response. Set LLM_MOCK_MODE=false and configure a provider API key for real replies."

// MockProvider returns canned responses. It backs LLM_MOCK_MODE for keyless
// development and doubles as the test seam for the chat pipeline.
type MockProvider struct {
	mu        sync.Mutex
	responses []string
	next      int

	// Err, when set, is returned by every call.
	Err error
	// Delay is applied before responding; combined with a short context
	// deadline it simulates provider timeouts.
	Delay time.Duration

	// Calls records every history passed in, newest last.
	Calls [][]llm.Message
}

var _ llm.LLMProvider = (*MockProvider)(nil)

func NewMockProvider(responses ...string) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Chat(ctx context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, history)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.Err != nil {
		return "", m.Err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.next < len(m.responses) {
		reply := m.responses[m.next]
		m.next++
		return reply, nil
	}
	return defaultReply, nil
}
