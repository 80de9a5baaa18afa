//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import "sync"

type IMessageService interface {
	Add(message string)
	Messages() []string
	Clear()
}

// MessageService is the process-wide diagnostic log.
// It is append-only within a session; Clear is the explicit reset.
// Safe for concurrent use.
type MessageService struct {
	mu       sync.Mutex
	messages []string
}

func NewMessageService() *MessageService {
	return &MessageService{}
}

func (s *MessageService) Add(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

// Messages returns a snapshot in append order.
func (s *MessageService) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]string, len(s.messages))
	copy(snapshot, s.messages)
	return snapshot
}

func (s *MessageService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}
