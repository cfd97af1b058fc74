package notifications

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []tgbotapi.Chattable
	groups   []tgbotapi.MediaGroupConfig
	failures map[int64]error
}

func newRecordingSender() *recordingSender {
	return &recordingSender{failures: map[int64]error{}}
}

func chatOf(c tgbotapi.Chattable) int64 {
	switch config := c.(type) {
	case tgbotapi.MessageConfig:
		return config.ChatID
	case tgbotapi.PhotoConfig:
		return config.ChatID
	}
	return 0
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failures[chatOf(c)]; err != nil {
		return tgbotapi.Message{}, err
	}

	s.messages = append(s.messages, c)
	return tgbotapi.Message{}, nil
}

func (s *recordingSender) SendMediaGroup(config tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.groups = append(s.groups, config)
	return nil, nil
}

func (s *recordingSender) chats() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats := make([]int64, 0, len(s.messages))
	for _, message := range s.messages {
		chats = append(chats, chatOf(message))
	}
	return chats
}
