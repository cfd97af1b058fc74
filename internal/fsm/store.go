package fsm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const sessionPrefix = "fsm:session:"

// Store keeps one conversation session per chat.
type Store interface {
	// Get returns nil without an error when the chat has no live session.
	Get(ctx context.Context, chatID int64) (*Session, error)
	Save(ctx context.Context, chatID int64, session *Session) error
	Clear(ctx context.Context, chatID int64) error
}

type redisStore struct {
	client *goredis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisStore(client *goredis.Client, ttl time.Duration) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *redisStore) Get(ctx context.Context, chatID int64) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(chatID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return session, nil
}

func (s *redisStore) Save(ctx context.Context, chatID int64, session *Session) error {
	session.UpdatedAt = s.now()

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(chatID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (s *redisStore) Clear(ctx context.Context, chatID int64) error {
	if err := s.client.Del(ctx, sessionKey(chatID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func sessionKey(chatID int64) string {
	return sessionPrefix + strconv.FormatInt(chatID, 10)
}
