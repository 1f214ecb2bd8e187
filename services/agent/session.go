package agent

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tripwise/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:sess:"

// SessionStore persists per-conversation state: message history, the
// payment-authorization fact, and confirmed bookings.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatSession, error)
	Set(ctx context.Context, sessionID string, sess *models.ChatSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	key := sessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatSession{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.ChatSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, sess *models.ChatSession) error {
	key := sessionPrefix + sessionID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// MemorySessionStore is an in-process store for tests and for running
// without Redis. It round-trips sessions through JSON so callers see the
// same copy semantics as the Redis store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string][]byte)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.ChatSession, error) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return &models.ChatSession{}, nil
	}
	var sess models.ChatSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *MemorySessionStore) Set(_ context.Context, sessionID string, sess *models.ChatSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
