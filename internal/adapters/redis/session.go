package redisad

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vista_hostel/internal/domain"
)

// sessionKey is the single durable slot mirroring the authenticated user.
const sessionKey = "vista:session"

// SessionStore keeps the user record as a JSON blob under one key, surviving
// process restarts. No TTL: the record lives until logout erases it.
type SessionStore struct{ c *redis.Client }

func NewSessionStore(addr, pass string, db int) *SessionStore {
	return &SessionStore{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (s *SessionStore) Load(ctx context.Context) (*domain.User, error) {
	b, err := s.c.Get(ctx, sessionKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSession, err)
	}
	return &u, nil
}

func (s *SessionStore) Save(ctx context.Context, u domain.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, sessionKey, b, 0).Err()
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.c.Del(ctx, sessionKey).Err()
}
