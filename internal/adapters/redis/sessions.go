package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pms_marketplace/internal/domain"
)

// Sessions stores each session as one JSON document with a sliding TTL.
type Sessions struct {
	c      *redis.Client
	prefix string
}

func NewSessions(c *redis.Client, prefix string) *Sessions {
	return &Sessions{c: c, prefix: prefix}
}

func (s *Sessions) key(id string) string { return s.prefix + "session:" + id }

func (s *Sessions) Get(ctx context.Context, id string) (domain.Session, error) {
	b, err := s.c.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Session{}, err
	}
	var out domain.Session
	if err := json.Unmarshal(b, &out); err != nil {
		return domain.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return out, nil
}

func (s *Sessions) Save(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, s.key(sess.ID), b, ttl).Err()
}

func (s *Sessions) Delete(ctx context.Context, id string) error {
	return s.c.Del(ctx, s.key(id)).Err()
}
