package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore lleva el registro de sesiones abiertas por usuario.
// Un token solo es válido mientras su jti siga registrado.
type SessionStore interface {
	Store(jti, userID string, ttl time.Duration) error
	Exists(jti string) (bool, error)
	Revoke(jti string) error
	RevokeUser(userID string) error
}

type sessionEntry struct {
	userID  string
	expires time.Time
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	byUser   map[string]map[string]struct{}
	now      func() time.Time
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]sessionEntry),
		byUser:   make(map[string]map[string]struct{}),
		now:      time.Now,
	}
}

func (s *memorySessionStore) Store(jti, userID string, ttl time.Duration) error {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[jti] = sessionEntry{userID: userID, expires: s.now().Add(ttl)}
	if userID == "" {
		return nil
	}
	set, ok := s.byUser[userID]
	if !ok {
		set = make(map[string]struct{})
		s.byUser[userID] = set
	}
	set[jti] = struct{}{}
	return nil
}

func (s *memorySessionStore) Exists(jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[jti]
	if !ok {
		return false, nil
	}
	if s.now().After(entry.expires) {
		s.dropLocked(jti, entry.userID)
		return false, nil
	}
	return true, nil
}

func (s *memorySessionStore) Revoke(jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.sessions[jti]; ok {
		s.dropLocked(jti, entry.userID)
	}
	return nil
}

func (s *memorySessionStore) RevokeUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for jti := range s.byUser[userID] {
		delete(s.sessions, jti)
	}
	delete(s.byUser, userID)
	return nil
}

// dropLocked asume s.mu tomado.
func (s *memorySessionStore) dropLocked(jti, userID string) {
	delete(s.sessions, jti)
	if set, ok := s.byUser[userID]; ok {
		delete(set, jti)
		if len(set) == 0 {
			delete(s.byUser, userID)
		}
	}
}

type redisSessionClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

const redisSessionTimeout = 500 * time.Millisecond

// redisSessionStore guarda cada jti con TTL y un set por usuario con sus jti.
// El set puede contener jti ya vencidos; RevokeUser los borra igual.
type redisSessionStore struct {
	client redisSessionClient
	prefix string
}

// NewRedisSessionStore comparte las sesiones entre instancias del API.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	if client == nil {
		return nil
	}
	return &redisSessionStore{
		client: client,
		prefix: "arogya:session:",
	}
}

func (s *redisSessionStore) sessionKey(jti string) string {
	return s.prefix + jti
}

func (s *redisSessionStore) userKey(userID string) string {
	return s.prefix + "user:" + userID
}

func (s *redisSessionStore) Store(jti, userID string, ttl time.Duration) error {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisSessionTimeout)
	defer cancel()
	if err := s.client.Set(ctx, s.sessionKey(jti), userID, ttl).Err(); err != nil {
		return err
	}
	if userID == "" {
		return nil
	}
	if err := s.client.SAdd(ctx, s.userKey(userID), jti).Err(); err != nil {
		return err
	}
	// El set vive lo mismo que la sesión más nueva.
	return s.client.Expire(ctx, s.userKey(userID), ttl).Err()
}

func (s *redisSessionStore) Exists(jti string) (bool, error) {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisSessionTimeout)
	defer cancel()
	n, err := s.client.Exists(ctx, s.sessionKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessionStore) Revoke(jti string) error {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisSessionTimeout)
	defer cancel()
	return s.client.Del(ctx, s.sessionKey(jti)).Err()
}

func (s *redisSessionStore) RevokeUser(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisSessionTimeout)
	defer cancel()
	jtis, err := s.client.SMembers(ctx, s.userKey(userID)).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(jtis)+1)
	for _, jti := range jtis {
		keys = append(keys, s.sessionKey(jti))
	}
	keys = append(keys, s.userKey(userID))
	return s.client.Del(ctx, keys...).Err()
}
