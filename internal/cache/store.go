package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vincentkyalomusembi/PathFinder/internal/config"
)

// Store is a best-effort TTL cache over Redis. Reachability is probed once
// at construction; if the probe fails every operation becomes a no-op and
// callers continue uncached. The store never reports cache trouble as an
// error, only as an absent value or a false success flag.
//
// Two key families live here: "session:{id}:{field}" entries, deletable by
// prefix, and "cache:{name}:{digest}" entries built by DeriveKey.
type Store struct {
	client     *redis.Client
	logger     *zap.Logger
	connected  bool
	sessionTTL time.Duration
}

func New(cfg *config.Config, logger *zap.Logger) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	s := &Store{
		client:     client,
		logger:     logger,
		sessionTTL: cfg.SessionTTL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, caching disabled", zap.Error(err))
		return s
	}

	s.connected = true
	return s
}

// Connected reports whether the initial reachability probe succeeded.
func (s *Store) Connected() bool {
	return s.connected
}

func (s *Store) Close() error {
	return s.client.Close()
}

// Get returns the value stored under key. Values that parse as JSON come
// back decoded; anything else comes back as the verbatim string. The second
// return is false when the key is absent, expired, or the store is down.
func (s *Store) Get(ctx context.Context, key string) (any, bool) {
	if !s.connected {
		return nil, false
	}

	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var decoded any
	if err := json.Unmarshal([]byte(val), &decoded); err == nil {
		return decoded, true
	}
	return val, true
}

// GetJSON decodes the value stored under key into dest. It returns false
// when the key is absent or the stored value does not decode into dest.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) bool {
	if !s.connected {
		return false
	}

	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := json.Unmarshal(val, dest); err != nil {
		s.logger.Warn("cache value did not decode", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores value under key for ttl. Strings are stored verbatim;
// structured values are JSON-serialized first.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if !s.connected {
		return false
	}

	var payload any
	switch v := value.(type) {
	case string:
		payload = v
	case []byte:
		payload = v
	default:
		data, err := json.Marshal(value)
		if err != nil {
			s.logger.Warn("cache value did not serialize", zap.String("key", key), zap.Error(err))
			return false
		}
		payload = data
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// DeleteByPrefix removes every key beginning with prefix and returns how
// many were deleted.
func (s *Store) DeleteByPrefix(ctx context.Context, prefix string) int {
	if !s.connected {
		return 0
	}

	deleted := 0
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn("cache delete failed", zap.String("key", iter.Val()), zap.Error(err))
			continue
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("cache scan failed", zap.String("prefix", prefix), zap.Error(err))
	}
	return deleted
}

// NewSessionID mints an identifier for the session key family.
func (s *Store) NewSessionID() string {
	return uuid.NewString()
}

func sessionKey(sessionID, field string) string {
	return "session:" + sessionID + ":" + field
}

func (s *Store) SetSessionValue(ctx context.Context, sessionID, field string, value any, ttl time.Duration) bool {
	if ttl == 0 {
		ttl = s.sessionTTL
	}
	return s.Set(ctx, sessionKey(sessionID, field), value, ttl)
}

func (s *Store) GetSessionValue(ctx context.Context, sessionID, field string) (any, bool) {
	return s.Get(ctx, sessionKey(sessionID, field))
}

// DeleteSession drops every field stored for the session.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) int {
	return s.DeleteByPrefix(ctx, "session:"+sessionID+":")
}
