package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"restaurant-ordering/cart-svc/domain"
)

// RedisCartStorage persists one session's cart under a single key as a JSON
// array of line items. Save never reports failure to the caller: the
// in-memory cart stays authoritative even when the slot is unavailable.
type RedisCartStorage struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration
}

func NewRedisCartStorage(client *redis.Client, sessionID string, ttl time.Duration) *RedisCartStorage {
	return &RedisCartStorage{Client: client, Key: CartKey(sessionID), TTL: ttl}
}

func CartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStorage) Save(ctx context.Context, items []domain.LineItem) {
	payload, err := json.Marshal(items)
	if err != nil {
		logrus.Warnf("Warning: failed to serialize cart %s: %v", s.Key, err)
		return
	}
	if err := s.Client.Set(ctx, s.Key, payload, s.TTL).Err(); err != nil {
		logrus.Warnf("Warning: failed to save cart %s: %v", s.Key, err)
	}
}

func (s *RedisCartStorage) Load(ctx context.Context) []domain.LineItem {
	raw, err := s.Client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		logrus.Warnf("Warning: failed to load cart %s: %v", s.Key, err)
		return nil
	}
	return DecodeItems(s.Key, raw)
}

// DecodeItems deserializes a stored cart. Corrupt payloads yield an empty
// cart rather than an error, and lines that somehow reached the slot with a
// non-positive quantity are dropped on the way in.
func DecodeItems(key string, raw []byte) []domain.LineItem {
	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		logrus.Warnf("Warning: discarding corrupt cart %s: %v", key, err)
		return nil
	}

	valid := items[:0]
	for _, item := range items {
		if item.Quantity < 1 {
			logrus.Warnf("Warning: dropping stored line %s with quantity %d", item.ID, item.Quantity)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}
