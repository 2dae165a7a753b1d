package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TrackingStore persists which order a kiosk session is watching, so a kiosk
// restart resumes tracking. The notifications themselves stay in memory.
type TrackingStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewTrackingStore(client *redis.Client, ttl time.Duration) *TrackingStore {
	return &TrackingStore{Client: client, TTL: ttl}
}

func trackingKey(sessionID string) string {
	return "kiosk:tracking:" + sessionID
}

func (s *TrackingStore) SaveTracking(ctx context.Context, sessionID string, orderID int64) error {
	return s.Client.Set(ctx, trackingKey(sessionID), strconv.FormatInt(orderID, 10), s.TTL).Err()
}

func (s *TrackingStore) LoadTracking(ctx context.Context, sessionID string) (int64, bool, error) {
	val, err := s.Client.Get(ctx, trackingKey(sessionID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	orderID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return orderID, true, nil
}

func (s *TrackingStore) ClearTracking(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, trackingKey(sessionID)).Err()
}
