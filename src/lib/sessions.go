package lib

import (
	"context"
	"fmt"
	"log"
	"time"
)

// RedisSessions caches issued tokens by user id, after the fashion of
// the auth session record. Cache failures are logged, never fatal.
type RedisSessions struct {
	ttl time.Duration
}

func NewRedisSessions(ttl time.Duration) *RedisSessions {
	return &RedisSessions{ttl: ttl}
}

func (r *RedisSessions) Put(ctx context.Context, userID uint, token string) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	key := fmt.Sprintf("%d:token", userID)
	if err := rd.Set(ctx, key, token, r.ttl).Err(); err != nil {
		log.Printf("[redis] Failed to cache session for user %d: %s\n", userID, err.Error())
	}
}
