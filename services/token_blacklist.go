package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance. It stays nil when Redis is
// not configured, in which case logout still succeeds but tokens
// expire naturally.
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist creates a Redis-backed token blacklist.
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistToken records the token until its natural expiry.
func BlacklistToken(tokenString string) error {
	if TokenBlacklist == nil {
		return nil
	}

	ttl, err := TokenRemainingTTL(tokenString)
	if err != nil {
		return err
	}
	if ttl == 0 {
		return nil
	}

	return TokenBlacklist.Client.Set(context.Background(),
		blacklistKey(tokenString), "revoked", ttl).Err()
}

// IsTokenBlacklisted reports whether the token was revoked by a
// logout. A Redis error counts as not blacklisted so an outage does
// not lock every caller out.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	exists, err := TokenBlacklist.Client.Exists(ctx, blacklistKey(tokenString)).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

func blacklistKey(tokenString string) string {
	return "blacklist:" + tokenString
}
