package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/varun4505/news-parser-ai/internal/model"
)

const redisKeyPrefix = "newsapi:results:"

// Redis is a Store backed by a shared Redis instance, for deployments running
// more than one API replica. Expiry is delegated to Redis via SET EX.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(redisURL string, ttl time.Duration) (*Redis, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]model.Article, bool, error) {
	payload, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var articles []model.Article
	if err := json.Unmarshal(payload, &articles); err != nil {
		return nil, false, fmt.Errorf("redis payload decode: %w", err)
	}
	return articles, true, nil
}

func (r *Redis) Put(ctx context.Context, key string, articles []model.Article) error {
	payload, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("redis payload encode: %w", err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
