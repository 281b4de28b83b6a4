package cache

import (
	"context"
	"fmt"

	"github.com/varun4505/news-parser-ai/internal/model"
)

// Store holds finished result sets for a bounded time. A stale or absent entry
// is a miss, never an error; errors are reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) ([]model.Article, bool, error)
	Put(ctx context.Context, key string, articles []model.Article) error
}

// Key builds the composite cache key for one request tuple.
func Key(term, language, country, period string, limit int) string {
	return fmt.Sprintf("%s_%s_%s_%s_%d", term, language, country, period, limit)
}
