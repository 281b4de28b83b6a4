package news

import (
	"context"
	"time"
)

// Item is the raw result a provider yields before aggregation.
type Item struct {
	Title       string
	Description string
	Link        string
	OriginLink  string
	Publisher   string
	PublishedAt string
	Author      string
}

// Query carries the normalized search parameters passed to every provider.
type Query struct {
	Term     string
	Language string
	Country  string
	Period   string
	Limit    int
}

type Provider interface {
	Fetch(ctx context.Context, q Query) ([]Item, error)
	Name() string
}

// Periods maps the supported recency tokens to their search window.
var Periods = map[string]time.Duration{
	"1h":  time.Hour,
	"12h": 12 * time.Hour,
	"1d":  24 * time.Hour,
	"3d":  3 * 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"1m":  30 * 24 * time.Hour,
}

func ValidPeriod(token string) bool {
	_, ok := Periods[token]
	return ok
}
