// Package aggregator orchestrates one search request: cache lookup, parallel
// provider fetches, byline enrichment, merge/dedup, and cache write-back.
package aggregator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/varun4505/news-parser-ai/internal/cache"
	"github.com/varun4505/news-parser-ai/internal/model"
	"github.com/varun4505/news-parser-ai/pkg/byline"
	"github.com/varun4505/news-parser-ai/pkg/news"
)

const DefaultFetchTimeout = 20 * time.Second

type Aggregator struct {
	structured news.Provider
	feed       news.Provider
	store      cache.Store
	timeout    time.Duration
}

func New(structured, feed news.Provider, store cache.Store, fetchTimeout time.Duration) *Aggregator {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &Aggregator{
		structured: structured,
		feed:       feed,
		store:      store,
		timeout:    fetchTimeout,
	}
}

// Search returns the merged article list for a normalized query. Provider
// failures contribute zero items and are only logged; the returned error is
// reserved for cache backend failures.
func (a *Aggregator) Search(ctx context.Context, q news.Query) ([]model.Article, error) {
	key := cache.Key(q.Term, q.Language, q.Country, q.Period, q.Limit)

	if cached, hit, err := a.store.Get(ctx, key); err != nil {
		return nil, err
	} else if hit {
		slog.Info("cache hit", "term", q.Term, "key", key)
		return cached, nil
	}

	ranked, feed := a.fetchBoth(ctx, q)

	for i := range ranked {
		fillJournalist(&ranked[i])
	}
	for i := range feed {
		fillJournalist(&feed[i])
	}

	articles := Merge(ranked, feed, q.Limit*2)

	if err := a.store.Put(ctx, key, articles); err != nil {
		return nil, err
	}

	return articles, nil
}

// fetchBoth runs the two provider calls concurrently, each under its own
// timeout. A failed or timed-out provider yields an empty slice.
func (a *Aggregator) fetchBoth(ctx context.Context, q news.Query) (ranked, feed []model.Article) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		ranked = a.fetchOne(ctx, a.structured, q)
	}()
	go func() {
		defer wg.Done()
		feed = a.fetchOne(ctx, a.feed, q)
	}()

	wg.Wait()
	return ranked, feed
}

func (a *Aggregator) fetchOne(ctx context.Context, provider news.Provider, q news.Query) []model.Article {
	fetchCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	items, err := provider.Fetch(fetchCtx, q)
	if err != nil {
		slog.Error("provider fetch failed", "source", provider.Name(), "term", q.Term, "error", err)
		return nil
	}

	articles := make([]model.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, toArticle(item))
	}
	return articles
}

func toArticle(item news.Item) model.Article {
	a := model.Article{
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		OriginLink:  item.OriginLink,
		Publication: item.Publisher,
		PublishedAt: item.PublishedAt,
		Journalist:  item.Author,
	}
	if a.Description == "" {
		a.Description = model.NoDescription
	}
	if a.OriginLink == "" {
		a.OriginLink = a.Link
	}
	if a.Publication == "" {
		a.Publication = model.UnknownSource
	}
	if a.PublishedAt == "" {
		a.PublishedAt = model.UnknownDate
	}
	if a.Journalist == "" {
		a.Journalist = model.NotSpecified
	}
	return a
}

// fillJournalist runs the byline heuristic for articles whose provider gave no
// author, using the description as body text.
func fillJournalist(a *model.Article) {
	if a.Journalist != model.NotSpecified {
		return
	}
	body := a.Description
	if body == model.NoDescription {
		body = ""
	}
	if name, ok := byline.Extract(a.Title, body); ok {
		a.Journalist = name
	}
}
