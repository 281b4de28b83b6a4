package aggregator

import "github.com/varun4505/news-parser-ai/internal/model"

// Merge combines the ranked and feed article lists into one deduplicated list
// keyed by canonical link. Ranked articles are inserted first, so when both
// providers return the same link the ranked version wins and the feed copy is
// discarded. Order is first-occurrence insertion order, capped at max entries.
func Merge(ranked, feed []model.Article, max int) []model.Article {
	seen := make(map[string]struct{}, len(ranked)+len(feed))
	merged := make([]model.Article, 0, len(ranked)+len(feed))

	for _, list := range [][]model.Article{ranked, feed} {
		for _, article := range list {
			if article.Link == "" {
				continue
			}
			if _, dup := seen[article.Link]; dup {
				continue
			}
			seen[article.Link] = struct{}{}
			merged = append(merged, article)
		}
	}

	if max > 0 && len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
