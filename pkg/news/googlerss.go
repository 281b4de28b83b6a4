package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// GoogleRSSClient fetches the Google News search feed. The feed is chronological
// and unranked, so Fetch requests twice the caller's limit and filters client-side.
type GoogleRSSClient struct {
	baseURL string
	parser  *gofeed.Parser
	now     func() time.Time
}

func NewGoogleRSSClient() *GoogleRSSClient {
	return &GoogleRSSClient{
		baseURL: "https://news.google.com/rss/search",
		parser:  gofeed.NewParser(),
		now:     time.Now,
	}
}

func (c *GoogleRSSClient) Name() string {
	return "GoogleRSS"
}

func (c *GoogleRSSClient) Fetch(ctx context.Context, q Query) ([]Item, error) {
	feedURL := fmt.Sprintf(
		"%s?q=%s&hl=%s&gl=%s&ceid=%s:%s",
		c.baseURL,
		url.QueryEscape(q.Term+" when:"+q.Period),
		url.QueryEscape(q.Language),
		url.QueryEscape(q.Country),
		url.QueryEscape(q.Country),
		url.QueryEscape(q.Language),
	)

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("google rss fetch: %w", err)
	}

	// The feed is noisier than the ranked source, so take an inflated slice
	// and let the aggregator trim after merging.
	take := q.Limit * 2
	if take > len(feed.Items) {
		take = len(feed.Items)
	}

	now := c.now()
	items := make([]Item, 0, take)
	for _, entry := range feed.Items[:take] {
		if !keepByDay(entry.PublishedParsed, now) {
			continue
		}

		desc := entry.Description
		if desc == "" || desc == entry.Link {
			desc = entry.Title
		}

		author := ""
		if entry.Author != nil {
			author = entry.Author.Name
		}

		items = append(items, Item{
			Title:       entry.Title,
			Description: desc,
			Link:        entry.Link,
			OriginLink:  entry.Link,
			Publisher:   feedPublisher(entry.Title),
			PublishedAt: entry.Published,
			Author:      author,
		})
	}

	return items, nil
}

// keepByDay keeps entries published today or yesterday in UTC calendar terms.
// Entries without a parseable timestamp are kept: the feed's date formats are
// inconsistent and dropping them would silently lose valid articles.
func keepByDay(published *time.Time, now time.Time) bool {
	if published == nil {
		return true
	}
	pub := published.UTC().Truncate(24 * time.Hour)
	today := now.UTC().Truncate(24 * time.Hour)
	return pub.Equal(today) || pub.Equal(today.Add(-24*time.Hour))
}

// feedPublisher reads the source name Google News embeds after the final
// " - " separator of each entry title.
func feedPublisher(title string) string {
	if idx := strings.LastIndex(title, " - "); idx > 0 && idx+3 < len(title) {
		return strings.TrimSpace(title[idx+3:])
	}
	return ""
}
