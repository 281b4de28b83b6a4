package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GNewsClient fetches ranked search results from the gnews.io v4 API.
type GNewsClient struct {
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

func NewGNewsClient(apiKey string) *GNewsClient {
	return &GNewsClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

func (c *GNewsClient) Name() string {
	return "GNews"
}

func (c *GNewsClient) Fetch(ctx context.Context, q Query) ([]Item, error) {
	endpoint := fmt.Sprintf(
		"https://gnews.io/api/v4/search?q=%s&lang=%s&country=%s&max=%d&from=%s&apikey=%s",
		url.QueryEscape(q.Term),
		url.QueryEscape(q.Language),
		url.QueryEscape(q.Country),
		q.Limit,
		c.searchFrom(q.Period),
		c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gnews request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews fetch: unexpected status %d", resp.StatusCode)
	}

	var raw gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("gnews decode: %w", err)
	}

	items := make([]Item, 0, len(raw.Articles))
	for _, a := range raw.Articles {
		items = append(items, Item{
			Title:       a.Title,
			Description: a.Description,
			Link:        a.URL,
			OriginLink:  a.URL,
			Publisher:   a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}

	return items, nil
}

// searchFrom converts a period token into the RFC3339 lower bound the API expects.
func (c *GNewsClient) searchFrom(period string) string {
	window, ok := Periods[period]
	if !ok {
		window = Periods["1d"]
	}
	return url.QueryEscape(c.now().UTC().Add(-window).Format(time.RFC3339))
}

type gnewsResponse struct {
	TotalArticles int            `json:"totalArticles"`
	Articles      []gnewsArticle `json:"articles"`
}

type gnewsArticle struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	URL         string      `json:"url"`
	PublishedAt string      `json:"publishedAt"`
	Source      gnewsSource `json:"source"`
}

type gnewsSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
