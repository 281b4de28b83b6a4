package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/varun4505/news-parser-ai/internal/model"
	"github.com/varun4505/news-parser-ai/pkg/news"
)

type NewsSearcher interface {
	Search(ctx context.Context, q news.Query) ([]model.Article, error)
}

type NewsHandler struct {
	searcher NewsSearcher
	debug    bool
}

func NewNewsHandler(searcher NewsSearcher, debug bool) *NewsHandler {
	return &NewsHandler{searcher: searcher, debug: debug}
}

const (
	defaultArticles = 30
	maxArticles     = 1000

	defaultLanguage = "en"
	defaultCountry  = "IN"
	defaultPeriod   = "1d"
)

func (h *NewsHandler) GetNews(c *gin.Context) {
	term := strings.TrimSpace(c.Param("query"))
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing search term",
			"message": "Provide a search term, e.g. /news/technology",
		})
		return
	}

	q := news.Query{
		Term:     term,
		Language: getQueryString(c, "language", defaultLanguage),
		Country:  getQueryString(c, "country", defaultCountry),
		Period:   getQueryPeriod(c),
		Limit:    getQueryArticles(c),
	}

	articles, err := h.searcher.Search(c.Request.Context(), q)
	if err != nil {
		slog.Error("error aggregating news", "term", q.Term, "error", err)
		res := InternalErrorResponse{Error: "An error occurred while fetching news articles."}
		if h.debug {
			res.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, res)
		return
	}

	if len(articles) == 0 {
		c.JSON(http.StatusOK, EmptyResponse{
			Error:    "No articles found",
			Message:  "Try a different search term.",
			Articles: []ArticleResponse{},
		})
		return
	}

	res := NewsResponse{
		Count:    len(articles),
		Articles: make([]ArticleResponse, 0, len(articles)),
	}
	for _, a := range articles {
		res.Articles = append(res.Articles, ArticleResponse{
			Title:       a.Title,
			Description: a.Description,
			Link:        a.Link,
			OriginLink:  a.OriginLink,
			Publication: a.Publication,
			PublishedAt: a.PublishedAt,
			Journalist:  a.Journalist,
		})
	}

	c.JSON(http.StatusOK, res)
}

func getQueryString(c *gin.Context, name, defaultValue string) string {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return defaultValue
	}
	return value
}

// getQueryPeriod validates the recency token; anything outside the supported
// set falls back to the default instead of erroring.
func getQueryPeriod(c *gin.Context) string {
	period := c.Query("period")
	if period == "" {
		return defaultPeriod
	}
	if !news.ValidPeriod(period) {
		slog.Warn("invalid query parameter, using default", "param", "period", "value", period, "default", defaultPeriod)
		return defaultPeriod
	}
	return period
}

func getQueryArticles(c *gin.Context) int {
	raw := c.Query("articles")
	if raw == "" {
		return defaultArticles
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", "articles", "value", raw, "error", err)
		return defaultArticles
	}

	if parsed < 1 {
		slog.Warn("invalid query parameter, using default", "param", "articles", "value", parsed, "default", defaultArticles)
		return defaultArticles
	}

	if parsed > maxArticles {
		slog.Warn("query parameter exceeds max, clamping", "param", "articles", "value", parsed, "max", maxArticles)
		return maxArticles
	}

	return parsed
}
