package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/varun4505/news-parser-ai/internal/model"
	"github.com/varun4505/news-parser-ai/pkg/news"
)

type fakeSearcher struct {
	articles []model.Article
	err      error
	lastQ    news.Query
}

func (f *fakeSearcher) Search(ctx context.Context, q news.Query) ([]model.Article, error) {
	f.lastQ = q
	return f.articles, f.err
}

func newTestRouter(searcher NewsSearcher, debug bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(searcher, debug)
	meta := NewMetaHandler()
	r.GET("/news/:query", h.GetNews)
	r.GET("/options", meta.GetOptions)
	r.GET("/health", meta.GetHealth)
	r.GET("/", meta.GetIndex)
	r.NoRoute(meta.NotFound)
	return r
}

func TestGetNews_ReturnsArticles(t *testing.T) {
	searcher := &fakeSearcher{
		articles: []model.Article{
			{
				Title:       "Go 1.25 released",
				Description: "The Go team shipped a new release.",
				Link:        "https://example.com/go",
				OriginLink:  "https://example.com/go",
				Publication: "TechDaily",
				PublishedAt: "2026-03-10T08:00:00Z",
				Journalist:  "Jane A. Smith",
			},
		},
	}
	r := newTestRouter(searcher, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/golang", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, "Go 1.25 released", res.Articles[0].Title)
	assert.Equal(t, "Jane A. Smith", res.Articles[0].Journalist)
}

func TestGetNews_DefaultParameters(t *testing.T) {
	searcher := &fakeSearcher{articles: []model.Article{{Title: "x", Link: "https://example.com/x"}}}
	r := newTestRouter(searcher, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/golang", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "golang", searcher.lastQ.Term)
	assert.Equal(t, "en", searcher.lastQ.Language)
	assert.Equal(t, "IN", searcher.lastQ.Country)
	assert.Equal(t, "1d", searcher.lastQ.Period)
	assert.Equal(t, 30, searcher.lastQ.Limit)
}

func TestGetNews_ClampsArticles(t *testing.T) {
	searcher := &fakeSearcher{articles: []model.Article{{Title: "x", Link: "https://example.com/x"}}}
	r := newTestRouter(searcher, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/golang?articles=5000", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 1000, searcher.lastQ.Limit)
}

func TestGetNews_MalformedParametersFallBack(t *testing.T) {
	searcher := &fakeSearcher{articles: []model.Article{{Title: "x", Link: "https://example.com/x"}}}
	r := newTestRouter(searcher, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/golang?articles=abc&period=99x", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, searcher.lastQ.Limit)
	assert.Equal(t, "1d", searcher.lastQ.Period)
}

func TestGetNews_BlankTerm(t *testing.T) {
	searcher := &fakeSearcher{}
	r := newTestRouter(searcher, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/%20", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNews_EmptyResult(t *testing.T) {
	searcher := &fakeSearcher{articles: nil}
	r := newTestRouter(searcher, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/obscureterm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res EmptyResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "No articles found", res.Error)
	assert.Equal(t, 0, len(res.Articles))
}

func TestGetNews_InternalErrorHidesDetails(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("redis gone")}
	r := newTestRouter(searcher, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/golang", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res InternalErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "", res.Details)
}

func TestGetNews_InternalErrorDebugDetails(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("redis gone")}
	r := newTestRouter(searcher, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/golang", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res InternalErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "redis gone", res.Details)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeSearcher{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "OK", res["status"])
}

func TestGetOptions(t *testing.T) {
	r := newTestRouter(&fakeSearcher{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/options", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "English", res["languages"]["en"])
	assert.Equal(t, "India", res["countries"]["IN"])
	assert.Equal(t, "Past day", res["periods"]["1d"])
}

func TestNotFound(t *testing.T) {
	r := newTestRouter(&fakeSearcher{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/nothing/here", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Endpoint not found", res["error"])
}
