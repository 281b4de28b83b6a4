package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/varun4505/news-parser-ai/internal/aggregator"
	"github.com/varun4505/news-parser-ai/internal/cache"
	"github.com/varun4505/news-parser-ai/internal/handler"
	"github.com/varun4505/news-parser-ai/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store := newStore()

	apiKey := os.Getenv("GNEWS_API_KEY")
	if apiKey == "" {
		slog.Warn("GNEWS_API_KEY is not set; structured provider requests will fail and be absorbed as empty results")
	}

	agg := aggregator.New(
		news.NewGNewsClient(apiKey),
		news.NewGoogleRSSClient(),
		store,
		aggregator.DefaultFetchTimeout,
	)

	debug := os.Getenv("DEBUG") == "true"
	newsHandler := handler.NewNewsHandler(agg, debug)
	metaHandler := handler.NewMetaHandler()

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// The aggregation endpoint is the expensive one; everything else is static.
	newsLimiter := handler.NewRateLimiter(5, 5)

	r.GET("/news/:query", newsLimiter.Middleware(), newsHandler.GetNews)
	r.GET("/options", metaHandler.GetOptions)
	r.GET("/health", metaHandler.GetHealth)
	r.GET("/", metaHandler.GetIndex)
	r.NoRoute(metaHandler.NotFound)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// newStore selects the cache backend: Redis when REDIS_URL is set, otherwise
// an in-process TTL map. Either way the cache is not durable result storage.
func newStore() cache.Store {
	ttl := cache.DefaultTTL
	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			slog.Warn("invalid CACHE_TTL_SECONDS, using default", "value", raw, "default", cache.DefaultTTL)
		} else {
			ttl = time.Duration(seconds) * time.Second
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		store, err := cache.NewRedis(redisURL, ttl)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		slog.Info("using redis cache", "ttl", ttl)
		return store
	}

	slog.Info("using in-memory cache", "ttl", ttl)
	return cache.NewMemory(ttl, cache.DefaultMaxEntries)
}
