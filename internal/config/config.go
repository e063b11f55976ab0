package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Combine strategies for merging headlines with descriptions.
const (
	CombinePair  = "pair"
	CombineCross = "cross"
)

// Common contains Elasticsearch parameters shared by every service.
type Common struct {
	ElasticsearchAddr  string
	ElasticsearchIndex string
}

// Pipeline holds configuration for one scrape -> cluster run.
type Pipeline struct {
	Common

	PageURL             string
	ContainerSelector   string
	HeadlineSelector    string
	DescriptionSelector string
	FetchTimeout        time.Duration

	FeedURL      string
	FeedMaxItems int

	Combine string

	Enrich        bool
	EnrichWorkers int
	EnrichTimeout time.Duration

	MinDF    int
	MaxDF    float64
	Clusters int
	MaxIter  int
	Seed     int64
	TopTerms int

	DedupeCapacity int
	DedupeTTL      time.Duration

	IndexResults bool
	KafkaBrokers []string
	KafkaTopic   string
}

// API describes HTTP-layer configuration.
type API struct {
	Common
	BindAddr    string
	DefaultPage int
	MaxPage     int
}

// Retention configures the cleanup loop.
type Retention struct {
	Common
	Interval  time.Duration
	MaxAge    time.Duration
	BatchSize int
}

func loadCommon() Common {
	return Common{
		ElasticsearchAddr:  getEnv("ELASTICSEARCH_ADDR", "http://elasticsearch:9200"),
		ElasticsearchIndex: getEnv("ELASTICSEARCH_INDEX", "cluster_runs"),
	}
}

// LoadPipeline builds a Pipeline config from environment variables.
func LoadPipeline() (*Pipeline, error) {
	c := &Pipeline{
		Common: loadCommon(),

		PageURL:             getEnv("PIPELINE_PAGE_URL", "https://lenta.ru/news/2024/01/01/"),
		ContainerSelector:   getEnv("PIPELINE_CONTAINER_SELECTOR", "div.news-item"),
		HeadlineSelector:    getEnv("PIPELINE_HEADLINE_SELECTOR", "h2"),
		DescriptionSelector: getEnv("PIPELINE_DESCRIPTION_SELECTOR", "p"),
		FetchTimeout:        getDuration("PIPELINE_FETCH_TIMEOUT", "15s"),

		FeedURL:      getEnv("PIPELINE_FEED_URL", ""),
		FeedMaxItems: getInt("PIPELINE_FEED_MAX_ITEMS", 50),

		Combine: getEnv("PIPELINE_COMBINE", CombinePair),

		Enrich:        getBool("PIPELINE_ENRICH", false),
		EnrichWorkers: getInt("PIPELINE_ENRICH_WORKERS", 5),
		EnrichTimeout: getDuration("PIPELINE_ENRICH_TIMEOUT", "30s"),

		MinDF:    getInt("PIPELINE_MIN_DF", 2),
		MaxDF:    getFloat("PIPELINE_MAX_DF", 0.5),
		Clusters: getInt("PIPELINE_CLUSTERS", 15),
		MaxIter:  getInt("PIPELINE_MAX_ITER", 100),
		Seed:     getInt64("PIPELINE_SEED", 0),
		TopTerms: getInt("PIPELINE_TOP_TERMS", 10),

		DedupeCapacity: getInt("PIPELINE_DEDUPE_CAPACITY", 10000),
		DedupeTTL:      getDuration("PIPELINE_DEDUPE_TTL", "1h"),

		IndexResults: getBool("PIPELINE_INDEX_RESULTS", false),
		KafkaBrokers: splitAndTrim(getEnv("PIPELINE_KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("PIPELINE_KAFKA_TOPIC", "topic_clusters"),
	}

	if c.PageURL == "" && c.FeedURL == "" {
		return nil, fmt.Errorf("PIPELINE_PAGE_URL or PIPELINE_FEED_URL must be set")
	}
	if c.PageURL != "" && c.ContainerSelector == "" {
		return nil, fmt.Errorf("PIPELINE_CONTAINER_SELECTOR must not be empty")
	}
	if c.Combine != CombinePair && c.Combine != CombineCross {
		return nil, fmt.Errorf("PIPELINE_COMBINE must be %q or %q", CombinePair, CombineCross)
	}
	if c.Clusters <= 0 {
		return nil, fmt.Errorf("PIPELINE_CLUSTERS must be positive")
	}
	if c.MaxIter <= 0 {
		return nil, fmt.Errorf("PIPELINE_MAX_ITER must be positive")
	}
	if c.MinDF < 1 {
		return nil, fmt.Errorf("PIPELINE_MIN_DF must be at least 1")
	}
	if c.MaxDF <= 0 || c.MaxDF > 1 {
		return nil, fmt.Errorf("PIPELINE_MAX_DF must be in (0, 1]")
	}
	if c.TopTerms <= 0 {
		return nil, fmt.Errorf("PIPELINE_TOP_TERMS must be positive")
	}
	if c.EnrichWorkers <= 0 {
		return nil, fmt.Errorf("PIPELINE_ENRICH_WORKERS must be positive")
	}
	if c.DedupeCapacity <= 0 {
		return nil, fmt.Errorf("PIPELINE_DEDUPE_CAPACITY must be positive")
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return nil, fmt.Errorf("PIPELINE_KAFKA_TOPIC must not be empty when brokers are set")
	}

	return c, nil
}

// LoadAPI builds an API config from environment variables.
func LoadAPI() (*API, error) {
	c := &API{
		Common:      loadCommon(),
		BindAddr:    getEnv("API_BIND_ADDR", "0.0.0.0:8080"),
		DefaultPage: getInt("API_PAGE_SIZE", 20),
		MaxPage:     getInt("API_MAX_PAGE_SIZE", 100),
	}

	if c.DefaultPage <= 0 {
		return nil, fmt.Errorf("API_PAGE_SIZE must be positive")
	}
	if c.MaxPage <= 0 {
		return nil, fmt.Errorf("API_MAX_PAGE_SIZE must be positive")
	}
	if c.DefaultPage > c.MaxPage {
		return nil, fmt.Errorf("API_PAGE_SIZE cannot exceed API_MAX_PAGE_SIZE")
	}

	return c, nil
}

// LoadRetention builds a Retention config from environment variables.
func LoadRetention() (*Retention, error) {
	c := &Retention{
		Common:    loadCommon(),
		Interval:  getDuration("RETENTION_INTERVAL", "24h"),
		MaxAge:    getDuration("RETENTION_MAX_AGE", "720h"),
		BatchSize: getInt("RETENTION_BATCH_SIZE", 500),
	}

	if c.Interval <= 0 {
		return nil, fmt.Errorf("RETENTION_INTERVAL must be positive")
	}
	if c.MaxAge <= 0 {
		return nil, fmt.Errorf("RETENTION_MAX_AGE must be positive")
	}
	if c.BatchSize <= 0 {
		return nil, fmt.Errorf("RETENTION_BATCH_SIZE must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
