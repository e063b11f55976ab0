package models

import "time"

// Article is one scraped or fetched news item before vectorization.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
	FullText    string    `json:"full_text,omitempty"`
	EnrichError string    `json:"enrich_error,omitempty"`
}

// ClusterSummary describes one topic cluster of a finished run.
type ClusterSummary struct {
	Label    int      `json:"label"`
	Size     int      `json:"size"`
	TopTerms []string `json:"top_terms"`
}

// StageTimings records per-stage elapsed durations in milliseconds.
type StageTimings struct {
	FetchMS     int64 `json:"fetch_ms"`
	ExtractMS   int64 `json:"extract_ms"`
	VectorizeMS int64 `json:"vectorize_ms"`
	ClusterMS   int64 `json:"cluster_ms"`
}

// ClusterRun is the canonical structure stored in Elasticsearch, one
// document per completed clustering run.
type ClusterRun struct {
	ID             string           `json:"id"`
	StartedAt      time.Time        `json:"started_at"`
	FinishedAt     time.Time        `json:"finished_at"`
	PageURL        string           `json:"page_url,omitempty"`
	FeedURL        string           `json:"feed_url,omitempty"`
	Combine        string           `json:"combine"`
	Seed           int64            `json:"seed"`
	Documents      int              `json:"documents"`
	VocabularySize int              `json:"vocabulary_size"`
	Iterations     int              `json:"iterations"`
	Clusters       []ClusterSummary `json:"clusters"`
	Timings        StageTimings     `json:"timings"`
}
