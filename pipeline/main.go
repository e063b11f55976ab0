package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/topiclens/backend/internal/cluster"
	"github.com/topiclens/backend/internal/config"
	"github.com/topiclens/backend/internal/corpus"
	"github.com/topiclens/backend/internal/dedupe"
	"github.com/topiclens/backend/internal/elasticsearch"
	"github.com/topiclens/backend/internal/enrich"
	"github.com/topiclens/backend/internal/feed"
	"github.com/topiclens/backend/internal/fetch"
	"github.com/topiclens/backend/internal/logger"
	"github.com/topiclens/backend/internal/models"
	"github.com/topiclens/backend/internal/publish"
	"github.com/topiclens/backend/internal/report"
	"github.com/topiclens/backend/internal/scrape"
	"github.com/topiclens/backend/internal/vectorize"
)

type pageFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type runStore interface {
	IndexRun(ctx context.Context, run models.ClusterRun) error
}

type runPublisher interface {
	PublishRun(ctx context.Context, run models.ClusterRun) error
}

func main() {
	_ = godotenv.Load()

	log := logger.New("pipeline")
	cfg, err := config.LoadPipeline()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var store runStore
	if cfg.IndexResults {
		esClient, err := elasticsearch.New(cfg.ElasticsearchAddr, cfg.ElasticsearchIndex, log)
		if err != nil {
			log.Error("init elasticsearch", slog.Any("err", err))
			os.Exit(1)
		}
		store = esClient
	}

	var pub runPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p := publish.New(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer p.Close()
		pub = p
	}

	fetcher := fetch.New(cfg.FetchTimeout)

	run, rep, err := runPipeline(ctx, log, cfg, fetcher, store, pub)
	if err != nil {
		log.Error("pipeline failed", slog.Any("err", err))
		os.Exit(1)
	}

	rep.Render(os.Stdout)
	log.Info("run complete",
		slog.String("run_id", run.ID),
		slog.Int("documents", run.Documents),
		slog.Int("clusters", len(run.Clusters)),
	)
}

func runPipeline(ctx context.Context, log *slog.Logger, cfg *config.Pipeline, fetcher pageFetcher, store runStore, pub runPublisher) (models.ClusterRun, *report.Report, error) {
	started := time.Now()
	rep := &report.Report{}
	var articles []models.Article

	if cfg.PageURL != "" {
		t0 := time.Now()
		body, err := fetcher.Get(ctx, cfg.PageURL)
		if err != nil {
			return models.ClusterRun{}, nil, err
		}
		rep.FetchElapsed = time.Since(t0)

		t0 = time.Now()
		headlines, descriptions, err := scrape.Listing(body, scrape.Selectors{
			Container:   cfg.ContainerSelector,
			Headline:    cfg.HeadlineSelector,
			Description: cfg.DescriptionSelector,
		})
		if err != nil {
			return models.ClusterRun{}, nil, fmt.Errorf("extract listing: %w", err)
		}
		rep.ExtractElapsed = time.Since(t0)
		rep.Headlines = len(headlines)
		rep.Descriptions = len(descriptions)

		if cfg.Combine == config.CombineCross {
			articles = corpus.CrossJoin(headlines, descriptions)
		} else {
			if len(headlines) != len(descriptions) {
				log.Warn("headline and description counts differ, pairing truncates",
					slog.Int("headlines", len(headlines)),
					slog.Int("descriptions", len(descriptions)),
				)
			}
			articles = corpus.Pair(headlines, descriptions)
		}
	}

	if cfg.FeedURL != "" {
		items, err := feed.Fetch(ctx, cfg.FeedURL, cfg.FeedMaxItems)
		if err != nil {
			return models.ClusterRun{}, nil, err
		}
		log.Info("fetched feed", slog.String("url", cfg.FeedURL), slog.Int("items", len(items)))
		articles = append(articles, items...)
	}

	cache := dedupe.NewCache(cfg.DedupeCapacity, cfg.DedupeTTL)
	unique := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if cache.Seen(dedupe.Key(a.Title, a.Description)) {
			continue
		}
		unique = append(unique, a)
	}
	if dropped := len(articles) - len(unique); dropped > 0 {
		log.Debug("dropped duplicate articles", slog.Int("count", dropped))
	}
	articles = unique

	if cfg.Enrich {
		enrich.Articles(articles, cfg.EnrichWorkers, cfg.EnrichTimeout)
	}

	docs := corpus.Documents(articles)
	if len(docs) == 0 {
		return models.ClusterRun{}, nil, fmt.Errorf("extraction yielded zero documents: %w", corpus.ErrEmptyCorpus)
	}

	t0 := time.Now()
	vec := vectorize.New(vectorize.Config{MinDF: cfg.MinDF, MaxDF: cfg.MaxDF})
	rows, err := vec.FitTransform(docs)
	if err != nil {
		return models.ClusterRun{}, nil, fmt.Errorf("vectorize: %w", err)
	}
	rep.VectorizeElapsed = time.Since(t0)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t0 = time.Now()
	res, err := cluster.Run(rows, cluster.Config{K: cfg.Clusters, MaxIter: cfg.MaxIter, Seed: seed})
	if err != nil {
		return models.ClusterRun{}, nil, fmt.Errorf("cluster: %w", err)
	}
	rep.ClusterElapsed = time.Since(t0)

	sizes := make([]int, cfg.Clusters)
	for _, label := range res.Labels {
		sizes[label]++
	}
	summaries := make([]models.ClusterSummary, 0, cfg.Clusters)
	for label, centroid := range res.Centroids {
		summaries = append(summaries, models.ClusterSummary{
			Label:    label,
			Size:     sizes[label],
			TopTerms: cluster.TopTerms(centroid, vec.Vocabulary(), cfg.TopTerms),
		})
	}

	run := models.ClusterRun{
		ID:             uuid.NewString(),
		StartedAt:      started.UTC(),
		FinishedAt:     time.Now().UTC(),
		PageURL:        cfg.PageURL,
		FeedURL:        cfg.FeedURL,
		Combine:        cfg.Combine,
		Seed:           seed,
		Documents:      len(docs),
		VocabularySize: len(vec.Vocabulary()),
		Iterations:     res.Iterations,
		Clusters:       summaries,
		Timings: models.StageTimings{
			FetchMS:     rep.FetchElapsed.Milliseconds(),
			ExtractMS:   rep.ExtractElapsed.Milliseconds(),
			VectorizeMS: rep.VectorizeElapsed.Milliseconds(),
			ClusterMS:   rep.ClusterElapsed.Milliseconds(),
		},
	}

	rep.Documents = run.Documents
	rep.Vocabulary = run.VocabularySize
	rep.Iterations = run.Iterations
	rep.Seed = run.Seed
	rep.Clusters = run.Clusters

	if store != nil {
		if err := store.IndexRun(ctx, run); err != nil {
			return run, rep, fmt.Errorf("index run: %w", err)
		}
		log.Info("indexed run", slog.String("run_id", run.ID))
	}

	if pub != nil {
		// Publish failures are not fatal; the run itself succeeded.
		if err := pub.PublishRun(ctx, run); err != nil {
			log.Warn("publish clusters", slog.Any("err", err))
		}
	}

	return run, rep, nil
}
