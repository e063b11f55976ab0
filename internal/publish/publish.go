package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/topiclens/backend/internal/models"
)

// clusterMessage is the wire format for one topic cluster.
type clusterMessage struct {
	RunID      string    `json:"run_id"`
	FinishedAt time.Time `json:"finished_at"`
	Label      int       `json:"label"`
	Size       int       `json:"size"`
	TopTerms   []string  `json:"top_terms"`
}

// Publisher writes per-cluster summaries to a Kafka topic for downstream
// consumers (alerting, trend tracking).
type Publisher struct {
	writer *kafka.Writer
}

// New constructs a Publisher for the given brokers and topic.
func New(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:     brokers,
			Topic:       topic,
			MaxAttempts: 3,
		}),
	}
}

// PublishRun writes one message per cluster of the run, keyed by run ID so
// a run's clusters land on the same partition.
func (p *Publisher) PublishRun(ctx context.Context, run models.ClusterRun) error {
	msgs := make([]kafka.Message, 0, len(run.Clusters))
	for _, c := range run.Clusters {
		value, err := json.Marshal(clusterMessage{
			RunID:      run.ID,
			FinishedAt: run.FinishedAt,
			Label:      c.Label,
			Size:       c.Size,
			TopTerms:   c.TopTerms,
		})
		if err != nil {
			return fmt.Errorf("marshal cluster %d: %w", c.Label, err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(run.ID), Value: value})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish clusters for run %s: %w", run.ID, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
