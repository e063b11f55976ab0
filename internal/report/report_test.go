package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/backend/internal/models"
	"github.com/topiclens/backend/internal/report"
)

func TestRender(t *testing.T) {
	r := &report.Report{
		Headlines:      30,
		Descriptions:   30,
		Documents:      30,
		Vocabulary:     412,
		Iterations:     17,
		Seed:           42,
		FetchElapsed:   120 * time.Millisecond,
		ClusterElapsed: 80 * time.Millisecond,
		Clusters: []models.ClusterSummary{
			{Label: 0, Size: 12, TopTerms: []string{"oil", "prices", "opec"}},
			{Label: 1, Size: 18, TopTerms: []string{"storm", "coast"}},
		},
	}

	var buf bytes.Buffer
	r.Render(&buf)
	out := buf.String()

	require.Contains(t, out, "30 documents x 412 terms")
	require.Contains(t, out, "2 clusters, 17 iterations, seed 42")
	require.Contains(t, out, "oil prices opec")
	require.Contains(t, out, "storm coast")
}
