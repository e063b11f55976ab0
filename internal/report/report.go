package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/topiclens/backend/internal/models"
)

// Report is the human-readable summary printed after a run.
type Report struct {
	Headlines    int
	Descriptions int
	Documents    int
	Vocabulary   int
	Iterations   int
	Seed         int64
	Clusters     []models.ClusterSummary

	FetchElapsed     time.Duration
	ExtractElapsed   time.Duration
	VectorizeElapsed time.Duration
	ClusterElapsed   time.Duration
}

// Render writes the report to w.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "fetched page in %v\n", r.FetchElapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "extracted %d headlines, %d descriptions in %v\n",
		r.Headlines, r.Descriptions, r.ExtractElapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "matrix: %d documents x %d terms (vectorized in %v)\n",
		r.Documents, r.Vocabulary, r.VectorizeElapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "k-means: %d clusters, %d iterations, seed %d (%v)\n",
		len(r.Clusters), r.Iterations, r.Seed, r.ClusterElapsed.Round(time.Millisecond))

	for _, c := range r.Clusters {
		fmt.Fprintf(w, "cluster %2d (%3d docs): %s\n", c.Label, c.Size, strings.Join(c.TopTerms, " "))
	}
}
