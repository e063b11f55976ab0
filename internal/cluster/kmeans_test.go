package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/backend/internal/cluster"
)

// Two well-separated groups in three dimensions.
var rows = [][]float64{
	{1.0, 0.9, 0.0},
	{0.9, 1.1, 0.0},
	{1.1, 1.0, 0.1},
	{0.0, 0.1, 5.0},
	{0.1, 0.0, 5.1},
	{0.0, 0.0, 4.9},
}

func TestRunSeparatesObviousGroups(t *testing.T) {
	res, err := cluster.Run(rows, cluster.Config{K: 2, MaxIter: 100, Seed: 7})
	require.NoError(t, err)
	require.Len(t, res.Labels, len(rows))
	require.Len(t, res.Centroids, 2)

	require.Equal(t, res.Labels[0], res.Labels[1])
	require.Equal(t, res.Labels[1], res.Labels[2])
	require.Equal(t, res.Labels[3], res.Labels[4])
	require.Equal(t, res.Labels[4], res.Labels[5])
	require.NotEqual(t, res.Labels[0], res.Labels[3])
}

func TestRunIsReproducibleForFixedSeed(t *testing.T) {
	first, err := cluster.Run(rows, cluster.Config{K: 3, MaxIter: 100, Seed: 42})
	require.NoError(t, err)

	second, err := cluster.Run(rows, cluster.Config{K: 3, MaxIter: 100, Seed: 42})
	require.NoError(t, err)

	require.Equal(t, first.Labels, second.Labels)
	require.Equal(t, first.Centroids, second.Centroids)
}

func TestRunRejectsTooFewDocuments(t *testing.T) {
	_, err := cluster.Run(rows[:2], cluster.Config{K: 5, Seed: 1})
	require.ErrorIs(t, err, cluster.ErrTooFewDocuments)
}

func TestRunRejectsNonPositiveK(t *testing.T) {
	_, err := cluster.Run(rows, cluster.Config{K: 0})
	require.Error(t, err)
}

func TestTopTerms(t *testing.T) {
	vocab := []string{"apple", "bank", "coast", "delta"}
	centroid := []float64{0.0, 0.8, 0.3, 0.8}

	got := cluster.TopTerms(centroid, vocab, 10)
	// Zero-weight terms excluded, ties broken alphabetically.
	require.Equal(t, []string{"bank", "delta", "coast"}, got)

	require.Equal(t, []string{"bank", "delta"}, cluster.TopTerms(centroid, vocab, 2))
	require.Empty(t, cluster.TopTerms([]float64{0, 0}, vocab, 3))
}
