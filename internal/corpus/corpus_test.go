package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/backend/internal/corpus"
	"github.com/topiclens/backend/internal/models"
)

func TestPairMatchesPositionally(t *testing.T) {
	heads := []string{"h1", "h2", "h3"}
	descs := []string{"d1", "d2", "d3"}

	got := corpus.Pair(heads, descs)
	require.Len(t, got, 3)
	for i, a := range got {
		require.Equal(t, heads[i], a.Title)
		require.Equal(t, descs[i], a.Description)
	}
}

func TestPairTruncatesToShorterSequence(t *testing.T) {
	got := corpus.Pair([]string{"h1", "h2", "h3"}, []string{"d1", "d2"})
	require.Len(t, got, 2)

	got = corpus.Pair([]string{"h1"}, []string{"d1", "d2", "d3"})
	require.Len(t, got, 1)

	require.Empty(t, corpus.Pair(nil, []string{"d1"}))
}

func TestCrossJoinProducesFullProduct(t *testing.T) {
	got := corpus.CrossJoin([]string{"h1", "h2"}, []string{"d1", "d2", "d3"})
	require.Len(t, got, 6)
	require.Equal(t, "h1", got[0].Title)
	require.Equal(t, "d1", got[0].Description)
	require.Equal(t, "h2", got[5].Title)
	require.Equal(t, "d3", got[5].Description)
}

func TestDocumentsConcatenatesFields(t *testing.T) {
	articles := []models.Article{
		{Title: "Rates rise", Description: "Central bank acts"},
		{Title: "Storm hits", Description: "", FullText: "Coastal towns flooded"},
		{Title: " spaced ", Description: " out "},
	}

	docs := corpus.Documents(articles)
	require.Equal(t, []string{
		"Rates rise Central bank acts",
		"Storm hits Coastal towns flooded",
		"spaced out",
	}, docs)
}
