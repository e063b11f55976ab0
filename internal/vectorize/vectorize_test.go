package vectorize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/backend/internal/vectorize"
)

func TestFitFiltersByDocumentFrequency(t *testing.T) {
	docs := []string{
		"oil prices surge market",
		"oil output cut market",
		"oil exports rise market",
		"elections held quietly market",
	}

	v := vectorize.New(vectorize.Config{MinDF: 2, MaxDF: 0.8})
	require.NoError(t, v.Fit(docs))

	vocab := v.Vocabulary()
	// "oil" appears in 3/4 docs, "market" in 4/4 (> MaxDF), the rest once.
	require.Contains(t, vocab, "oil")
	require.NotContains(t, vocab, "market")
	require.NotContains(t, vocab, "surge")
	require.NotContains(t, vocab, "elections")
}

func TestFitExcludesStopWords(t *testing.T) {
	docs := []string{
		"the bank and the rates",
		"the bank and the economy",
	}

	v := vectorize.New(vectorize.Config{MinDF: 1, MaxDF: 1.0})
	require.NoError(t, v.Fit(docs))

	vocab := v.Vocabulary()
	require.Contains(t, vocab, "bank")
	require.NotContains(t, vocab, "the")
	require.NotContains(t, vocab, "and")
}

func TestFitErrors(t *testing.T) {
	v := vectorize.New(vectorize.Config{})
	require.ErrorIs(t, v.Fit(nil), vectorize.ErrEmptyCorpus)

	// Every term appears once, below the default MinDF of 2.
	v = vectorize.New(vectorize.Config{})
	err := v.Fit([]string{"unique words here", "different tokens there"})
	require.ErrorIs(t, err, vectorize.ErrEmptyVocabulary)
}

func TestTransformIsDeterministic(t *testing.T) {
	docs := []string{
		"oil prices surge",
		"oil prices fall",
		"storm floods coast",
	}

	first := vectorize.New(vectorize.Config{MinDF: 1, MaxDF: 1.0})
	rowsA, err := first.FitTransform(docs)
	require.NoError(t, err)

	second := vectorize.New(vectorize.Config{MinDF: 1, MaxDF: 1.0})
	rowsB, err := second.FitTransform(docs)
	require.NoError(t, err)

	require.Equal(t, first.Vocabulary(), second.Vocabulary())
	require.Equal(t, rowsA, rowsB)
}

func TestTransformWeighsRareTermsHigher(t *testing.T) {
	docs := []string{
		"oil oil prices",
		"oil exports",
		"storm coast",
	}

	v := vectorize.New(vectorize.Config{MinDF: 1, MaxDF: 1.0})
	rows, err := v.FitTransform(docs)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Len(t, rows[0], len(v.Vocabulary()))

	idx := make(map[string]int, len(v.Vocabulary()))
	for i, term := range v.Vocabulary() {
		idx[term] = i
	}

	// "prices" occurs once in doc 0 like "oil" does per-token twice, but
	// "oil" is in 2/3 documents so its IDF is lower.
	require.Greater(t, rows[0][idx["prices"]], 0.0)
	require.Greater(t, rows[2][idx["storm"]], rows[1][idx["oil"]])

	// Terms absent from a document carry zero weight.
	require.Zero(t, rows[2][idx["oil"]])
}
