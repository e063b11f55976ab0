package vectorize

import (
	"errors"
	"math"
	"sort"

	"github.com/topiclens/backend/internal/textproc"
)

var (
	// ErrEmptyCorpus reports that Fit was called with no documents.
	ErrEmptyCorpus = errors.New("cannot fit vectorizer on an empty corpus")
	// ErrEmptyVocabulary reports that document-frequency filtering removed
	// every term.
	ErrEmptyVocabulary = errors.New("vocabulary is empty after filtering")
)

// Config controls vocabulary filtering.
type Config struct {
	// MinDF keeps only terms appearing in at least this many documents.
	MinDF int
	// MaxDF keeps only terms appearing in at most this share of documents.
	MaxDF float64
	// StopWords are excluded from the vocabulary. Nil means the default
	// English list.
	StopWords map[string]struct{}
}

// Vectorizer turns documents into TF-IDF weighted term rows over a
// vocabulary learned from the corpus.
type Vectorizer struct {
	cfg   Config
	vocab []string
	index map[string]int
	idf   []float64
}

// New constructs a Vectorizer, applying defaults for zero-valued config.
func New(cfg Config) *Vectorizer {
	if cfg.MinDF < 1 {
		cfg.MinDF = 2
	}
	if cfg.MaxDF <= 0 || cfg.MaxDF > 1 {
		cfg.MaxDF = 0.5
	}
	if cfg.StopWords == nil {
		cfg.StopWords = textproc.StopWords
	}
	return &Vectorizer{cfg: cfg}
}

// Fit learns the vocabulary and IDF weights from the corpus. The vocabulary
// is sorted so results are deterministic for a given corpus and config.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, token := range textproc.Tokenize(doc) {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			df[token]++
		}
	}

	n := float64(len(docs))
	v.vocab = v.vocab[:0]
	for term, count := range df {
		if count < v.cfg.MinDF {
			continue
		}
		if float64(count)/n > v.cfg.MaxDF {
			continue
		}
		if _, stop := v.cfg.StopWords[term]; stop {
			continue
		}
		v.vocab = append(v.vocab, term)
	}
	if len(v.vocab) == 0 {
		return ErrEmptyVocabulary
	}
	sort.Strings(v.vocab)

	v.index = make(map[string]int, len(v.vocab))
	v.idf = make([]float64, len(v.vocab))
	for i, term := range v.vocab {
		v.index[term] = i
		v.idf[i] = math.Log(n/float64(df[term])) + 1
	}

	return nil
}

// Transform converts documents into TF-IDF rows over the fitted vocabulary.
// Terms outside the vocabulary are ignored; term frequency is normalized by
// the document's token count.
func (v *Vectorizer) Transform(docs []string) [][]float64 {
	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		row := make([]float64, len(v.vocab))
		tokens := textproc.Tokenize(doc)
		if len(tokens) > 0 {
			counts := make(map[int]int)
			for _, token := range tokens {
				if idx, ok := v.index[token]; ok {
					counts[idx]++
				}
			}
			total := float64(len(tokens))
			for idx, count := range counts {
				row[idx] = float64(count) / total * v.idf[idx]
			}
		}
		rows[i] = row
	}
	return rows
}

// FitTransform fits on the corpus and transforms it in one step.
func (v *Vectorizer) FitTransform(docs []string) ([][]float64, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs), nil
}

// Vocabulary returns the fitted terms in index order.
func (v *Vectorizer) Vocabulary() []string {
	return v.vocab
}
