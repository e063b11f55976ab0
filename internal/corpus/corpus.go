package corpus

import (
	"errors"
	"strings"

	"github.com/topiclens/backend/internal/models"
)

// ErrEmptyCorpus reports that combining produced no documents at all.
var ErrEmptyCorpus = errors.New("corpus contains no documents")

// Pair matches headlines with descriptions positionally, producing
// min(N, M) articles. Trailing unmatched entries are dropped.
func Pair(headlines, descriptions []string) []models.Article {
	n := len(headlines)
	if len(descriptions) < n {
		n = len(descriptions)
	}

	articles := make([]models.Article, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, models.Article{
			Title:       headlines[i],
			Description: descriptions[i],
		})
	}
	return articles
}

// CrossJoin concatenates every headline with every description, producing
// N*M articles. This reproduces the legacy combination behavior and exists
// only so it can be selected explicitly.
func CrossJoin(headlines, descriptions []string) []models.Article {
	articles := make([]models.Article, 0, len(headlines)*len(descriptions))
	for _, h := range headlines {
		for _, d := range descriptions {
			articles = append(articles, models.Article{Title: h, Description: d})
		}
	}
	return articles
}

// Documents renders articles as the strings fed to the vectorizer:
// title, description, and full text when enrichment supplied one.
func Documents(articles []models.Article) []string {
	docs := make([]string, 0, len(articles))
	for _, a := range articles {
		parts := make([]string, 0, 3)
		for _, p := range []string{a.Title, a.Description, a.FullText} {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		docs = append(docs, strings.Join(parts, " "))
	}
	return docs
}
