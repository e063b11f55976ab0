package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/topiclens/backend/internal/models"
)

// Fetch retrieves and parses an RSS/Atom feed, returning at most maxItems
// articles in feed order.
func Fetch(ctx context.Context, feedURL string, maxItems int) ([]models.Article, error) {
	parser := gofeed.NewParser()
	parsed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}

	count := len(parsed.Items)
	if maxItems > 0 && count > maxItems {
		count = maxItems
	}

	articles := make([]models.Article, 0, count)
	for _, item := range parsed.Items[:count] {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		description := item.Description
		if description == "" {
			description = item.Content
		}

		articles = append(articles, models.Article{
			Title:       item.Title,
			Description: description,
			URL:         item.Link,
			PublishedAt: published,
		})
	}

	return articles, nil
}
