package enrich

import (
	"fmt"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/topiclens/backend/internal/models"
)

// Articles fetches full article text for every article with a URL, using a
// bounded worker pool. Failures are recorded on the article instead of
// aborting the run.
func Articles(articles []models.Article, workers int, timeout time.Duration) {
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int, len(articles))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := extract(&articles[i], timeout); err != nil {
					articles[i].EnrichError = err.Error()
				}
			}
		}()
	}

	for i := range articles {
		if articles[i].URL != "" {
			jobs <- i
		}
	}
	close(jobs)

	wg.Wait()
}

func extract(a *models.Article, timeout time.Duration) error {
	parsed, err := readability.FromURL(a.URL, timeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}
	a.FullText = parsed.TextContent
	return nil
}
