package scrape_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/backend/internal/scrape"
)

const fixture = `<html><body>
<div class="news-item">
  <h2> First headline </h2>
  <p>First description</p>
</div>
<div class="news-item">
  <h2>Second headline</h2>
  <p>Second description</p>
</div>
<div class="news-item">
  <h2>Third headline</h2>
  <p>Third description</p>
</div>
<div class="sidebar">
  <h2>Unrelated widget</h2>
</div>
</body></html>`

var sel = scrape.Selectors{Container: "div.news-item", Headline: "h2", Description: "p"}

func TestListingExtractsInDocumentOrder(t *testing.T) {
	heads, descs, err := scrape.Listing([]byte(fixture), sel)
	require.NoError(t, err)

	require.Equal(t, []string{"First headline", "Second headline", "Third headline"}, heads)
	require.Equal(t, []string{"First description", "Second description", "Third description"}, descs)
}

func TestListingUnevenCounts(t *testing.T) {
	html := `<div class="news-item"><h2>One</h2></div>
<div class="news-item"><h2>Two</h2><p>Only description</p></div>`

	heads, descs, err := scrape.Listing([]byte(html), sel)
	require.NoError(t, err)
	require.Len(t, heads, 2)
	require.Len(t, descs, 1)
}

func TestListingSelectorMismatchIsAnError(t *testing.T) {
	_, _, err := scrape.Listing([]byte(fixture), scrape.Selectors{
		Container: "div.gone", Headline: "h2", Description: "p",
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, scrape.ErrNoMatches))
}
