package scrape

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoMatches reports that the container selector matched nothing, usually
// because the page structure changed.
var ErrNoMatches = errors.New("no elements matched the container selector")

// Selectors locate article blocks and their text on a listing page.
type Selectors struct {
	Container   string
	Headline    string
	Description string
}

// Listing extracts headline and description texts from a listing page, in
// document order. A container selector that matches nothing is an error so
// that a changed page layout surfaces here instead of downstream.
func Listing(body []byte, sel Selectors) (headlines, descriptions []string, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("parse html: %w", err)
	}

	containers := doc.Find(sel.Container)
	if containers.Length() == 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrNoMatches, sel.Container)
	}

	containers.Each(func(_ int, s *goquery.Selection) {
		s.Find(sel.Headline).Each(func(_ int, h *goquery.Selection) {
			if text := strings.TrimSpace(h.Text()); text != "" {
				headlines = append(headlines, text)
			}
		})
		s.Find(sel.Description).Each(func(_ int, d *goquery.Selection) {
			if text := strings.TrimSpace(d.Text()); text != "" {
				descriptions = append(descriptions, text)
			}
		})
	})

	return headlines, descriptions, nil
}
