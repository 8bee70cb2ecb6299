// Package fetch pulls article text from web pages to feed the script
// generator as additional context.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// maxContentLength limits article length for script generation prompts.
const maxContentLength = 8000

// ArticleFetcher downloads web pages and extracts their readable text.
type ArticleFetcher struct {
	client *http.Client
}

// NewArticleFetcher creates a fetcher. A nil client gets a default with
// a short timeout.
func NewArticleFetcher(client *http.Client) *ArticleFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &ArticleFetcher{client: client}
}

// Fetch downloads the page and extracts its title and article text. Long
// articles are truncated with an ellipsis.
func (f *ArticleFetcher) Fetch(ctx context.Context, url string) (content, title string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to fetch article: status code %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title = doc.Find("title").Text()
	content = extractContent(doc)

	if len(content) > maxContentLength {
		content = content[:maxContentLength] + "..."
	}

	return content, title, nil
}

// extractContent pulls paragraph text from common article containers,
// falling back to any long-enough paragraph on the page.
func extractContent(doc *goquery.Document) string {
	var articleText strings.Builder

	article := doc.Find("article, .article, .post, .content, main")
	if article.Length() > 0 {
		article.Find("p").Each(func(_ int, s *goquery.Selection) {
			articleText.WriteString(s.Text())
			articleText.WriteString("\n\n")
		})
	} else {
		doc.Find("p").Each(func(_ int, s *goquery.Selection) {
			// skip very short paragraphs which are likely navigation or ads
			if len(s.Text()) > 50 {
				articleText.WriteString(s.Text())
				articleText.WriteString("\n\n")
			}
		})
	}

	return strings.TrimSpace(articleText.String())
}
