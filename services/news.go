package services

import (
	"context"
	"html"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/finsight-app/finsight-api/models"
)

// ============================================================================
// NEWS SERVICE
// Pulls finance news from external RSS feeds with ordered fallback and
// normalizes them into a bounded list of items for the news page.
// ============================================================================

const (
	// maxNewsItems caps the output so an oversized upstream feed can never
	// flood the client.
	maxNewsItems = 15

	newsUserAgent = "FinSightBot/1.0"

	// maxFeedBytes bounds how much of a response body is read.
	maxFeedBytes = 2 << 20
)

// DefaultNewsSources is consulted in order; the first source that answers
// with a 2xx wins.
var DefaultNewsSources = []string{
	"https://www.reddit.com/r/Economics/.rss",
	"https://www.ft.com/economy?format=rss",
}

type NewsService struct {
	client  *http.Client
	parser  *gofeed.Parser
	policy  *bluemonday.Policy
	sources []string
}

func NewNewsService(sources []string) *NewsService {
	if len(sources) == 0 {
		sources = DefaultNewsSources
	}
	return &NewsService{
		client:  &http.Client{Timeout: 15 * time.Second},
		parser:  gofeed.NewParser(),
		policy:  bluemonday.StrictPolicy(),
		sources: sources,
	}
}

// FetchFeed returns at most maxNewsItems normalized items from the first
// reachable source. Every failure mode degrades to an empty list; the caller
// never sees an error from this path.
func (s *NewsService) FetchFeed(ctx context.Context) []models.NewsItem {
	body, ok := s.fetchFirstAvailable(ctx)
	if !ok {
		return []models.NewsItem{}
	}

	feed, err := s.parser.ParseString(body)
	if err != nil {
		log.Printf("⚠️ Failed to parse news feed: %v", err)
		return []models.NewsItem{}
	}

	items := []models.NewsItem{}
	for _, entry := range feed.Items {
		if len(items) >= maxNewsItems {
			break
		}

		title := s.stripMarkup(entry.Title)
		if title == "" {
			title = "Untitled"
		}

		items = append(items, models.NewsItem{
			Title:       title,
			Link:        s.stripMarkup(entry.Link),
			PubDate:     strings.TrimSpace(entry.Published),
			Description: s.stripMarkup(entry.Description),
		})
	}
	return items
}

// fetchFirstAvailable tries each source sequentially and returns the body of
// the first one that answers with a success status. Transport errors and
// non-2xx responses just move on to the next source.
func (s *NewsService) fetchFirstAvailable(ctx context.Context) (string, bool) {
	for _, url := range s.sources {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			log.Printf("⚠️ Bad news source URL %s: %v", url, err)
			continue
		}
		req.Header.Set("User-Agent", newsUserAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			log.Printf("⚠️ News source unreachable, trying next: %v", err)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			log.Printf("⚠️ News source %s returned %d, trying next", url, resp.StatusCode)
			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
		resp.Body.Close()
		if err != nil {
			log.Printf("⚠️ Failed to read news feed body: %v", err)
			continue
		}
		return string(body), true
	}
	return "", false
}

// stripMarkup removes any HTML from feed text and trims it. bluemonday
// escapes entities while sanitizing, so unescape afterwards to get plain
// text back.
func (s *NewsService) stripMarkup(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
