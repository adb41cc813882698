package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssFeed(items ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<rss version="2.0"><channel><title>Test Feed</title><link>https://example.com</link><description>test</description>`)
	for _, item := range items {
		b.WriteString(item)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func rssItem(i int) string {
	return fmt.Sprintf(`<item><title>Headline %d</title><link>https://example.com/%d</link><pubDate>Mon, 02 Jun 2025 10:00:00 GMT</pubDate><description>Body %d</description></item>`, i, i, i)
}

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchFeedBoundsOutput(t *testing.T) {
	items := make([]string, 40)
	for i := range items {
		items[i] = rssItem(i)
	}
	srv := feedServer(t, rssFeed(items...))

	news := NewNewsService([]string{srv.URL})
	got := news.FetchFeed(context.Background())

	assert.Len(t, got, 15)
	assert.Equal(t, "Headline 0", got[0].Title)
	assert.Equal(t, "https://example.com/0", got[0].Link)
	assert.Equal(t, "Mon, 02 Jun 2025 10:00:00 GMT", got[0].PubDate)
}

func TestFetchFeedFallsBackToNextSource(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	working := feedServer(t, rssFeed(rssItem(1)))

	var thirdHits atomic.Int32
	third := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		thirdHits.Add(1)
		fmt.Fprint(w, rssFeed(rssItem(99)))
	}))
	t.Cleanup(third.Close)

	news := NewNewsService([]string{failing.URL, working.URL, third.URL})
	got := news.FetchFeed(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "Headline 1", got[0].Title)
	assert.Equal(t, int32(0), thirdHits.Load(), "later sources must not be consulted after a success")
}

func TestFetchFeedAllSourcesFailing(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(failing.Close)

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close() // connection refused

	news := NewNewsService([]string{failing.URL, dead.URL})
	got := news.FetchFeed(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetchFeedUnparseableBody(t *testing.T) {
	srv := feedServer(t, "this is not a feed at all")

	news := NewNewsService([]string{srv.URL})
	got := news.FetchFeed(context.Background())

	assert.Empty(t, got)
}

func TestFetchFeedNormalizesItems(t *testing.T) {
	srv := feedServer(t, rssFeed(
		`<item><title></title><link>https://example.com/a</link><description>&lt;p&gt;Some &lt;b&gt;bold&lt;/b&gt; news&lt;/p&gt;</description></item>`,
	))

	news := NewNewsService([]string{srv.URL})
	got := news.FetchFeed(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "Untitled", got[0].Title)
	assert.Equal(t, "https://example.com/a", got[0].Link)
	assert.Equal(t, "Some bold news", got[0].Description)
	assert.Empty(t, got[0].PubDate)
}
