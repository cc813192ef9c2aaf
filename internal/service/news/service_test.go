package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthtrack-api/internal/config"
)

func testConfig(proxyURL string) config.NewsConfig {
	return config.NewsConfig{
		FeedURL:  "https://example.org/feed.xml",
		ProxyURL: proxyURL,
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
		MaxItems: 5,
	}
}

const proxyBody = `{
	"status": "ok",
	"items": [
		{"title": "First headline", "link": "https://example.org/1", "description": "<p>Body one</p>", "pubDate": "2026-03-14 08:00:00"},
		{"title": "Second headline", "link": "https://example.org/2", "description": "Body two", "pubDate": "2026-03-14 09:00:00"}
	]
}`

func TestHeadlines(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "https://example.org/feed.xml", r.URL.Query().Get("rss_url"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(proxyBody))
	}))
	defer srv.Close()

	svc := NewService(testConfig(srv.URL), nil)

	items := svc.Headlines(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, "First headline", items[0].Title)
	assert.Equal(t, "Body one", items[0].Description, "markup is stripped")
	assert.Equal(t, "https://example.org/2", items[1].Link)

	// Second call is served from cache
	items = svc.Headlines(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHeadlinesRespectsMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(proxyBody))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxItems = 1
	svc := NewService(cfg, nil)

	items := svc.Headlines(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, "First headline", items[0].Title)
}

func TestHeadlinesFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewService(testConfig(srv.URL), nil)

	items := svc.Headlines(context.Background())
	assert.Equal(t, Fallback, items)
}

func TestHeadlinesFallbackOnEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok", "items": []}`))
	}))
	defer srv.Close()

	svc := NewService(testConfig(srv.URL), nil)
	assert.Equal(t, Fallback, svc.Headlines(context.Background()))
}

func TestHeadlinesFallbackOnUnreachableProxy(t *testing.T) {
	svc := NewService(testConfig("http://127.0.0.1:1"), nil)
	assert.Equal(t, Fallback, svc.Headlines(context.Background()))
}

func TestHeadlinesFallbackNotCached(t *testing.T) {
	var healthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(proxyBody))
	}))
	defer srv.Close()

	svc := NewService(testConfig(srv.URL), nil)

	assert.Equal(t, Fallback, svc.Headlines(context.Background()))

	// Once the proxy recovers, real headlines come through
	healthy.Store(true)
	items := svc.Headlines(context.Background())
	require.Len(t, items, 2)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "plain text", summarize("plain text"))
	assert.Equal(t, "bold move", summarize("<b>bold</b> move"))
	assert.Equal(t, "", summarize("<img src='x'/>"))

	long := strings.Repeat("น", 200)
	got := summarize(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Len(t, []rune(got), descriptionMax+3)
}
