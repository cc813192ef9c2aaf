package news

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthtrack-api/internal/config"
	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/pkg/metrics"
)

const (
	cacheKey       = "headlines"
	descriptionMax = 120
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Fallback is served whenever the upstream feed cannot be fetched or
// parsed. The home page must always render something.
var Fallback = []model.NewsItem{
	{Title: "Health news is currently unavailable", Description: "Please check back later."},
}

// proxyResponse is the feed-to-JSON proxy contract we consume.
type proxyResponse struct {
	Status string `json:"status"`
	Items  []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
		PubDate     string `json:"pubDate"`
	} `json:"items"`
}

type Service struct {
	client  *resty.Client
	cfg     config.NewsConfig
	cache   *cache.Cache
	metrics *metrics.Metrics
}

func NewService(cfg config.NewsConfig, m *metrics.Metrics) *Service {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Service{
		client:  client,
		cfg:     cfg,
		cache:   cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		metrics: m,
	}
}

// Headlines returns the latest health headlines. Failures never surface
// to the caller: any fetch or parse problem yields the static fallback.
func (s *Service) Headlines(ctx context.Context) []model.NewsItem {
	if cached, ok := s.cache.Get(cacheKey); ok {
		if s.metrics != nil {
			s.metrics.NewsCacheHits.Inc()
		}
		return cached.([]model.NewsItem)
	}

	items, err := s.fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("news feed unavailable, serving fallback")
		if s.metrics != nil {
			s.metrics.NewsFetchFailures.Inc()
		}
		return Fallback
	}

	s.cache.SetDefault(cacheKey, items)
	return items
}

func (s *Service) fetch(ctx context.Context) ([]model.NewsItem, error) {
	if s.metrics != nil {
		s.metrics.NewsFetches.Inc()
	}

	var parsed proxyResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("rss_url", s.cfg.FeedURL).
		SetResult(&parsed).
		Get(s.cfg.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("news proxy returned status %d", resp.StatusCode())
	}
	if parsed.Status != "ok" || len(parsed.Items) == 0 {
		return nil, fmt.Errorf("news proxy returned no items")
	}

	limit := s.cfg.MaxItems
	if limit <= 0 || limit > len(parsed.Items) {
		limit = len(parsed.Items)
	}

	items := make([]model.NewsItem, 0, limit)
	for _, it := range parsed.Items[:limit] {
		items = append(items, model.NewsItem{
			Title:       it.Title,
			Link:        it.Link,
			Description: summarize(it.Description),
			PubDate:     it.PubDate,
		})
	}

	return items, nil
}

// summarize strips markup and truncates the description for the card
// layout.
func summarize(description string) string {
	plain := strings.TrimSpace(tagPattern.ReplaceAllString(description, ""))
	runes := []rune(plain)
	if len(runes) <= descriptionMax {
		return plain
	}
	return string(runes[:descriptionMax]) + "..."
}
