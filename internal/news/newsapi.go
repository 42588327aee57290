package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"portfolio-scanner/internal/api"
	"portfolio-scanner/internal/logger"
)

// NewsAPISource fetches top headlines from NewsAPI.org. Endpoints are tried
// in order: home-country business, home-country general, then US business as
// a last resort. With keywords configured, a keyword search over the
// everything endpoint is tried first. The first endpoint returning usable
// articles wins.
type NewsAPISource struct {
	client   *api.Client
	apiKey   string
	country  string
	keywords []string
}

// NewsAPIOption customizes a NewsAPISource.
type NewsAPIOption func(*NewsAPISource)

// WithCountry overrides the home country for headline endpoints.
func WithCountry(country string) NewsAPIOption {
	return func(s *NewsAPISource) {
		if country != "" {
			s.country = country
		}
	}
}

// WithKeywordQuery adds a keyword search tried before the headline
// endpoints.
func WithKeywordQuery(keywords []string) NewsAPIOption {
	return func(s *NewsAPISource) {
		s.keywords = keywords
	}
}

type headlineEndpoint struct {
	name string
	path string
}

func (s *NewsAPISource) endpoints() []headlineEndpoint {
	var eps []headlineEndpoint
	if len(s.keywords) > 0 {
		q := url.Values{}
		q.Set("q", strings.Join(s.keywords, " OR "))
		q.Set("language", "en")
		q.Set("sortBy", "publishedAt")
		eps = append(eps, headlineEndpoint{name: "Keyword Search", path: "/everything?" + q.Encode()})
	}
	eps = append(eps,
		headlineEndpoint{name: "Home Business", path: headlinePath(s.country, "business")},
		headlineEndpoint{name: "Home General", path: headlinePath(s.country, "")},
		headlineEndpoint{name: "US Business", path: headlinePath("us", "business")},
	)
	return eps
}

func headlinePath(country, category string) string {
	q := url.Values{}
	q.Set("country", country)
	if category != "" {
		q.Set("category", category)
	}
	return "/top-headlines?" + q.Encode()
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"articles"`
}

func NewNewsAPISource(baseURL, apiKey string, timeout time.Duration, opts ...NewsAPIOption) *NewsAPISource {
	s := &NewsAPISource{
		client: api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
		apiKey:  apiKey,
		country: "in",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *NewsAPISource) Name() string { return "newsapi" }

func (s *NewsAPISource) Fetch(ctx context.Context, maxArticles int) ([]string, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("newsapi: no API key configured")
	}

	var lastErr error
	for _, endpoint := range s.endpoints() {
		articles, err := s.fetchEndpoint(ctx, endpoint, maxArticles)
		if err != nil {
			logger.Warn(ctx, "Headline endpoint failed", "endpoint", endpoint.name, "error", err)
			lastErr = err
			continue
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("newsapi: all endpoints failed: %w", lastErr)
	}
	return nil, nil
}

func (s *NewsAPISource) fetchEndpoint(ctx context.Context, endpoint headlineEndpoint, maxArticles int) ([]string, error) {
	resp, err := s.client.GETWithRetry(ctx, endpoint.path, nil, api.NewsAPIHeaders(s.apiKey))
	if err != nil {
		return nil, err
	}

	var parsed newsAPIResponse
	if err := resp.ParseJSON(&parsed); err != nil {
		return nil, err
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q", parsed.Status)
	}

	var articles []string
	for _, a := range parsed.Articles {
		if a.Title == "" || a.Description == "" {
			continue
		}
		articles = append(articles, FormatArticle(a.Title, a.Description))
		if maxArticles > 0 && len(articles) >= maxArticles {
			break
		}
	}
	return articles, nil
}
