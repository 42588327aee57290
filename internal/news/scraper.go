package news

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"portfolio-scanner/internal/logger"
)

// ScraperSource scrapes headline listings from financial news sites as a
// fallback when no API or feed is available.
type ScraperSource struct {
	sites   []ScrapeSite
	timeout time.Duration
}

// ScrapeSite defines one site's listing page and the CSS selectors for
// pulling headlines out of it.
type ScrapeSite struct {
	Name      string
	URL       string
	Selectors ArticleSelectors
	RateLimit time.Duration
}

// ArticleSelectors defines CSS selectors for extracting article data
type ArticleSelectors struct {
	ArticleContainer string
	Title            string
	Summary          string
}

// NewScraperSource builds a scraper over the given listing URLs, falling
// back to the default site set when none are configured.
func NewScraperSource(siteURLs []string, timeout time.Duration) *ScraperSource {
	sites := defaultSites()
	if len(siteURLs) > 0 {
		sites = sites[:0]
		for _, u := range siteURLs {
			sites = append(sites, ScrapeSite{
				Name: hostOf(u),
				URL:  u,
				Selectors: ArticleSelectors{
					ArticleContainer: "li, div.story-box, article",
					Title:            "h2 a, h3 a, a",
					Summary:          "p",
				},
				RateLimit: 2 * time.Second,
			})
		}
	}
	return &ScraperSource{sites: sites, timeout: timeout}
}

func defaultSites() []ScrapeSite {
	return []ScrapeSite{
		{
			Name: "MoneyControl",
			URL:  "https://www.moneycontrol.com/news/business/markets/",
			Selectors: ArticleSelectors{
				ArticleContainer: "li.clearfix",
				Title:            "h2 a, h3 a",
				Summary:          "p",
			},
			RateLimit: 2 * time.Second,
		},
		{
			Name: "EconomicTimes",
			URL:  "https://economictimes.indiatimes.com/markets/stocks/news",
			Selectors: ArticleSelectors{
				ArticleContainer: "div.story-box",
				Title:            "a",
				Summary:          "p",
			},
			RateLimit: 2 * time.Second,
		},
		{
			Name: "BusinessStandard",
			URL:  "https://www.business-standard.com/markets",
			Selectors: ArticleSelectors{
				ArticleContainer: "div.listing-txt",
				Title:            "a.Hdng",
				Summary:          "p",
			},
			RateLimit: 2 * time.Second,
		},
	}
}

func (s *ScraperSource) Name() string { return "scraper" }

func (s *ScraperSource) Fetch(ctx context.Context, maxArticles int) ([]string, error) {
	if len(s.sites) == 0 {
		return nil, nil
	}
	logger.Info(ctx, "Starting news scraping", "sites", len(s.sites))

	var all []string
	perSite := maxArticles / len(s.sites)
	if perSite < 1 {
		perSite = 1
	}

	for _, site := range s.sites {
		articles, err := s.scrapeSite(ctx, site, perSite)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to scrape site", err, "site", site.Name)
			continue
		}
		all = append(all, articles...)

		// Rate limiting between sites
		time.Sleep(site.RateLimit)
	}

	if maxArticles > 0 && len(all) > maxArticles {
		all = all[:maxArticles]
	}
	logger.Info(ctx, "News scraping completed", "articles", len(all))
	return all, nil
}

func (s *ScraperSource) scrapeSite(ctx context.Context, site ScrapeSite, maxArticles int) ([]string, error) {
	var articles []string

	c := colly.NewCollector(
		colly.AllowedDomains(hostOf(site.URL)),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	c.OnHTML(site.Selectors.ArticleContainer, func(e *colly.HTMLElement) {
		if len(articles) >= maxArticles {
			return
		}
		title := strings.TrimSpace(e.ChildText(site.Selectors.Title))
		if title == "" {
			return
		}
		summary := firstParagraph(e.DOM, site.Selectors.Summary)
		articles = append(articles, FormatArticle(title, summary))
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "site", site.Name, "url", r.Request.URL.String())
	})

	if err := c.Visit(site.URL); err != nil {
		return nil, err
	}
	c.Wait()

	return articles, nil
}

// firstParagraph returns the first non-trivial paragraph under the matched
// listing element.
func firstParagraph(sel *goquery.Selection, selector string) string {
	var text string
	sel.Find(selector).EachWithBreak(func(_ int, p *goquery.Selection) bool {
		t := strings.TrimSpace(p.Text())
		if len(t) > 20 {
			text = t
			return false
		}
		return true
	})
	return text
}

func hostOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
