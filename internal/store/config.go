package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scan struct {
		Keywords    []string `yaml:"keywords"`
		Country     string   `yaml:"country"`
		MaxArticles int      `yaml:"max_articles"`
		TopN        int      `yaml:"top_n"`
	} `yaml:"scan"`
	News struct {
		Sources      []string `yaml:"sources"` // order matters: first source that yields articles wins
		APIBaseURL   string   `yaml:"api_base_url"`
		APIKeyEnv    string   `yaml:"api_key_env"`
		TimeoutSecs  int      `yaml:"timeout_seconds"`
		RSSFeeds     []string `yaml:"rss_feeds"`
		ScraperSites []string `yaml:"scraper_sites"`
	} `yaml:"news"`
	Server struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Log struct {
		Dir           string `yaml:"dir"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"log"`
}

func (c *Config) Validate() error {
	if len(c.Scan.Keywords) == 0 {
		return errors.New("scan.keywords cannot be empty")
	}
	if c.Scan.MaxArticles <= 0 {
		return fmt.Errorf("scan.max_articles must be positive, got %d", c.Scan.MaxArticles)
	}
	for _, s := range c.News.Sources {
		switch s {
		case "newsapi", "rss", "scraper", "static":
		default:
			return fmt.Errorf("invalid news source '%s': must be 'newsapi', 'rss', 'scraper' or 'static'", s)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Scan.Country == "" {
		c.Scan.Country = "in"
	}
	if c.Scan.MaxArticles == 0 {
		c.Scan.MaxArticles = 100
	}
	if c.Scan.TopN == 0 {
		c.Scan.TopN = 10
	}
	if len(c.News.Sources) == 0 {
		c.News.Sources = []string{"newsapi", "rss"}
	}
	if c.News.APIBaseURL == "" {
		c.News.APIBaseURL = "https://newsapi.org/v2"
	}
	if c.News.APIKeyEnv == "" {
		c.News.APIKeyEnv = "NEWS_API_KEY"
	}
	if c.News.TimeoutSecs == 0 {
		c.News.TimeoutSecs = 30
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = "scans"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
