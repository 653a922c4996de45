package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Countries to load, as source identifiers (e.g. "sierra_leone").
	Countries []string

	// DataDir holds the local CSV files when no remote source is set.
	DataDir string

	// DataBaseURL, when set, switches loading to the remote source at
	// <DataBaseURL>/<id>_clean.csv.
	DataBaseURL string

	// CountryURLs maps country ids to explicit download URLs, overriding
	// the DataBaseURL pattern per country.
	CountryURLs map[string]string

	// CacheTTL bounds how long the built dataset is served before a lazy
	// rebuild (0 = never expires).
	CacheTTL time.Duration

	// RefreshInterval controls the scheduled dataset refresh (0 = off).
	RefreshInterval time.Duration

	// HTTPTimeout applies to outbound source fetches.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	countries := getenvDefault("COUNTRIES", "benin,sierra_leone,togo")
	for _, c := range strings.Split(countries, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cfg.Countries = append(cfg.Countries, c)
		}
	}
	if len(cfg.Countries) == 0 {
		return nil, fmt.Errorf("COUNTRIES must name at least one country")
	}

	cfg.DataDir = getenvDefault("DATA_DIR", "data")
	cfg.DataBaseURL = strings.TrimRight(os.Getenv("DATA_BASE_URL"), "/")

	urls, err := parseCountryURLs(os.Getenv("COUNTRY_URLS"))
	if err != nil {
		return nil, err
	}
	cfg.CountryURLs = urls

	// Dataset cache validity: default 1 hour.
	ttlStr := getenvDefault("CACHE_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	refreshStr := getenvDefault("REFRESH_INTERVAL", "1h")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = refresh

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// parseCountryURLs parses "id=url,id=url" pairs.
func parseCountryURLs(s string) (map[string]string, error) {
	if s == "" {
		return nil, nil
	}
	urls := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, u, ok := strings.Cut(pair, "=")
		if !ok || id == "" || u == "" {
			return nil, fmt.Errorf("invalid COUNTRY_URLS entry %q; want id=url", pair)
		}
		urls[strings.TrimSpace(id)] = strings.TrimSpace(u)
	}
	return urls, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
