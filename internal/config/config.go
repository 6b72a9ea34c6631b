package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Port string

	// Auth; empty disables bearer auth entirely.
	APIKey string

	// Document discovery
	DocRoots     []string
	MaxFileBytes int64

	// Outline selection
	MaxHeaderBudget int
	MaxTocDepth     int

	// Search
	MaxSearchResults int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("DOCSCOPE_API_KEY"),

		DocRoots:     envPathList("DOC_ROOTS", []string{"./docs"}),
		MaxFileBytes: envInt64("MAX_FILE_BYTES", 10*1024*1024),

		// A zero budget disables selection, so it is not clamped.
		MaxHeaderBudget: envInt("MAX_HEADER_BUDGET", 25),
		MaxTocDepth:     envInt("MAX_TOC_DEPTH", 3),

		MaxSearchResults: envInt("MAX_SEARCH_RESULTS", 100),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = 10 * 1024 * 1024
	}
	if cfg.MaxTocDepth <= 0 {
		cfg.MaxTocDepth = 3
	}
	if cfg.MaxSearchResults <= 0 {
		cfg.MaxSearchResults = 100
	}

	return cfg
}

func (c Config) Validate() error {
	if len(c.DocRoots) == 0 {
		return fmt.Errorf("DOC_ROOTS must name at least one document root")
	}
	for _, root := range c.DocRoots {
		if root == "" {
			return fmt.Errorf("DOC_ROOTS contains an empty path")
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envPathList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var roots []string
	for _, p := range filepath.SplitList(v) {
		if p != "" {
			roots = append(roots, p)
		}
	}
	if len(roots) == 0 {
		return fallback
	}
	return roots
}
