package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/finsight-app/finsight-api/services"
	"github.com/finsight-app/finsight-api/store"
)

// InitStore opens the file-backed record store rooted at DATA_DIR (default
// "data") and makes sure the directory is usable.
func InitStore() (*store.Store, error) {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return store.New(dir), nil
}

// LoadCategoryAverages reads the reference spending averages consumed by the
// insights service. AVERAGES_FILE may point at a JSON object of
// category -> monthly amount; otherwise the built-in table is used. The
// figures are an external input, never computed from user data.
func LoadCategoryAverages() map[string]float64 {
	path := os.Getenv("AVERAGES_FILE")
	if path == "" {
		return services.DefaultCategoryAverages
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Could not read averages file %s, using defaults: %v", path, err)
		return services.DefaultCategoryAverages
	}

	averages := map[string]float64{}
	if err := json.Unmarshal(data, &averages); err != nil {
		log.Printf("⚠️ Could not parse averages file %s, using defaults: %v", path, err)
		return services.DefaultCategoryAverages
	}
	return averages
}

// LoadNewsSources returns the ordered feed URLs from NEWS_SOURCES
// (comma-separated), or nil to let the news service fall back to its
// defaults.
func LoadNewsSources() []string {
	raw := os.Getenv("NEWS_SOURCES")
	if raw == "" {
		return nil
	}

	sources := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sources = append(sources, trimmed)
		}
	}
	return sources
}
