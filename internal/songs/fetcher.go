package songs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the raw-file root of the Giitaayan song repository.
	DefaultBaseURL = "https://raw.githubusercontent.com/v9y/giit/master/docs/"

	// Default identifier range of the song files.
	DefaultFirstID = 1
	DefaultLastID  = 3500
)

// FetchConfig configures a fetch run.
type FetchConfig struct {
	BaseURL     string
	CacheDir    string // "" disables caching of raw song files
	Concurrency int
}

// Fetcher retrieves song metadata files by sequential identifier and parses
// them into Records.
type Fetcher struct {
	HTTPClient *http.Client
	config     FetchConfig
}

// NewFetcher creates a fetcher with sane HTTP defaults.
func NewFetcher(config FetchConfig) *Fetcher {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		config: config,
	}
}

// FetchAll fetches and parses song files first..last inclusive. Fetch
// failures are logged and skipped, never fatal. Results come back sorted by
// ID so the persisted dataset is deterministic regardless of concurrency.
func (f *Fetcher) FetchAll(ctx context.Context, first, last int) ([]Record, error) {
	if first > last {
		return nil, fmt.Errorf("invalid id range: %d..%d", first, last)
	}

	if f.config.CacheDir != "" {
		if err := os.MkdirAll(f.config.CacheDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	total := last - first + 1
	slog.Info("Fetching song files", "first", first, "last", last, "concurrency", f.config.Concurrency)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, f.config.Concurrency)
	recordsChan := make(chan Record, total)

	for id := first; id <= last; id++ {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			text, err := f.fetchOne(ctx, id)
			if err != nil {
				slog.Warn("Failed to fetch song file", "id", id, "error", err)
				return
			}

			recordsChan <- Parse(id, text)
		}(id)
	}

	go func() {
		wg.Wait()
		close(recordsChan)
	}()

	var records []Record
	for rec := range recordsChan {
		records = append(records, rec)

		if len(records)%500 == 0 {
			slog.Debug("Fetch progress", "fetched", len(records), "total", total)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	slog.Info("Finished fetching song files", "fetched", len(records), "failed", total-len(records))
	return records, nil
}

// fetchOne returns the raw text of one song file, preferring the local cache
// when one is configured.
func (f *Fetcher) fetchOne(ctx context.Context, id int) (string, error) {
	filename := fmt.Sprintf("%d.isb.txt", id)

	var cachedPath string
	if f.config.CacheDir != "" {
		cachedPath = filepath.Join(f.config.CacheDir, filename)
		if data, err := os.ReadFile(cachedPath); err == nil {
			slog.Debug("Using cached song file", "id", id, "path", cachedPath)
			return string(data), nil
		}
	}

	url := f.config.BaseURL + filename

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if cachedPath != "" {
		if err := os.WriteFile(cachedPath, data, 0644); err != nil {
			slog.Warn("Failed to cache song file", "id", id, "error", err)
		}
	}

	return string(data), nil
}
