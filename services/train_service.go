package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"train-booking/domain"
	"train-booking/logger"
	"train-booking/metrics"
	"train-booking/models"
)

const snapshotKey = "trains:snapshot"

// SnapshotCache stores the decoded listing between process restarts
type SnapshotCache interface {
	Load(ctx context.Context) ([]models.TrainRecord, bool, error)
	Store(ctx context.Context, trains []models.TrainRecord, ttl time.Duration) error
}

// RedisSnapshotCache keeps the listing as one JSON value in redis
type RedisSnapshotCache struct {
	Client *redis.Client
	Key    string
}

func NewRedisSnapshotCache(client *redis.Client) *RedisSnapshotCache {
	return &RedisSnapshotCache{Client: client, Key: snapshotKey}
}

func (c *RedisSnapshotCache) Load(ctx context.Context) ([]models.TrainRecord, bool, error) {
	raw, err := c.Client.Get(ctx, c.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var trains []models.TrainRecord
	if err := json.Unmarshal(raw, &trains); err != nil {
		return nil, false, fmt.Errorf("decode cached listing: %w", err)
	}
	return trains, true, nil
}

func (c *RedisSnapshotCache) Store(ctx context.Context, trains []models.TrainRecord, ttl time.Duration) error {
	b, err := json.Marshal(trains)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Key, b, ttl).Err()
}

const (
	defaultSnapshotTTL = 10 * time.Minute
	defaultRetryAfter  = 30 * time.Second
)

// TrainCatalog serves a read-only snapshot of the remote train listing.
// After a failed refresh the listing is not fetched again for RetryAfter.
type TrainCatalog struct {
	ListingURL string
	Cache      SnapshotCache
	TTL        time.Duration
	RetryAfter time.Duration
	HTTPClient *http.Client

	mu       sync.RWMutex
	trains   []models.TrainRecord
	loadedAt time.Time
	retryAt  time.Time
	lastErr  error
}

func NewTrainCatalog(listingURL string, cache SnapshotCache, ttl time.Duration) *TrainCatalog {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &TrainCatalog{
		ListingURL: listingURL,
		Cache:      cache,
		TTL:        ttl,
		RetryAfter: defaultRetryAfter,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Snapshot returns the current listing. The slice is shared and must not be modified.
func (c *TrainCatalog) Snapshot(ctx context.Context) ([]models.TrainRecord, error) {
	c.mu.RLock()
	trains, ok, err := c.current(time.Now())
	c.mu.RUnlock()
	if ok {
		return trains, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if trains, ok, err := c.current(time.Now()); ok {
		return trains, err
	}

	log := logger.GetLogger()

	if c.Cache != nil {
		trains, found, err := c.Cache.Load(ctx)
		if err != nil {
			log.Warnw("Listing cache unavailable", "error", err)
		} else if found {
			c.trains, c.loadedAt = trains, time.Now()
			return trains, nil
		}
	}

	trains, err = c.fetch(ctx)
	if err != nil {
		metrics.Default.ErrorsCount.WithLabelValues("fetch_trains").Inc()
		c.retryAt, c.lastErr = time.Now().Add(c.RetryAfter), err
		if c.trains != nil {
			log.Warnw("Listing refresh failed, serving stale snapshot", "retry_after", c.RetryAfter, "error", err)
			return c.trains, nil
		}
		return nil, err
	}

	if c.Cache != nil {
		if err := c.Cache.Store(ctx, trains, c.TTL); err != nil {
			log.Warnw("Failed to cache listing", "error", err)
		}
	}

	log.Infow("Loaded train listing", "trains", len(trains), "url", c.ListingURL)
	c.trains, c.loadedAt = trains, time.Now()
	c.retryAt, c.lastErr = time.Time{}, nil
	return trains, nil
}

// current answers from memory while the snapshot is fresh or a failed
// refresh is still backing off. ok is false when a refresh is due.
func (c *TrainCatalog) current(now time.Time) ([]models.TrainRecord, bool, error) {
	if c.trains != nil && now.Sub(c.loadedAt) < c.TTL {
		return c.trains, true, nil
	}
	if now.Before(c.retryAt) {
		if c.trains != nil {
			return c.trains, true, nil
		}
		return nil, true, c.lastErr
	}
	return nil, false, nil
}

func (c *TrainCatalog) fetch(ctx context.Context) ([]models.TrainRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ListingURL, nil)
	if err != nil {
		return nil, err
	}
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch train listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("train listing returned %d: %s", resp.StatusCode, string(body))
	}

	var listing models.TrainListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode train listing: %w", err)
	}
	if listing.Data == nil {
		listing.Data = []models.TrainRecord{}
	}
	return listing.Data, nil
}

// Record returns the listing entry for a train number
func (c *TrainCatalog) Record(ctx context.Context, trainNumber string) (*models.TrainRecord, error) {
	trains, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range trains {
		if t.TrainNumber == trainNumber {
			record := t
			return &record, nil
		}
	}
	return nil, domain.NotFoundError{Resource: "train " + trainNumber}
}

// Details returns one train, enriched with its route
func (c *TrainCatalog) Details(ctx context.Context, trainNumber string) (*models.TrainDetail, error) {
	record, err := c.Record(ctx, trainNumber)
	if err != nil {
		return nil, err
	}
	detail := EnrichWithRoute(*record)
	return &detail, nil
}

// Stations lists every source and destination in the snapshot, sorted by name
func (c *TrainCatalog) Stations(ctx context.Context) ([]models.Station, error) {
	trains, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, t := range trains {
		for _, name := range []string{t.Source, t.Destination} {
			if name != "" {
				seen[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	stations := make([]models.Station, len(names))
	for i, name := range names {
		stations[i] = models.Station{Name: name}
	}
	return stations, nil
}

// Search filters the snapshot. A nil selection means no checkbox is ticked.
func (c *TrainCatalog) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	trains, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	selection := DefaultFilterSelection()
	if req.Filters != nil {
		selection = *req.Filters
	}

	results := ApplyFilters(trains, req.Params, selection)

	metrics.Default.SearchesTotal.Inc()
	metrics.Default.SearchResults.Observe(float64(len(results)))
	logger.GetLogger().Debugw("Searched trains",
		"from", req.Params.From, "to", req.Params.To, "class", req.Params.TravelClass,
		"matched", len(results), "of", len(trains))

	return &models.SearchResponse{Count: len(results), Trains: results}, nil
}

var catalog *TrainCatalog

// InitTrainCatalog sets the catalog used by the package level train functions
func InitTrainCatalog(c *TrainCatalog) {
	catalog = c
}

// GetAllTrains returns the whole listing snapshot
func GetAllTrains(ctx context.Context) ([]models.TrainRecord, error) {
	return catalog.Snapshot(ctx)
}

// GetTrainDetails retrieves a train by number
func GetTrainDetails(ctx context.Context, trainNumber string) (*models.TrainDetail, error) {
	return catalog.Details(ctx, trainNumber)
}

// GetAllStations retrieves all stations for autocomplete
func GetAllStations(ctx context.Context) ([]models.Station, error) {
	return catalog.Stations(ctx)
}

// SearchTrains searches the listing snapshot
func SearchTrains(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	return catalog.Search(ctx, req)
}
