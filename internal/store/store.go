// Package store persists normalized catalog responses in BoltDB with an
// in-memory hot cache on top.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

// Bucket names
var (
	bucketSearches = []byte("searches")
	bucketTitles   = []byte("titles")
	bucketOffers   = []byte("offers")
)

// DefaultStaleAfter bounds how long a cached response stays servable
const DefaultStaleAfter = time.Hour

// record wraps a cached value with its fetch time for staleness checks
type record struct {
	Value     json.RawMessage `json:"value"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// CatalogStore implements domain.CatalogCache using BoltDB. An empty cache
// directory selects memory-only mode.
type CatalogStore struct {
	db         *bolt.DB
	staleAfter time.Duration

	mu sync.RWMutex
	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewCatalogStore opens (or creates) the cache database under cacheDir
func NewCatalogStore(cacheDir string, staleAfter time.Duration) (*CatalogStore, error) {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	if cacheDir == "" {
		return &CatalogStore{staleAfter: staleAfter, cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cacheDir, "watchmovies.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSearches, bucketTitles, bucketOffers} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogStore{db: db, staleAfter: staleAfter, cache: make(map[string][]byte)}, nil
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CatalogStore) get(bucket []byte, key string, dest any) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	data, ok := s.cache[cacheKey]
	s.mu.RUnlock()

	if !ok && s.db != nil {
		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucket)
			if b == nil {
				return nil
			}
			if v := b.Get([]byte(key)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})
		if data != nil {
			s.mu.Lock()
			s.cache[cacheKey] = data
			s.mu.Unlock()
		}
	}

	if data == nil {
		return false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return false
	}
	if time.Since(rec.FetchedAt) > s.staleAfter {
		return false
	}
	return json.Unmarshal(rec.Value, dest) == nil
}

func (s *CatalogStore) put(bucket []byte, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	data, err := json.Marshal(record{Value: raw, FetchedAt: time.Now()})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[string(bucket)+":"+key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (s *CatalogStore) delete(bucket []byte, key string) {
	s.mu.Lock()
	delete(s.cache, string(bucket)+":"+key)
	s.mu.Unlock()

	if s.db == nil {
		return
	}
	s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}

// === domain.CatalogCache ===

func (s *CatalogStore) GetSearch(key string) ([]domain.MediaEntry, bool) {
	var entries []domain.MediaEntry
	if !s.get(bucketSearches, key, &entries) {
		return nil, false
	}
	return entries, true
}

func (s *CatalogStore) SaveSearch(key string, entries []domain.MediaEntry) error {
	return s.put(bucketSearches, key, entries)
}

func (s *CatalogStore) GetDetails(key string) (*domain.MediaEntry, bool) {
	var entry domain.MediaEntry
	if !s.get(bucketTitles, key, &entry) {
		return nil, false
	}
	return &entry, true
}

func (s *CatalogStore) SaveDetails(key string, entry *domain.MediaEntry) error {
	if entry == nil {
		return nil
	}
	return s.put(bucketTitles, key, entry)
}

func (s *CatalogStore) GetOffers(key string) (map[string][]domain.Offer, bool) {
	var offers map[string][]domain.Offer
	if !s.get(bucketOffers, key, &offers) {
		return nil, false
	}
	return offers, true
}

func (s *CatalogStore) SaveOffers(key string, offers map[string][]domain.Offer) error {
	return s.put(bucketOffers, key, offers)
}

// Invalidate drops one key from every bucket
func (s *CatalogStore) Invalidate(key string) {
	for _, bucket := range [][]byte{bucketSearches, bucketTitles, bucketOffers} {
		s.delete(bucket, key)
	}
}

// InvalidateAll drops every cached response
func (s *CatalogStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}
	s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSearches, bucketTitles, bucketOffers} {
			if err := tx.DeleteBucket(bucket); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(bucket); err != nil {
				return err
			}
		}
		return nil
	})
}
