package cache

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-joblookup/internal/listing"
)

type snapshotFile struct {
	Catalog   []listing.JobListing `json:"catalog"`
	FetchedAt time.Time            `json:"fetched_at"`
}

// Snapshot is a file-backed cache of the last catalog fetched from the
// listing store, so every form submit does not re-walk the Bitable
// pagination. The engine itself stays catalog-as-a-value; caching is strictly
// a host concern.
type Snapshot struct {
	mu       sync.Mutex
	filePath string
	state    snapshotFile
}

// New creates or loads a catalog snapshot cache under cacheDir.
func New(cacheDir string) *Snapshot {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	s := &Snapshot{
		filePath: filepath.Join(cacheDir, "catalog.json"),
	}
	s.load()
	return s
}

// Catalog returns the cached catalog if it is younger than maxAge.
func (s *Snapshot) Catalog(maxAge time.Duration) ([]listing.JobListing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.FetchedAt.IsZero() {
		return nil, false
	}
	if time.Since(s.state.FetchedAt) > maxAge {
		return nil, false
	}
	return s.state.Catalog, true
}

// SetCatalog replaces the cached catalog and persists it.
func (s *Snapshot) SetCatalog(catalog []listing.JobListing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = snapshotFile{Catalog: catalog, FetchedAt: time.Now()}
	s.save()
}

func (s *Snapshot) load() {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read catalog.json: %v", err)
		}
		return
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		log.Printf("⚠️ Failed to parse catalog.json: %v", err)
		return
	}
	log.Printf("📋 Loaded cached catalog: %d listings (fetched %s)",
		len(s.state.Catalog), s.state.FetchedAt.Format(time.RFC3339))
}

func (s *Snapshot) save() {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal catalog snapshot: %v", err)
		return
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write catalog.json: %v", err)
		return
	}
	log.Printf("💾 Saved catalog snapshot (%d listings)", len(s.state.Catalog))
}
