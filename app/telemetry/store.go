package telemetry

import (
	"maps"
	"sync"
	"time"
)

// Snapshot is the latest view of the running simulator. Data holds one decoded
// JSON payload per endpoint key; values are never mutated after Set, so
// callers may read them without copying.
type Snapshot struct {
	Sim       string         `json:"sim,omitempty"`
	Connected bool           `json:"connected"`
	UpdatedAt time.Time      `json:"updated_at"`
	Data      map[string]any `json:"data"`
}

// Store keeps the telemetry snapshot behind a lock. A single poller writes,
// any number of readers take copies via Get.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore makes an empty, disconnected store.
func NewStore() *Store {
	return &Store{snap: Snapshot{Data: map[string]any{}}}
}

// Connect starts a fresh session for the named simulator, dropping whatever
// the previous session left behind.
func (s *Store) Connect(sim string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{Sim: sim, Connected: true, UpdatedAt: time.Now(), Data: map[string]any{}}
}

// Set stores one endpoint payload under its key.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Data[key] = value
	s.snap.UpdatedAt = time.Now()
}

// Reset clears the snapshot after the simulator goes away.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{Data: map[string]any{}}
}

// Get returns the current snapshot with the data map copied, safe to hold
// across poll cycles.
func (s *Store) Get() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := s.snap
	res.Data = maps.Clone(s.snap.Data)
	return res
}
