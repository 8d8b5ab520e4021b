package track

// Store exposes track retrieval for HTTP handlers and the controller.
type Store interface {
	List() []Track
	FindByID(id string) (Track, bool)
}

// MemoryStore implements Store with an in-memory slice; the track set is
// fixed at startup.
type MemoryStore struct {
	items []Track
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied tracks.
func NewMemoryStore(items []Track) *MemoryStore {
	return &MemoryStore{items: append([]Track(nil), items...)}
}

// List returns the configured tracks.
func (s *MemoryStore) List() []Track {
	return append([]Track(nil), s.items...)
}

// FindByID looks up a track by identifier.
func (s *MemoryStore) FindByID(id string) (Track, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Track{}, false
}
