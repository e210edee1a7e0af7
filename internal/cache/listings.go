package cache

// Listing cache keys, one per cached entity listing. Milestone listings
// are not cached.
const (
	KeyProjects = "projects"
	KeyTasks    = "tasks"
)

// Listings is the read-through cache for whole entity listings. Entries
// never expire; any mutation of an entity type drops that type's key so
// the next read repopulates it from the database.
type Listings struct {
	store Cache[string, any]
}

// NewListings returns a Listings backed by a fresh SimpleCache.
func NewListings() *Listings {
	return &Listings{store: NewSimpleCache[string, any]()}
}

// Get returns the cached listing for key, if any.
func (l *Listings) Get(key string) (any, bool) {
	return l.store.Get(key)
}

// Set stores a listing with no expiry.
func (l *Listings) Set(key string, value any) {
	l.store.Set(key, value, 0)
}

// Invalidate drops the whole listing for key. There is no partial
// invalidation.
func (l *Listings) Invalidate(key string) {
	l.store.Delete(key)
}
