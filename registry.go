package titlefetch

import "sync"

// Ensure Registry implements Extractor at compile time.
var _ Extractor = (*Registry)(nil)

// Registry holds the extractors available to the fetch pipeline in
// registration order. It is append-only and safe for concurrent use.
// A Registry is itself an Extractor: it tries each member in order and
// returns the first title found.
type Registry struct {
	mu         sync.RWMutex
	extractors []Extractor
}

// NewRegistry creates a Registry seeded with the given extractors.
func NewRegistry(extractors ...Extractor) *Registry {
	r := &Registry{}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register appends an extractor. Registering a name that is already present
// is a no-op, so repeated initialization never duplicates entries.
func (r *Registry) Register(e Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.extractors {
		if existing.Name() == e.Name() {
			return
		}
	}
	r.extractors = append(r.extractors, e)
}

// Extractors returns a snapshot of the registered extractors.
func (r *Registry) Extractors() []Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Extractor(nil), r.extractors...)
}

// Name implements Extractor.
func (r *Registry) Name() string {
	return "registry"
}

// Extract returns the first title produced by a registered extractor.
// Extractors reporting ENOTITLE are skipped; any other error stops the
// search. If nothing applies, Extract returns ENOTITLE.
func (r *Registry) Extract(body []byte) (string, error) {
	for _, e := range r.Extractors() {
		title, err := e.Extract(body)
		if err == nil {
			return title, nil
		}
		if ErrorCode(err) != ENOTITLE {
			return "", err
		}
	}
	return "", NoTitleFound()
}
