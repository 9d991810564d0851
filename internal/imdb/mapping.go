package imdb

// Mapping records resolved identifiers keyed by corpus key. Iteration order
// is first-insertion order so output files are stable; overwriting a key
// with a later row's identifier keeps the key's original position.
type Mapping[K comparable] struct {
	ids   map[K]string
	order []K
}

// NewMapping creates an empty mapping.
func NewMapping[K comparable]() *Mapping[K] {
	return &Mapping[K]{ids: make(map[K]string)}
}

// Set inserts or overwrites the identifier for key.
func (m *Mapping[K]) Set(key K, id string) {
	if _, ok := m.ids[key]; !ok {
		m.order = append(m.order, key)
	}
	m.ids[key] = id
}

// Get returns the identifier for key.
func (m *Mapping[K]) Get(key K) (string, bool) {
	id, ok := m.ids[key]
	return id, ok
}

// Len returns the number of resolved keys.
func (m *Mapping[K]) Len() int {
	return len(m.ids)
}

// Keys returns the resolved keys in insertion order. The returned slice is
// shared with the mapping and must not be mutated.
func (m *Mapping[K]) Keys() []K {
	return m.order
}
