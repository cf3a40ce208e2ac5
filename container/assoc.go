package container

// Map is a string-keyed associative store backed by an open-addressed
// table with linear probing, rehashed into a larger table as it fills.
// The reference HashMap used a positional byte-sum hash into a fixed table with no collision handling;
// per spec §9's explicit instruction, this implementation resolves
// collisions by probing instead of overwriting.
type Map[T any] struct {
	keys     []string
	values   []T
	occupied []bool
	count    int
}

// NewMap creates a map with the given initial table capacity. Capacity grows
// (rehash into a larger table) only when Set would otherwise exceed a 0.75
// load factor, keeping probe sequences short.
func NewMap[T any](capacity int) *Map[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Map[T]{
		keys:     make([]string, capacity),
		values:   make([]T, capacity),
		occupied: make([]bool, capacity),
	}
}

// hash is a positional sum over key bytes mod capacity, matching the
// reference implementation's hash function.
func hash(key string, capacity int) int {
	var sum uint64
	for i := 0; i < len(key); i++ {
		sum += uint64(key[i]) * uint64(i+1)
	}
	return int(sum % uint64(capacity))
}

func (m *Map[T]) probe(key string) (slot int, found bool) {
	cap := len(m.keys)
	start := hash(key, cap)
	for i := 0; i < cap; i++ {
		slot = (start + i) % cap
		if !m.occupied[slot] {
			return slot, false
		}
		if m.keys[slot] == key {
			return slot, true
		}
	}
	return -1, false
}

// Set inserts or overwrites the value for key.
func (m *Map[T]) Set(key string, value T) {
	if float64(m.count+1)/float64(len(m.keys)) > 0.75 {
		m.rehash(len(m.keys) * 2)
	}
	slot, _ := m.probe(key)
	if !m.occupied[slot] {
		m.count++
	}
	m.keys[slot] = key
	m.values[slot] = value
	m.occupied[slot] = true
}

// Get looks up key, returning the value and whether it was present.
func (m *Map[T]) Get(key string) (T, bool) {
	slot, found := m.probe(key)
	if !found {
		var zero T
		return zero, false
	}
	return m.values[slot], true
}

// Delete removes key if present, closing the probe chain by re-inserting
// every entry that followed it in its own probe sequence.
func (m *Map[T]) Delete(key string) {
	slot, found := m.probe(key)
	if !found {
		return
	}
	m.occupied[slot] = false
	var zeroT T
	m.values[slot] = zeroT
	m.keys[slot] = ""
	m.count--

	cap := len(m.keys)
	next := (slot + 1) % cap
	for m.occupied[next] {
		k, v := m.keys[next], m.values[next]
		m.occupied[next] = false
		m.count--
		m.Set(k, v)
		next = (next + 1) % cap
	}
}

// Count returns the number of live entries.
func (m *Map[T]) Count() int {
	return m.count
}

func (m *Map[T]) rehash(newCapacity int) {
	old := *m
	*m = *NewMap[T](newCapacity)
	for i, occ := range old.occupied {
		if occ {
			m.Set(old.keys[i], old.values[i])
		}
	}
}
