package automaton

// Hashable is a key with structural equality. Equal keys must return the same Hash.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a separate-chaining hash table keyed by Hashable values. It keys state subsets and partition
// blocks by content rather than by identity. It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets    []*Entry[T]
	mask       uint64
	size       int
	loadFactor float64
}

// Entry is one key/value pair of a HashMap.
type Entry[T any] struct {
	key   Hashable
	value T
	next  *Entry[T]
}

type optionsHashMap struct {
	capacity int
}

func newOptionsHashMap(opts ...OptionsHashMap) *optionsHashMap {
	options := &optionsHashMap{
		capacity: 1,
	}

	for _, opt := range opts {
		opt(options)
	}

	// Bucket count is always a power of two so the hash can be masked.
	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}
	options.capacity = realCap

	return options
}

type OptionsHashMap func(hashMap *optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

// NewHashMap creates an empty map. The initial capacity is rounded up to a power of two.
func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := newOptionsHashMap(options...)

	return &HashMap[T]{
		buckets:    make([]*Entry[T], opt.capacity),
		mask:       uint64(opt.capacity - 1),
		loadFactor: 0.75,
	}
}

func (m *HashMap[T]) find(key Hashable) *Entry[T] {
	for e := m.buckets[key.Hash()&m.mask]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	if e := m.find(key); e != nil {
		e.value = value
		return
	}

	index := key.Hash() & m.mask
	m.buckets[index] = &Entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// Get returns the value stored under key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// Contains reports whether key is present.
func (m *HashMap[T]) Contains(key Hashable) bool {
	return m.find(key) != nil
}

// resize doubles the bucket array and rehashes every entry in place.
func (m *HashMap[T]) resize() {
	old := m.buckets
	newCap := len(old) << 1
	m.buckets = make([]*Entry[T], newCap)
	m.mask = uint64(newCap - 1)

	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			index := e.key.Hash() & m.mask
			e.next = m.buckets[index]
			m.buckets[index] = e
			e = next
		}
	}
}

// Size returns the number of entries.
func (m *HashMap[T]) Size() int {
	return m.size
}
