// Package hashtable provides a fixed-size, separately chained hash table keyed
// by unsigned integers.
//
// The table owns every stored value until it is handed back to the caller by
// Insert (a displaced value) or Remove. Values the table drops on its own
// (Delete, Destroy) are passed to the release hook, if one was configured.
package hashtable

// HashFunc maps a key to a bucket index. The result is reduced modulo the
// bucket count, so functions that already return values in [0, buckets) are
// used unchanged.
type HashFunc func(key uint32) uint32

// Option configures a Table at construction time.
type Option[V any] func(*Table[V])

// WithRelease sets a hook that receives every value the table releases itself.
func WithRelease[V any](fn func(key uint32, value V)) Option[V] {
	return func(t *Table[V]) {
		t.release = fn
	}
}

// entry is a chain node.
type entry[V any] struct {
	key   uint32
	value V
	next  *entry[V]
}

// Table is a chained hash table with a bucket count fixed at construction.
// It is not safe for concurrent use.
type Table[V any] struct {
	buckets []*entry[V]
	hash    HashFunc
	size    int
	release func(key uint32, value V)
}

// New creates a table with the given number of buckets. It panics if
// buckets is zero or hash is nil.
func New[V any](buckets uint32, hash HashFunc, opts ...Option[V]) *Table[V] {
	if buckets == 0 {
		panic("hashtable: table has to contain at least 1 bucket")
	}
	if hash == nil {
		panic("hashtable: nil hash function")
	}

	t := &Table[V]{
		buckets: make([]*entry[V], buckets),
		hash:    hash,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Buckets returns the bucket count.
func (t *Table[V]) Buckets() int {
	return len(t.buckets)
}

// Len returns the number of stored keys.
func (t *Table[V]) Len() int {
	return t.size
}

func (t *Table[V]) bucket(key uint32) uint32 {
	return t.hash(key) % uint32(len(t.buckets))
}

func (t *Table[V]) find(key uint32) *entry[V] {
	for e := t.buckets[t.bucket(key)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// Insert stores value under key. If the key was already present its value is
// swapped in place and the previous value is returned with replaced == true;
// ownership of that value passes to the caller. New keys are pushed to the
// head of their chain.
func (t *Table[V]) Insert(key uint32, value V) (old V, replaced bool) {
	if e := t.find(key); e != nil {
		old, e.value = e.value, value
		return old, true
	}

	b := t.bucket(key)
	t.buckets[b] = &entry[V]{key: key, value: value, next: t.buckets[b]}
	t.size++
	return old, false
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key uint32) (V, bool) {
	if e := t.find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (t *Table[V]) Has(key uint32) bool {
	return t.find(key) != nil
}

// Remove unlinks key from its chain and returns its value. The value is not
// released; ownership passes to the caller.
func (t *Table[V]) Remove(key uint32) (V, bool) {
	var zero V

	b := t.bucket(key)
	head := t.buckets[b]
	if head == nil {
		return zero, false
	}

	if head.key == key {
		t.buckets[b] = head.next
		t.size--
		return head.value, true
	}

	for prev := head; prev.next != nil; prev = prev.next {
		if e := prev.next; e.key == key {
			prev.next = e.next
			t.size--
			return e.value, true
		}
	}
	return zero, false
}

// Delete removes key and releases its value. Deleting an absent key is a no-op.
func (t *Table[V]) Delete(key uint32) {
	if v, ok := t.Remove(key); ok {
		t.drop(key, v)
	}
}

// Destroy releases every entry in every chain and leaves the table empty.
// Calling it again, or on an empty table, does nothing.
func (t *Table[V]) Destroy() {
	for i, e := range t.buckets {
		for e != nil {
			next := e.next
			t.drop(e.key, e.value)
			e.next = nil
			e = next
		}
		t.buckets[i] = nil
	}
	t.size = 0
}

func (t *Table[V]) drop(key uint32, v V) {
	if t.release != nil {
		t.release(key, v)
	}
}

// Each calls fn for every entry, bucket by bucket and head to tail within a
// chain. fn must not mutate the table.
func (t *Table[V]) Each(fn func(key uint32, value V)) {
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			fn(e.key, e.value)
		}
	}
}

// Stats summarises bucket usage.
type Stats struct {
	Buckets      int
	Entries      int
	UsedBuckets  int
	LongestChain int
	LoadFactor   float64
}

// Stats walks every chain and reports occupancy figures.
func (t *Table[V]) Stats() Stats {
	s := Stats{Buckets: len(t.buckets), Entries: t.size}
	for _, e := range t.buckets {
		n := 0
		for ; e != nil; e = e.next {
			n++
		}
		if n > 0 {
			s.UsedBuckets++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	return s
}
