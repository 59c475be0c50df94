package sim

import "cmp"

// QueueMap is an ordered mapping from a key K to a non-empty FIFO queue
// of elements T, ordered ascending by K. No empty bucket is ever
// observable: a bucket is removed the instant its last element leaves.
//
// The timer store keys QueueMap by the picosecond count of a timer's
// NextCall (an int64), rather than by SimDuration itself, since
// SimDuration's total order is defined solely by that count and Go's
// comparison operators — which the cmp.Ordered constraint below
// requires — only apply to basic types, not structs.
type QueueMap[K cmp.Ordered, T interface {
	comparable
	Indexable[K]
}] struct {
	keys    []K
	buckets [][]T
	count   int
}

// NewQueueMap constructs an empty QueueMap.
func NewQueueMap[K cmp.Ordered, T interface {
	comparable
	Indexable[K]
}]() *QueueMap[K, T] {
	return &QueueMap[K, T]{}
}

// Len returns the total number of elements across all buckets.
func (q *QueueMap[K, T]) Len() int { return q.count }

// IsEmpty reports whether the QueueMap holds no elements.
func (q *QueueMap[K, T]) IsEmpty() bool { return q.count == 0 }

// IsNotEmpty reports whether the QueueMap holds at least one element.
func (q *QueueMap[K, T]) IsNotEmpty() bool { return q.count > 0 }

// search returns the index of k within q.keys and whether it was found
// exactly. When not found, the index is the position k would occupy to
// keep q.keys sorted ascending.
func (q *QueueMap[K, T]) search(k K) (int, bool) {
	lo, hi := 0, len(q.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if q.keys[mid] < k {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(q.keys) && q.keys[lo] == k {
		return lo, true
	}
	return lo, false
}

// Add inserts t into the bucket for t.Index(), creating the bucket if
// absent.
func (q *QueueMap[K, T]) Add(t T) {
	k := t.Index()
	i, found := q.search(k)
	if found {
		q.buckets[i] = append(q.buckets[i], t)
		q.count++
		return
	}
	q.keys = append(q.keys, k)
	copy(q.keys[i+1:], q.keys[i:])
	q.keys[i] = k

	q.buckets = append(q.buckets, nil)
	copy(q.buckets[i+1:], q.buckets[i:])
	q.buckets[i] = []T{t}
	q.count++
}

// AddQueueMap appends every element of other, in other's iteration
// order. Within an already-present key, existing bucket contents stay
// first, followed by other's contents for that key.
func (q *QueueMap[K, T]) AddQueueMap(other *QueueMap[K, T]) {
	for t := range other.All() {
		q.Add(t)
	}
}

// removeBucketAt drops the key/bucket pair at index i.
func (q *QueueMap[K, T]) removeBucketAt(i int) {
	q.keys = append(q.keys[:i], q.keys[i+1:]...)
	q.buckets = append(q.buckets[:i], q.buckets[i+1:]...)
}

// RemoveFirst removes and returns the head of the smallest-key bucket.
func (q *QueueMap[K, T]) RemoveFirst() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	t := q.buckets[0][0]
	q.buckets[0] = q.buckets[0][1:]
	q.count--
	if len(q.buckets[0]) == 0 {
		q.removeBucketAt(0)
	}
	return t, true
}

// First returns the head of the smallest-key bucket without removing it.
func (q *QueueMap[K, T]) First() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	return q.buckets[0][0], true
}

// FirstKey returns the smallest key currently present.
func (q *QueueMap[K, T]) FirstKey() (K, bool) {
	var zero K
	if len(q.keys) == 0 {
		return zero, false
	}
	return q.keys[0], true
}

// FirstQueue returns the smallest-key bucket in FIFO order, without
// removing it. Callers must not mutate the returned slice.
func (q *QueueMap[K, T]) FirstQueue() ([]T, bool) {
	if q.count == 0 {
		return nil, false
	}
	return q.buckets[0], true
}

// RemoveFirstQueue detaches and returns the entire smallest-key bucket;
// its key is removed from the map.
func (q *QueueMap[K, T]) RemoveFirstQueue() ([]T, bool) {
	if q.count == 0 {
		return nil, false
	}
	bucket := q.buckets[0]
	q.count -= len(bucket)
	q.removeBucketAt(0)
	return bucket, true
}

// RemoveWhere drops every element matching pred across all buckets,
// removing any bucket that becomes empty, and returns the removed
// elements in ascending-key, FIFO-within-key order.
func (q *QueueMap[K, T]) RemoveWhere(pred func(T) bool) []T {
	var removed []T
	for i := 0; i < len(q.buckets); {
		bucket := q.buckets[i]
		kept := bucket[:0]
		for _, t := range bucket {
			if pred(t) {
				removed = append(removed, t)
			} else {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			q.removeBucketAt(i)
			continue
		}
		q.buckets[i] = kept
		i++
	}
	q.count -= len(removed)
	return removed
}

// Remove drops the first occurrence of t (by == equality), scanning t's
// own bucket only. Reports whether anything was removed.
func (q *QueueMap[K, T]) Remove(t T) bool {
	i, found := q.search(t.Index())
	if !found {
		return false
	}
	bucket := q.buckets[i]
	for j, v := range bucket {
		if v == t {
			bucket = append(bucket[:j], bucket[j+1:]...)
			q.count--
			if len(bucket) == 0 {
				q.removeBucketAt(i)
			} else {
				q.buckets[i] = bucket
			}
			return true
		}
	}
	return false
}
