package sim

import "iter"

// All returns an iterator over every element, visiting keys in ascending
// order and, within each key, elements in FIFO insertion order. It walks
// the existing buckets directly rather than building a flat snapshot, so
// it stays cheap even when Len() is large.
func (q *QueueMap[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range q.buckets {
			for _, t := range bucket {
				if !yield(t) {
					return
				}
			}
		}
	}
}
