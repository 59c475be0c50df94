package sim

import (
	"testing"
)

// indexedInt is a minimal Indexable[int64] used to exercise QueueMap
// independent of SimTimer.
type indexedInt struct {
	key int64
	val int
}

func (e indexedInt) Index() int64 { return e.key }

func TestQueueMap_EmptyAtConstruction(t *testing.T) {
	q := NewQueueMap[int64, indexedInt]()
	if !q.IsEmpty() || q.IsNotEmpty() || q.Len() != 0 {
		t.Errorf("new QueueMap should be empty")
	}
	if _, ok := q.First(); ok {
		t.Errorf("First on empty QueueMap should report not-found")
	}
}

func TestQueueMap_AscendingKeyFIFOIteration(t *testing.T) {
	// GIVEN values 3,6,4,7,5,8 inserted alternately under keys 0 and 10,
	// so key 0 receives 3,4,5 and key 10 receives 6,7,8, each in that
	// insertion (FIFO) order.
	q := NewQueueMap[int64, indexedInt]()
	inserts := []indexedInt{
		{key: 0, val: 3}, {key: 10, val: 6},
		{key: 0, val: 4}, {key: 10, val: 7},
		{key: 0, val: 5}, {key: 10, val: 8},
	}
	for _, e := range inserts {
		q.Add(e)
	}

	// THEN FirstKey reports the smallest key present
	firstKey, ok := q.FirstKey()
	if !ok || firstKey != 0 {
		t.Fatalf("FirstKey: got (%d, %t), want (0, true)", firstKey, ok)
	}

	// AND iterating visits keys in ascending order, FIFO within each key
	var gotVals []int
	for e := range q.All() {
		gotVals = append(gotVals, e.val)
	}
	wantVals := []int{3, 4, 5, 6, 7, 8}
	if len(gotVals) != len(wantVals) {
		t.Fatalf("iterated %d values, want %d", len(gotVals), len(wantVals))
	}
	for i := range wantVals {
		if gotVals[i] != wantVals[i] {
			t.Errorf("value[%d]: got %d, want %d", i, gotVals[i], wantVals[i])
		}
	}

	// AND RemoveFirstQueue detaches the whole smallest-key bucket in FIFO
	// order, leaving the next key first
	bucket, ok := q.RemoveFirstQueue()
	if !ok || len(bucket) != 3 || bucket[0].val != 3 || bucket[1].val != 4 || bucket[2].val != 5 {
		t.Errorf("RemoveFirstQueue: got (%v, %t), want ([3 4 5], true)", bucket, ok)
	}
	firstKey, ok = q.FirstKey()
	if !ok || firstKey != 10 {
		t.Errorf("FirstKey after RemoveFirstQueue: got (%d, %t), want (10, true)", firstKey, ok)
	}
}

func TestQueueMap_SameKey_PreservesInsertionOrder(t *testing.T) {
	q := NewQueueMap[int64, indexedInt]()
	q.Add(indexedInt{key: 1, val: 10})
	q.Add(indexedInt{key: 1, val: 20})
	q.Add(indexedInt{key: 1, val: 30})

	bucket, ok := q.FirstQueue()
	if !ok {
		t.Fatalf("expected a bucket at key 1")
	}
	want := []int{10, 20, 30}
	if len(bucket) != len(want) {
		t.Fatalf("bucket length: got %d, want %d", len(bucket), len(want))
	}
	for i, w := range want {
		if bucket[i].val != w {
			t.Errorf("bucket[%d]: got %d, want %d", i, bucket[i].val, w)
		}
	}
}

func TestQueueMap_RemoveFirst_DrainsThenRemovesEmptyBucket(t *testing.T) {
	q := NewQueueMap[int64, indexedInt]()
	q.Add(indexedInt{key: 1, val: 1})
	q.Add(indexedInt{key: 2, val: 2})

	first, ok := q.RemoveFirst()
	if !ok || first.val != 1 {
		t.Fatalf("RemoveFirst: got (%v, %t), want (val=1, true)", first, ok)
	}
	if q.Len() != 1 {
		t.Errorf("Len after RemoveFirst: got %d, want 1", q.Len())
	}
	firstKey, _ := q.FirstKey()
	if firstKey != 2 {
		t.Errorf("remaining key: got %d, want 2", firstKey)
	}
}

func TestQueueMap_RemoveWhere_FiltersAcrossBuckets(t *testing.T) {
	q := NewQueueMap[int64, indexedInt]()
	q.Add(indexedInt{key: 1, val: 1})
	q.Add(indexedInt{key: 1, val: 2})
	q.Add(indexedInt{key: 2, val: 3})

	removed := q.RemoveWhere(func(e indexedInt) bool { return e.val%2 == 0 })
	if len(removed) != 1 || removed[0].val != 2 {
		t.Fatalf("RemoveWhere: got %v, want one element with val=2", removed)
	}
	if q.Len() != 2 {
		t.Errorf("Len after RemoveWhere: got %d, want 2", q.Len())
	}

	// bucket at key 1 should still exist with just val=1
	bucket, ok := q.FirstQueue()
	if !ok || len(bucket) != 1 || bucket[0].val != 1 {
		t.Errorf("bucket at key 1 after RemoveWhere: got %v", bucket)
	}
}

func TestQueueMap_Remove_DropsBucketWhenLastElementLeaves(t *testing.T) {
	q := NewQueueMap[int64, indexedInt]()
	e := indexedInt{key: 5, val: 1}
	q.Add(e)

	if !q.Remove(e) {
		t.Fatalf("Remove: expected true for present element")
	}
	if !q.IsEmpty() {
		t.Errorf("QueueMap should be empty after removing its only element")
	}
	if q.Remove(e) {
		t.Errorf("Remove of already-removed element should return false")
	}
}

func TestQueueMap_AddQueueMap_AppendsInIterationOrder(t *testing.T) {
	a := NewQueueMap[int64, indexedInt]()
	a.Add(indexedInt{key: 1, val: 1})

	b := NewQueueMap[int64, indexedInt]()
	b.Add(indexedInt{key: 1, val: 2})
	b.Add(indexedInt{key: 2, val: 3})

	a.AddQueueMap(b)

	bucket, _ := a.FirstQueue()
	if len(bucket) != 2 || bucket[0].val != 1 || bucket[1].val != 2 {
		t.Errorf("merged bucket at key 1: got %v, want [1, 2]", bucket)
	}
	if a.Len() != 3 {
		t.Errorf("Len after merge: got %d, want 3", a.Len())
	}
}
