// Package queue provides a small value-based binary heap used to keep the
// best k candidates during nearest-neighbor scans.
package queue

// Item is one heap entry: a star slot in the catalog and the cosine of its
// angle to the query direction. Larger cosine means smaller angle.
type Item struct {
	Slot uint32
	Cos  float64
}

// Queue is a binary heap of Items ordered by Cos. A min-queue surfaces the
// worst candidate at the top, which is the shape a bounded best-k scan
// wants: compare the incoming candidate against the top and replace it when
// better.
type Queue struct {
	max   bool
	items []Item
}

// NewMin returns a queue whose top is the smallest cosine.
func NewMin(capacity int) *Queue {
	return &Queue{
		max:   false,
		items: make([]Item, 0, capacity),
	}
}

// NewMax returns a queue whose top is the largest cosine.
func NewMax(capacity int) *Queue {
	return &Queue{
		max:   true,
		items: make([]Item, 0, capacity),
	}
}

// Len returns the number of queued items.
func (q *Queue) Len() int { return len(q.items) }

// Top returns the top item without removing it.
func (q *Queue) Top() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// Push inserts an item, maintaining the heap invariant.
func (q *Queue) Push(it Item) {
	q.items = append(q.items, it)
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the top item.
func (q *Queue) Pop() (Item, bool) {
	n := len(q.items)
	if n == 0 {
		return Item{}, false
	}
	root := q.items[0]
	last := q.items[n-1]
	q.items[n-1] = Item{}
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root, true
}

// Reset empties the queue, keeping its backing storage for reuse.
func (q *Queue) Reset() {
	q.items = q.items[:0]
}

// less orders by Cos, breaking exact ties by Slot so heap contents (and
// therefore bounded best-k results) are deterministic. For a min-queue the
// larger slot of two equal cosines sits nearer the top and is evicted
// first, so the earliest-scanned candidate survives.
func (q *Queue) less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.Cos != b.Cos {
		if q.max {
			return a.Cos > b.Cos
		}
		return a.Cos < b.Cos
	}
	if q.max {
		return a.Slot < b.Slot
	}
	return a.Slot > b.Slot
}

func (q *Queue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *Queue) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
