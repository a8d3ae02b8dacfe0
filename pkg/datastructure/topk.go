package datastructure

import "sort"

// TopK keeps the k items with the lowest rank seen so far, without sorting
// the full candidate stream. Internally a bounded max-heap: ranks are negated
// on the MinHeap so the current worst kept item sits at the root.
type TopK[T comparable] struct {
	k    int
	heap *MinHeap[T]
}

func NewTopK[T comparable](k int) *TopK[T] {
	h := NewBinaryHeap[T]()
	h.Preallocate(k + 1)
	return &TopK[T]{k: k, heap: h}
}

// Push offers an item with its rank. When the structure already holds k items
// the worst one is evicted if the new rank is strictly better.
func (t *TopK[T]) Push(rank float64, item T) {
	if t.k <= 0 {
		return
	}

	if t.heap.Size() < t.k {
		t.heap.Insert(NewPriorityQueueNode(-rank, item))
		return
	}

	worst, _ := t.heap.GetMin()
	if rank >= -worst.GetRank() {
		return
	}
	_, _ = t.heap.ExtractMin()
	t.heap.Insert(NewPriorityQueueNode(-rank, item))
}

func (t *TopK[T]) Size() int {
	return t.heap.Size()
}

// WorstRank returns the highest kept rank, or +inf when empty.
func (t *TopK[T]) WorstRank() float64 {
	worst, err := t.heap.GetMin()
	if err != nil {
		return t.heap.GetMinrank()
	}
	return -worst.GetRank()
}

// Items drains the structure and returns items ordered by ascending rank.
func (t *TopK[T]) Items() []T {
	type ranked struct {
		rank float64
		item T
	}
	drained := make([]ranked, 0, t.heap.Size())
	for !t.heap.IsEmpty() {
		node, _ := t.heap.ExtractMin()
		drained = append(drained, ranked{rank: -node.GetRank(), item: node.GetItem()})
	}
	sort.SliceStable(drained, func(i, j int) bool {
		return drained[i].rank < drained[j].rank
	})

	items := make([]T, len(drained))
	for i, r := range drained {
		items[i] = r.item
	}
	return items
}
