package datastructure

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMinHeapExtractsInAscendingRankOrder(t *testing.T) {
	for _, d := range []int{2, 4} {
		h := NewdAryHeap[int](d)

		rng := rand.New(rand.NewSource(42))
		ranks := make([]float64, 0, 200)
		for i := 0; i < 200; i++ {
			rank := rng.Float64() * 1000
			ranks = append(ranks, rank)
			h.Insert(NewPriorityQueueNode(rank, i))
		}
		sort.Float64s(ranks)

		for i := 0; i < len(ranks); i++ {
			node, err := h.ExtractMin()
			if err != nil {
				t.Fatalf("d=%d: unexpected error: %v", d, err)
			}
			if node.GetRank() != ranks[i] {
				t.Fatalf("d=%d: extraction %d rank = %v, want %v", d, i, node.GetRank(), ranks[i])
			}
		}
		if !h.IsEmpty() {
			t.Errorf("d=%d: heap not empty after draining", d)
		}
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[string]()

	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(20.0, "b")
	c := NewPriorityQueueNode(30.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	if err := h.DecreaseKey(c, 5.0); err != nil {
		t.Fatalf("DecreaseKey: %v", err)
	}

	first, _ := h.ExtractMin()
	if first.GetItem() != "c" {
		t.Errorf("after DecreaseKey the first extraction = %q, want \"c\"", first.GetItem())
	}

	// raising a key through DecreaseKey must be rejected
	if err := h.DecreaseKey(a, 50.0); err == nil {
		t.Error("DecreaseKey with a larger rank must fail")
	}
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewBinaryHeap[int]()

	if _, err := h.ExtractMin(); err == nil {
		t.Error("ExtractMin on empty heap must fail")
	}
	if _, err := h.GetMin(); err == nil {
		t.Error("GetMin on empty heap must fail")
	}
}

func TestTopKKeepsLowestRanks(t *testing.T) {
	tk := NewTopK[int](3)
	for i, rank := range []float64{9, 1, 8, 2, 7, 3, 6} {
		tk.Push(rank, i)
	}

	items := tk.Items()
	// ranks 1, 2, 3 belong to items 1, 3, 5
	want := []int{1, 3, 5}
	if len(items) != len(want) {
		t.Fatalf("TopK kept %v items, want %v", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("TopK items = %v, want %v", items, want)
		}
	}
}

func TestTopKFewerThanK(t *testing.T) {
	tk := NewTopK[string](10)
	tk.Push(2.0, "b")
	tk.Push(1.0, "a")

	items := tk.Items()
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Errorf("TopK items = %v, want [a b]", items)
	}
}
