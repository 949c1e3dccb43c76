package scheduler

import (
	"container/heap"
	"time"
)

// queueItem is one ready task in the priority structure.
type queueItem struct {
	TaskID    string
	Score     float64
	CreatedAt time.Time
}

// readyQueue orders items by (−score, created_at, id): highest score first,
// ties broken by age then lexicographic id, so ordering is deterministic.
type readyQueue []queueItem

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].Score != q[j].Score {
		return q[i].Score > q[j].Score
	}
	if !q[i].CreatedAt.Equal(q[j].CreatedAt) {
		return q[i].CreatedAt.Before(q[j].CreatedAt)
	}
	return q[i].TaskID < q[j].TaskID
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// newReadyQueue heapifies the given items.
func newReadyQueue(items []queueItem) *readyQueue {
	q := readyQueue(items)
	heap.Init(&q)
	return &q
}

// popNext removes and returns the head, or false when empty.
func (q *readyQueue) popNext() (queueItem, bool) {
	if q.Len() == 0 {
		return queueItem{}, false
	}
	return heap.Pop(q).(queueItem), true
}
