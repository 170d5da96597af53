package routingalgorithm_test

import (
	"testing"

	"lintang/hospitalnav/pkg/engine/routingalgorithm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	t.Run("extract in rank order", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[int64]()
		for i, r := range []float64{5, 3, 9, 1, 7, 2} {
			h.Insert(routingalgorithm.PriorityQueueNode[int64]{Rank: r, Item: int64(i)})
		}

		got := []float64{}
		for h.Size() > 0 {
			n, err := h.ExtractMin()
			require.NoError(t, err)
			got = append(got, n.Rank)
		}
		assert.Equal(t, []float64{1, 2, 3, 5, 7, 9}, got)
	})

	t.Run("decrease key moves item to the front", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[int64]()
		h.Insert(routingalgorithm.PriorityQueueNode[int64]{Rank: 10, Item: 1})
		h.Insert(routingalgorithm.PriorityQueueNode[int64]{Rank: 20, Item: 2})
		h.Insert(routingalgorithm.PriorityQueueNode[int64]{Rank: 30, Item: 3})

		require.NoError(t, h.DecreaseKey(routingalgorithm.PriorityQueueNode[int64]{Rank: 5, Item: 3}))
		assert.Error(t, h.DecreaseKey(routingalgorithm.PriorityQueueNode[int64]{Rank: 50, Item: 2}))

		min, err := h.GetMin()
		require.NoError(t, err)
		assert.Equal(t, int64(3), min.Item)
	})

	t.Run("upsert reinserts extracted items", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[int64]()
		h.Insert(routingalgorithm.PriorityQueueNode[int64]{Rank: 1, Item: 7})
		_, err := h.ExtractMin()
		require.NoError(t, err)
		assert.False(t, h.Contains(7))

		h.Upsert(routingalgorithm.PriorityQueueNode[int64]{Rank: 0.5, Item: 7})
		assert.True(t, h.Contains(7))
		assert.Equal(t, 1, h.Size())
	})

	t.Run("empty heap", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[int64]()
		_, err := h.ExtractMin()
		assert.Error(t, err)
	})
}
