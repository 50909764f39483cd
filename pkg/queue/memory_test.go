package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_ReadAllMessages(t *testing.T) {
	q := NewInMemoryQueue(4)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue("two"))
	assert.Equal(t, 2, q.Size())

	msgs, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, "two"}, msgs)
	assert.Equal(t, 0, q.Size())

	msgs, err = q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestInMemoryQueue_EnqueueFull(t *testing.T) {
	q := NewInMemoryQueue(1)
	require.NoError(t, q.Enqueue(1))
	assert.ErrorIs(t, q.Enqueue(2), ErrQueueFull)

	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.NoError(t, q.Enqueue(3))
}

func TestInMemoryQueue_concurrentProducers(t *testing.T) {
	q := NewInMemoryQueue(100)
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				assert.NoError(t, q.Enqueue(i*10+j))
			}
		}(i)
	}
	wg.Wait()

	msgs, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Len(t, msgs, 100)
}
