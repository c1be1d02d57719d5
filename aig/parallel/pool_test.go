package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_RunsAllSubmittedTasks(t *testing.T) {
	p := New(4)
	var count int64
	const n = 200
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		p.Submit(func() {
			atomic.AddInt64(&count, 1)
			done <- struct{}{}
		})
	}
	for i := 0; i < n; i++ {
		<-done
	}
	p.Close()
	assert.EqualValues(t, n, count)
}

func TestPool_DefaultsWorkersWhenNonPositive(t *testing.T) {
	p := New(0)
	defer p.Close()
	assert.NotNil(t, p.tasks)
}

func TestMap_PreservesInputOrder(t *testing.T) {
	p := New(4)
	defer p.Close()

	in := []int{0, 1, 2, 3, 4, 5, 6, 7}
	out := Map(p, in, func(x int) int { return x * x })
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49}, out)
}
