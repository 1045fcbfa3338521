package listener_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krisalay/lfu-cache/listener"
)

var (
	_ listener.Listener[string, int] = listener.Func[string, int](nil)
	_ listener.Listener[string, int] = (*listener.Async[string, int])(nil)
)

func TestFuncCallsThrough(t *testing.T) {
	var got []string
	l := listener.Func[string, int](func(k string, v int) {
		got = append(got, k)
	})

	l.OnEvict("a", 1)
	l.OnEvict("b", 2)
	l.Close()

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestAsyncDeliversInOrder(t *testing.T) {
	var mu sync.Mutex
	var got []int
	l := listener.NewAsync(func(k, v int) {
		mu.Lock()
		got = append(got, k*10+v)
		mu.Unlock()
	}, 8)

	for i := 0; i < 5; i++ {
		l.OnEvict(i, i)
	}
	l.Close()

	assert.Equal(t, []int{0, 11, 22, 33, 44}, got)
	assert.Zero(t, l.Dropped())
}

func TestAsyncDropsWhenFull(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var delivered []string

	l := listener.NewAsync(func(k string, _ int) {
		if k == "first" {
			close(started)
			<-release
		}
		delivered = append(delivered, k)
	}, 1)

	l.OnEvict("first", 1)
	<-started // worker is busy with "first"

	l.OnEvict("second", 2) // fills the buffer
	l.OnEvict("third", 3)  // dropped

	close(release)
	l.Close()

	assert.Equal(t, int64(1), l.Dropped())
	assert.Equal(t, []string{"first", "second"}, delivered)
}

func TestAsyncCloseTwice(t *testing.T) {
	l := listener.NewAsync(func(string, int) {}, 1)
	l.Close()
	assert.NotPanics(t, l.Close)
}
