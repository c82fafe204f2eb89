package shutdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"multires-spline/internal/logger"
)

func TestShutdownRunsHooksInReverse(t *testing.T) {
	m := NewManager(context.Background(), logger.NopLogger{})

	var mu sync.Mutex
	var order []string
	for _, name := range []string{"first", "second", "third"} {
		m.Register(name, func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		})
	}

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"third", "second", "first"}, order)
	assert.ErrorIs(t, m.Context().Err(), context.Canceled)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownHookTimeout(t *testing.T) {
	m := NewManager(context.Background(), nil)
	m.SetHookTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	ran := false
	m.Register("fast", func() { ran = true })
	m.Register("stuck", func() { <-release })

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	m := NewManager(parent, logger.NopLogger{})
	cancel()
	assert.ErrorIs(t, m.Context().Err(), context.Canceled)
}
