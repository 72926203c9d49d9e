package watcher_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/adapters/watcher"
)

type batches struct {
	mu  sync.Mutex
	got [][]string
}

func (b *batches) record(paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, paths)
}

func (b *batches) all() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func TestDebouncer_CoalescesSortedBatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/ws/src/c.cs")
		d.Add("/ws/src/a.cs")
		d.Add("/ws/src/c.cs")
		d.Add("/ws/src/b.cs")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/ws/src/a.cs", "/ws/src/b.cs", "/ws/src/c.cs"}}, b.all())
	})
}

func TestDebouncer_AddRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/ws/a.cs")
		time.Sleep(60 * time.Millisecond)
		d.Add("/ws/b.cs")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all())

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, [][]string{{"/ws/a.cs", "/ws/b.cs"}}, b.all())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Flush()
		assert.Empty(t, b.all(), "nothing pending")

		d.Add("/ws/a.cs")
		d.Flush()
		require.Equal(t, [][]string{{"/ws/a.cs"}}, b.all())

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.all(), 1, "stopped timer does not deliver again")

		d.Add("/ws/b.cs")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		d.Flush()
		assert.Equal(t, [][]string{{"/ws/a.cs"}, {"/ws/b.cs"}}, b.all())
	})
}

func TestDebouncer_CallbacksDoNotOverlap(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var running, maxRunning atomic.Int32
		var b batches
		d := watcher.NewDebouncer(10*time.Millisecond, func(paths []string) {
			n := running.Add(1)
			if n > maxRunning.Load() {
				maxRunning.Store(n)
			}
			time.Sleep(100 * time.Millisecond)
			b.record(paths)
			running.Add(-1)
		})

		d.Add("/ws/a.cs")
		time.Sleep(20 * time.Millisecond)
		d.Add("/ws/b.cs")
		time.Sleep(20 * time.Millisecond)
		d.Flush()

		time.Sleep(300 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, int32(1), maxRunning.Load())
		assert.Equal(t, [][]string{{"/ws/a.cs"}, {"/ws/b.cs"}}, b.all())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)
		d.Add("/ws/a.cs")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
