package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/adapters/watcher"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/replica/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsDocumentChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".replica"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "obj"), 0o750))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
	require.NoError(t, w.Start(ctx, root))

	var mu sync.Mutex
	seen := map[string]ports.WatchOp{}
	go func() {
		for ev := range w.Events() {
			mu.Lock()
			seen[ev.Path] = ev.Operation
			mu.Unlock()
		}
	}()

	doc := filepath.Join(root, "src", "A.cs")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".replica", "worker.pid"), []byte("1"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "obj", "Gen.cs"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(doc, []byte("class A {}"), 0o600))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		_, ok := seen[doc]
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	nested := filepath.Join(root, "src", "nested")
	require.NoError(t, os.Mkdir(nested, 0o750))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen[nested] == ports.OpCreate
	}, 5*time.Second, 10*time.Millisecond)

	inner := filepath.Join(nested, "B.cs")
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(inner, []byte("class B {}"), 0o600)
		mu.Lock()
		defer mu.Unlock()
		_, ok := seen[inner]
		return ok
	}, 5*time.Second, 50*time.Millisecond, "new directories are watched")

	mu.Lock()
	defer mu.Unlock()
	assert.NotContains(t, seen, filepath.Join(root, ".replica", "worker.pid"))
	assert.NotContains(t, seen, filepath.Join(root, "src", "obj", "Gen.cs"))
}
