package app_test

import (
	"bytes"
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/adapters/codec"
	"go.trai.ch/replica/internal/adapters/config"
	"go.trai.ch/replica/internal/adapters/daemon"
	"go.trai.ch/replica/internal/adapters/metrics"
	"go.trai.ch/replica/internal/adapters/telemetry"
	"go.trai.ch/replica/internal/app"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/replica/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const manifest = `solution: app
projects:
  - id: core
    directory: core
  - id: web
    directory: web
    references: [core]
`

func writeWorkspace(t *testing.T, root string) {
	t.Helper()
	files := map[string]string{
		"replica.yaml":   manifest,
		"core/A.cs":      "class A {}",
		"core/B.cs":      "class B {}",
		"web/Program.cs": "class Program {}",
	}
	for name, text := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	}
}

type harness struct {
	log       *mocks.MockLogger
	connector *mocks.MockWorkerConnector
	client    *mocks.MockWorkerClient
	publisher *mocks.MockAssetPublisher
	watcher   *mocks.MockWatcher
	loader    *config.Loader
	out       *bytes.Buffer
	app       *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	h := &harness{
		log:       mocks.NewMockLogger(ctrl),
		connector: mocks.NewMockWorkerConnector(ctrl),
		client:    mocks.NewMockWorkerClient(ctrl),
		publisher: mocks.NewMockAssetPublisher(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		out:       &bytes.Buffer{},
	}
	h.log.EXPECT().Info(gomock.Any()).AnyTimes()
	h.log.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.loader = config.NewLoader(h.log)

	c, err := codec.New()
	require.NoError(t, err)
	h.app = app.New(h.loader, h.connector, h.publisher, h.watcher, c,
		telemetry.NewNoOpTracer(), metrics.NewPrometheus(), h.log).
		WithOutput(h.out).
		WithDebounce(10 * time.Millisecond)
	return h
}

// fakeServe stands in for the asset server: it creates the socket file and blocks.
func fakeServe(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

func (h *harness) expectWorker(root string) {
	socket := domain.AssetSocketPath(root)
	h.connector.EXPECT().Connect(gomock.Any(), root).Return(h.client, nil)
	h.publisher.EXPECT().Serve(gomock.Any(), socket).DoAndReturn(fakeServe)
	h.client.EXPECT().Attach(gomock.Any(), socket).Return(nil)
	h.client.EXPECT().Close().Return(nil)
}

func TestApp_PublishOnce(t *testing.T) {
	root := t.TempDir()
	writeWorkspace(t, root)
	h := newHarness(t)

	want, err := h.loader.Load(context.Background(), root)
	require.NoError(t, err)

	h.expectWorker(root)
	h.publisher.EXPECT().Publish(gomock.Any()).Do(func(s *domain.Solution) {
		assert.Equal(t, want.Checksum, s.Checksum)
	})
	h.client.EXPECT().SynchronizePrimary(gomock.Any(), want.Checksum, gomock.Any()).Return(nil)

	require.NoError(t, h.app.Publish(context.Background(), root, app.PublishOptions{Once: true}))
}

func TestApp_PublishLoadError(t *testing.T) {
	h := newHarness(t)
	err := h.app.Publish(context.Background(), t.TempDir(), app.PublishOptions{Once: true})
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_PublishSynchronizeError(t *testing.T) {
	root := t.TempDir()
	writeWorkspace(t, root)
	h := newHarness(t)

	h.expectWorker(root)
	h.publisher.EXPECT().Publish(gomock.Any())
	h.client.EXPECT().SynchronizePrimary(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrDaemonUnavailable)

	err := h.app.Publish(context.Background(), root, app.PublishOptions{Once: true})
	require.ErrorIs(t, err, domain.ErrDaemonUnavailable)
}

func TestApp_PublishWatchesChanges(t *testing.T) {
	root := t.TempDir()
	writeWorkspace(t, root)
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initial, err := h.loader.Load(ctx, root)
	require.NoError(t, err)
	edited, err := initial.WithDocumentText("core/A.cs", &domain.SourceText{Text: "class A { int x; }", Encoding: "utf-8"})
	require.NoError(t, err)

	events := make(chan ports.WatchEvent)
	var seq iter.Seq[ports.WatchEvent] = func(yield func(ports.WatchEvent) bool) {
		for ev := range events {
			if !yield(ev) {
				return
			}
		}
	}

	h.expectWorker(root)
	h.publisher.EXPECT().Publish(gomock.Any()).Times(3)
	h.watcher.EXPECT().Start(gomock.Any(), root).Return(nil)
	h.watcher.EXPECT().Events().Return(seq)
	h.watcher.EXPECT().Stop().Return(nil)

	var mu sync.Mutex
	var versions []int64
	record := func(_ context.Context, _ domain.Checksum, v int64) {
		mu.Lock()
		defer mu.Unlock()
		versions = append(versions, v)
	}
	announced := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(versions)
	}
	var reloaded domain.Checksum
	gomock.InOrder(
		h.client.EXPECT().SynchronizePrimary(gomock.Any(), initial.Checksum, gomock.Any()).Do(record).Return(nil),
		h.client.EXPECT().SynchronizePrimary(gomock.Any(), edited.Checksum, gomock.Any()).Do(record).Return(nil),
		h.client.EXPECT().SynchronizePrimary(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(ctx context.Context, c domain.Checksum, v int64) {
				record(ctx, c, v)
				mu.Lock()
				reloaded = c
				mu.Unlock()
				cancel()
				close(events)
			}).Return(nil),
	)

	send := func(ev ports.WatchEvent) {
		t.Helper()
		select {
		case events <- ev:
		case <-ctx.Done():
			t.Fatal("publish stopped before the event was delivered")
		case <-time.After(5 * time.Second):
			t.Fatal("watch loop is not consuming events")
		}
	}

	done := make(chan error, 1)
	go func() { done <- h.app.Publish(ctx, root, app.PublishOptions{}) }()
	require.Eventually(t, func() bool { return announced() == 1 }, 5*time.Second, 5*time.Millisecond)

	doc := filepath.Join(root, "core", "A.cs")
	require.NoError(t, os.WriteFile(doc, []byte("class A { int x; }"), 0o600))
	send(ports.WatchEvent{Path: doc, Operation: ports.OpWrite})
	send(ports.WatchEvent{Path: doc, Operation: ports.OpWrite})

	require.Eventually(t, func() bool { return announced() == 2 }, 5*time.Second, 5*time.Millisecond)

	added := filepath.Join(root, "core", "C.cs")
	require.NoError(t, os.WriteFile(added, []byte("class C {}"), 0o600))
	send(ports.WatchEvent{Path: added, Operation: ports.OpCreate})

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("publish did not stop")
	}

	want, err := h.loader.Load(context.Background(), root)
	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want.Checksum, reloaded)
	require.Len(t, versions, 3)
	assert.Less(t, versions[0], versions[1])
	assert.Less(t, versions[1], versions[2])
}

func TestApp_Describe(t *testing.T) {
	root := t.TempDir()
	writeWorkspace(t, root)
	h := newHarness(t)

	sol, err := h.loader.Load(context.Background(), root)
	require.NoError(t, err)

	h.expectWorker(root)
	h.publisher.EXPECT().Publish(gomock.Any())
	h.client.EXPECT().Describe(gomock.Any(), sol.Checksum).Return(daemon.Summarize(sol), nil)

	require.NoError(t, h.app.Describe(context.Background(), root, app.DescribeOptions{}))

	out := h.out.String()
	assert.Contains(t, out, "● app solution "+sol.Checksum.String())
	assert.Contains(t, out, "  2 projects, 3 documents\n")
	assert.Contains(t, out, "✓ core")
	assert.Contains(t, out, "→ core")
}

func TestApp_DescribeConeJSON(t *testing.T) {
	root := t.TempDir()
	writeWorkspace(t, root)
	h := newHarness(t)

	sol, err := h.loader.Load(context.Background(), root)
	require.NoError(t, err)
	cone, err := sol.Cone([]domain.ProjectID{"core"})
	require.NoError(t, err)

	h.expectWorker(root)
	h.publisher.EXPECT().Publish(gomock.Any())
	h.client.EXPECT().Describe(gomock.Any(), cone.Checksum).Return(daemon.Summarize(cone), nil)

	require.NoError(t, h.app.Describe(context.Background(), root, app.DescribeOptions{Cone: []string{"core"}, JSON: true}))
	assert.Contains(t, h.out.String(), `"narrowed": true`)
	assert.Contains(t, h.out.String(), `"documents": 2`)
}

func TestApp_DescribeUnknownConeProject(t *testing.T) {
	root := t.TempDir()
	writeWorkspace(t, root)
	h := newHarness(t)

	err := h.app.Describe(context.Background(), root, app.DescribeOptions{Cone: []string{"nope"}})
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestApp_DescribeMismatch(t *testing.T) {
	root := t.TempDir()
	writeWorkspace(t, root)
	h := newHarness(t)

	sol, err := h.loader.Load(context.Background(), root)
	require.NoError(t, err)
	wrong := daemon.Summarize(sol)
	wrong.Checksum++

	h.expectWorker(root)
	h.publisher.EXPECT().Publish(gomock.Any())
	h.client.EXPECT().Describe(gomock.Any(), sol.Checksum).Return(wrong, nil)

	err = h.app.Describe(context.Background(), root, app.DescribeOptions{})
	require.ErrorIs(t, err, domain.ErrChecksumMismatch)
}

func TestApp_Status(t *testing.T) {
	t.Run("not running", func(t *testing.T) {
		h := newHarness(t)
		h.connector.EXPECT().IsRunning("/ws").Return(false)

		require.NoError(t, h.app.Status(context.Background(), "/ws", false))
		assert.Equal(t, "○ worker not running\n", h.out.String())
	})

	t.Run("running", func(t *testing.T) {
		h := newHarness(t)
		h.connector.EXPECT().IsRunning("/ws").Return(true)
		h.connector.EXPECT().Dial("/ws").Return(h.client, nil)
		h.client.EXPECT().Status(gomock.Any()).Return(&ports.DaemonStatus{
			Running:        true,
			PID:            4242,
			Uptime:         90 * time.Second,
			IdleRemaining:  time.Hour,
			Records:        2,
			Primary:        0xab,
			AppliedVersion: 7,
		}, nil)
		h.client.EXPECT().Close().Return(nil)

		require.NoError(t, h.app.Status(context.Background(), "/ws", false))
		out := h.out.String()
		assert.Contains(t, out, "● worker running\n")
		assert.Contains(t, out, "  pid               4242\n")
		assert.Contains(t, out, "  uptime            1m30s\n")
		assert.Contains(t, out, "  primary           00000000000000ab (version 7)\n")
	})

	t.Run("json", func(t *testing.T) {
		h := newHarness(t)
		h.connector.EXPECT().IsRunning("/ws").Return(false)

		require.NoError(t, h.app.Status(context.Background(), "/ws", true))
		assert.JSONEq(t, `{"running": false}`, h.out.String())
	})

	t.Run("json running", func(t *testing.T) {
		h := newHarness(t)
		h.connector.EXPECT().IsRunning("/ws").Return(true)
		h.connector.EXPECT().Dial("/ws").Return(h.client, nil)
		h.client.EXPECT().Status(gomock.Any()).Return(&ports.DaemonStatus{
			Running:        true,
			PID:            4242,
			Records:        2,
			Primary:        0xab,
			AppliedVersion: 7,
		}, nil)
		h.client.EXPECT().Close().Return(nil)

		require.NoError(t, h.app.Status(context.Background(), "/ws", true))
		var got map[string]any
		require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
		assert.Equal(t, true, got["running"])
		assert.EqualValues(t, 4242, got["pid"])
		assert.EqualValues(t, 2, got["records"])
		assert.EqualValues(t, 0xab, got["primary"])
		assert.EqualValues(t, 7, got["applied_version"])
	})
}

func TestApp_Stop(t *testing.T) {
	t.Run("running", func(t *testing.T) {
		h := newHarness(t)
		h.connector.EXPECT().IsRunning("/ws").Return(true)
		h.connector.EXPECT().Dial("/ws").Return(h.client, nil)
		h.client.EXPECT().Shutdown(gomock.Any()).Return(nil)
		h.client.EXPECT().Close().Return(nil)

		require.NoError(t, h.app.Stop(context.Background(), "/ws"))
	})

	t.Run("not running", func(t *testing.T) {
		h := newHarness(t)
		h.connector.EXPECT().IsRunning("/ws").Return(false)

		require.NoError(t, h.app.Stop(context.Background(), "/ws"))
	})
}

func TestApp_ServeRejectsTuning(t *testing.T) {
	h := newHarness(t)
	tuning := domain.DefaultTuning()
	tuning.IdleTimeout = 0

	err := h.app.Serve(context.Background(), t.TempDir(), app.ServeOptions{Tuning: tuning})
	require.ErrorIs(t, err, domain.ErrInvalidTuning)
}
