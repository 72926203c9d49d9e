package app_test

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/adapters/codec"
	"go.trai.ch/replica/internal/adapters/config"
	"go.trai.ch/replica/internal/adapters/daemon"
	"go.trai.ch/replica/internal/adapters/metrics"
	"go.trai.ch/replica/internal/adapters/source"
	"go.trai.ch/replica/internal/adapters/telemetry"
	"go.trai.ch/replica/internal/app"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/replica/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// TestEndToEnd runs a real worker and publishes a workspace to it over unix sockets.
func TestEndToEnd(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Socket paths are length limited, so stay out of the long test temp dir.
	root, err := os.MkdirTemp("", "rp")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(root) })
	writeWorkspace(t, root)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	dial := func(root string) (ports.WorkerClient, error) { return daemon.Dial(root) }
	connector := mocks.NewMockWorkerConnector(ctrl)
	connector.EXPECT().Connect(gomock.Any(), root).
		DoAndReturn(func(_ context.Context, root string) (ports.WorkerClient, error) { return dial(root) }).
		AnyTimes()
	connector.EXPECT().Dial(root).DoAndReturn(dial).AnyTimes()
	connector.EXPECT().IsRunning(root).Return(true).AnyTimes()

	c, err := codec.New()
	require.NoError(t, err)
	var out bytes.Buffer
	a := app.New(config.NewLoader(log), connector, source.NewPublisher(c, log), mocks.NewMockWatcher(ctrl), c,
		telemetry.NewOTelTracer(telemetry.InstrumentationName), metrics.NewPrometheus(), log).
		WithOutput(&out)

	served := make(chan error, 1)
	go func() {
		served <- a.Serve(context.Background(), root, app.ServeOptions{Tuning: domain.DefaultTuning()})
	}()
	require.Eventually(t, func() bool {
		client, err := daemon.Dial(root)
		if err != nil {
			return false
		}
		defer func() { _ = client.Close() }()
		return client.Ping(context.Background()) == nil
	}, 5*time.Second, 20*time.Millisecond)

	ctx := context.Background()
	require.NoError(t, a.Publish(ctx, root, app.PublishOptions{Once: true}))

	require.NoError(t, a.Describe(ctx, root, app.DescribeOptions{}))
	assert.Contains(t, out.String(), "  2 projects, 3 documents\n")
	out.Reset()

	require.NoError(t, a.Describe(ctx, root, app.DescribeOptions{Cone: []string{"web"}}))
	assert.Contains(t, out.String(), " cone ")
	assert.Contains(t, out.String(), "  1 projects, 1 documents\n")
	out.Reset()

	require.NoError(t, a.Status(ctx, root, false))
	assert.Contains(t, out.String(), "● worker running\n")
	assert.Contains(t, out.String(), "(version ")

	require.NoError(t, a.Stop(ctx, root))
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.NoFileExists(t, domain.WorkerSocketPath(root))
}
