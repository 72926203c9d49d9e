package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/adapters/telemetry"
	"go.trai.ch/replica/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestSetup_ExportsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).Times(1)

	var buf bytes.Buffer
	shutdown, err := telemetry.Setup(&buf, logger)
	require.NoError(t, err)

	_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "snapshot.build")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"snapshot.build"`)
}

func TestSetup_LogsFailedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	var logged string
	logger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { logged = msg }).Times(1)

	shutdown, err := telemetry.Setup(nil, logger)
	require.NoError(t, err)

	_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "assets.fetch")
	span.RecordError(errors.New("unreachable"))
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, logged, "span assets.fetch failed")
	assert.Contains(t, logged, "unreachable")
}
