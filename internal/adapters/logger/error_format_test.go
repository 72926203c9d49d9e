package logger_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/adapters/logger"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestFormatErrorEntries_Golden(t *testing.T) {
	notFound := zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "client did not return asset"), "checksum", "00000000000000ab")
	notFound = zerr.With(notFound, "request_id", "r-1")

	tests := []struct {
		name string
		err  error
	}{
		{
			name: "fetch_chain",
			err:  zerr.With(zerr.Wrap(notFound, "snapshot build failed"), "solution", "0000000000000001"),
		},
		{
			name: "stdlib_with_metadata",
			err:  zerr.Wrap(zerr.With(fs.ErrNotExist, "path", "/tmp/replica.sock"), "dial worker"),
		},
		{
			name: "multiline",
			err:  zerr.Wrap(errors.New("line one\nline two"), "parse replica.yaml\nat root"),
		},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)
			g.Assert(t, tt.name, []byte(logger.FormatErrorEntriesExported(entries)))
		})
	}
}

func TestCollectErrorEntries(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntriesExported(nil))
	})

	t.Run("stdlib stops the walk", func(t *testing.T) {
		err := zerr.Wrap(errors.Join(errors.New("a"), errors.New("b")), "outer")
		entries := logger.CollectErrorEntriesExported(err)
		require.Len(t, entries, 2)
		assert.Equal(t, "outer", entries[0].Message)
		assert.Equal(t, "a\nb", entries[1].Message)
		assert.Nil(t, entries[1].Metadata)
	})

	t.Run("sentinel", func(t *testing.T) {
		entries := logger.CollectErrorEntriesExported(domain.ErrChecksumMismatch)
		require.Len(t, entries, 1)
		assert.Equal(t, "snapshot checksum mismatch", entries[0].Message)
		assert.Empty(t, entries[0].Metadata)
	})
}

func TestFormatErrorEntries_Empty(t *testing.T) {
	assert.Empty(t, logger.FormatErrorEntriesExported(nil))
}
