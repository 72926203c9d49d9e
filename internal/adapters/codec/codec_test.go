package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replica/internal/adapters/codec"
	"go.trai.ch/replica/internal/core/domain"
)

func TestCodec_EncodeDecode(t *testing.T) {
	c, err := codec.New()
	require.NoError(t, err)
	assert.Equal(t, codec.Name, c.Name())

	tests := []struct {
		name       string
		asset      domain.Asset
		compressed bool
	}{
		{
			name:  "small source text stays plain",
			asset: &domain.SourceText{Text: "class A {}", Encoding: "utf-8"},
		},
		{
			name:       "large source text is compressed",
			asset:      &domain.SourceText{Text: strings.Repeat("class A {}\n", 500), Encoding: "utf-8"},
			compressed: true,
		},
		{
			name: "project state",
			asset: &domain.ProjectState{
				ID:         "A",
				Attributes: 1,
				Documents:  2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Encode(tt.asset)
			require.NoError(t, err)

			isJSON := len(data) > 0 && data[0] == '{'
			assert.Equal(t, !tt.compressed, isJSON)

			decoded, err := c.Decode(tt.asset.Kind(), data)
			require.NoError(t, err)
			assert.Equal(t, tt.asset, decoded)
			assert.Equal(t, domain.ChecksumOf(tt.asset), domain.ChecksumOf(decoded))
		})
	}
}

func TestCodec_DecodeErrors(t *testing.T) {
	c, err := codec.New()
	require.NoError(t, err)

	_, err = c.Decode(domain.KindUnknown, []byte("{}"))
	require.ErrorIs(t, err, domain.ErrUnknownAssetKind)

	_, err = c.Decode(domain.KindSourceText, []byte("{not json"))
	require.ErrorIs(t, err, domain.ErrAssetDecodeFailed)

	_, err = c.Decode(domain.KindSourceText, []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00})
	require.ErrorIs(t, err, domain.ErrAssetDecodeFailed)
}
