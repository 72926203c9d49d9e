// Package codec implements asset serialization for the worker protocol.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/zerr"
)

// Name identifies the asset codec in fetch requests.
const Name = "json+zstd"

// CompressionThreshold is the payload size in bytes above which assets are compressed.
const CompressionThreshold = 1024

var _ ports.Codec = (*Codec)(nil)

// Codec encodes assets as JSON and compresses payloads above a threshold with zstd.
// Decode detects compressed payloads by their frame magic, so both forms may be mixed.
type Codec struct {
	threshold int
	encoder   *zstd.Encoder
	decoder   *zstd.Decoder
}

// New creates a codec with the default compression threshold.
func New() (*Codec, error) {
	return NewWithThreshold(CompressionThreshold)
}

// NewWithThreshold creates a codec that compresses payloads of at least threshold bytes.
func NewWithThreshold(threshold int) (*Codec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd encoder")
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd decoder")
	}
	return &Codec{
		threshold: threshold,
		encoder:   encoder,
		decoder:   decoder,
	}, nil
}

// Name implements ports.Codec.
func (c *Codec) Name() string {
	return Name
}

// Encode implements ports.Codec.
func (c *Codec) Encode(a domain.Asset) ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrAssetEncodeFailed, err.Error()), "kind", a.Kind().String())
	}
	if len(data) < c.threshold {
		return data, nil
	}
	// EncodeAll is safe for concurrent use.
	return c.encoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decode implements ports.Codec.
func (c *Codec) Decode(kind domain.AssetKind, data []byte) (domain.Asset, error) {
	if isCompressed(data) {
		plain, err := c.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrAssetDecodeFailed, err.Error()), "kind", kind.String())
		}
		data = plain
	}

	a, err := domain.NewAsset(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrAssetDecodeFailed, err.Error()), "kind", kind.String())
	}
	return a, nil
}

// isCompressed checks for the zstd frame magic (0x28 0xB5 0x2F 0xFD).
func isCompressed(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x28 && data[1] == 0xB5 && data[2] == 0x2F && data[3] == 0xFD
}
