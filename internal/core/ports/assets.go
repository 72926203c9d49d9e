package ports

import (
	"context"

	"go.trai.ch/replica/internal/core/domain"
)

//go:generate mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks

// FetchRequest asks the client for a batch of assets.
type FetchRequest struct {
	// RequestID correlates the request in client and worker logs.
	RequestID string `json:"request_id"`
	// Scope narrows the client's search. It is a hint only.
	Scope domain.AssetScope `json:"scope"`
	// Serializer names the codec the payloads must be encoded with.
	Serializer string `json:"serializer"`
	// Checksums lists every requested asset.
	Checksums []domain.Checksum `json:"checksums"`
}

// AssetPayload is one serialized asset streamed back by the client.
type AssetPayload struct {
	Checksum domain.Checksum  `json:"checksum"`
	Kind     domain.AssetKind `json:"kind"`
	Data     []byte           `json:"data"`
}

// AssetSource is the client side of the asset protocol as seen by the worker.
type AssetSource interface {
	// FetchAssets streams the requested assets to yield, one call per asset.
	// Assets the client does not know are omitted; the caller detects them.
	FetchAssets(ctx context.Context, req FetchRequest, yield func(AssetPayload) error) error
}

// Codec serializes assets for transport.
type Codec interface {
	// Name identifies the codec in fetch requests.
	Name() string
	// Encode serializes an asset.
	Encode(a domain.Asset) ([]byte, error)
	// Decode deserializes an asset of the given kind.
	Decode(kind domain.AssetKind, data []byte) (domain.Asset, error)
}

// AssetPublisher is the client side of the asset protocol: it serves the
// assets of every recently published solution.
type AssetPublisher interface {
	// Publish makes every asset of s available to the worker.
	Publish(s *domain.Solution)
	// Serve accepts worker connections on socketPath until ctx is done.
	Serve(ctx context.Context, socketPath string) error
}
