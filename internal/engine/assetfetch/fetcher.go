// Package assetfetch resolves checksums to assets, serving them from the asset
// cache and bulk-fetching whatever is missing from the client.
package assetfetch

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/replica/internal/core/domain"
	"go.trai.ch/replica/internal/core/ports"
	"go.trai.ch/replica/internal/engine/assetcache"
	"go.trai.ch/zerr"
)

// Fetcher returns cached assets and fetches the rest from an AssetSource in one round trip per call.
type Fetcher struct {
	cache   *assetcache.Cache
	source  ports.AssetSource
	codec   ports.Codec
	tracer  ports.Tracer
	metrics ports.Metrics

	projectSyncThreshold int
	buffers              sync.Pool
}

// New creates a Fetcher.
func New(
	cache *assetcache.Cache,
	source ports.AssetSource,
	codec ports.Codec,
	tracer ports.Tracer,
	metrics ports.Metrics,
	tuning domain.Tuning,
) *Fetcher {
	size := tuning.ChecksumBufferSize
	return &Fetcher{
		cache:                cache,
		source:               source,
		codec:                codec,
		tracer:               tracer,
		metrics:              metrics,
		projectSyncThreshold: tuning.ProjectSyncThreshold,
		buffers: sync.Pool{
			New: func() any {
				buf := make([]domain.Checksum, 0, size)
				return &buf
			},
		},
	}
}

// GetAssets returns the assets for every checksum, fetching the missing ones in a single request.
// The scope is a search hint for the client.
func (f *Fetcher) GetAssets(
	ctx context.Context,
	scope domain.AssetScope,
	checksums []domain.Checksum,
) (map[domain.Checksum]domain.Asset, error) {
	out := make(map[domain.Checksum]domain.Asset, len(checksums))

	bufp, ok := f.buffers.Get().(*[]domain.Checksum)
	if !ok {
		buf := make([]domain.Checksum, 0, len(checksums))
		bufp = &buf
	}
	missing := (*bufp)[:0]
	defer func() {
		*bufp = missing[:0]
		f.buffers.Put(bufp)
	}()

	for _, c := range checksums {
		if _, ok := out[c]; ok {
			continue
		}
		if a, ok := f.cache.TryGet(c); ok {
			out[c] = a
			continue
		}
		missing = append(missing, c)
	}
	slices.Sort(missing)
	missing = slices.Compact(missing)

	f.metrics.CacheLookups(len(out), len(missing))
	if len(missing) == 0 {
		return out, nil
	}

	if err := f.fetch(ctx, scope, missing, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Fetcher) fetch(
	ctx context.Context,
	scope domain.AssetScope,
	missing []domain.Checksum,
	out map[domain.Checksum]domain.Asset,
) error {
	req := ports.FetchRequest{
		RequestID:  uuid.NewString(),
		Scope:      scope,
		Serializer: f.codec.Name(),
		Checksums:  missing,
	}

	ctx, span := f.tracer.Start(ctx, "assets.fetch",
		ports.WithAttribute("request_id", req.RequestID),
		ports.WithAttribute("count", len(missing)),
		ports.WithAttribute("project", string(scope.ProjectID)),
	)
	defer span.End()

	received := 0
	err := f.source.FetchAssets(ctx, req, func(p ports.AssetPayload) error {
		if _, done := out[p.Checksum]; done {
			return nil
		}
		if _, found := slices.BinarySearch(missing, p.Checksum); !found {
			return nil
		}
		a, err := f.codec.Decode(p.Kind, p.Data)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to decode payload"), "checksum", p.Checksum.String())
		}
		out[p.Checksum] = f.cache.GetOrAdd(p.Checksum, a)
		received++
		return nil
	})
	f.metrics.AssetsFetched(received)
	if err != nil {
		span.RecordError(err)
		return err
	}

	for _, c := range missing {
		if _, ok := out[c]; !ok {
			err := zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "client did not return asset"), "checksum", c.String())
			err = zerr.With(err, "request_id", req.RequestID)
			span.RecordError(err)
			return err
		}
	}
	return nil
}

// GetAsset returns the asset for c as T.
func GetAsset[T domain.Asset](ctx context.Context, f *Fetcher, scope domain.AssetScope, c domain.Checksum) (T, error) {
	assets, err := f.GetAssets(ctx, scope, []domain.Checksum{c})
	if err != nil {
		var zero T
		return zero, err
	}
	return As[T](c, assets[c])
}

// GetAssetsOf returns the assets for checksums, all of which must be of type T.
func GetAssetsOf[T domain.Asset](
	ctx context.Context,
	f *Fetcher,
	scope domain.AssetScope,
	checksums []domain.Checksum,
) (map[domain.Checksum]T, error) {
	assets, err := f.GetAssets(ctx, scope, checksums)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Checksum]T, len(assets))
	for c, a := range assets {
		v, err := As[T](c, a)
		if err != nil {
			return nil, err
		}
		out[c] = v
	}
	return out, nil
}

// As returns a as T, or an ErrAssetKindMismatch error naming c.
func As[T domain.Asset](c domain.Checksum, a domain.Asset) (T, error) {
	v, ok := a.(T)
	if !ok {
		var zero T
		err := zerr.With(zerr.Wrap(domain.ErrAssetKindMismatch, "unexpected asset type"), "checksum", c.String())
		err = zerr.With(err, "expected", fmt.Sprintf("%T", zero))
		return zero, zerr.With(err, "actual", a.Kind().String())
	}
	return v, nil
}
