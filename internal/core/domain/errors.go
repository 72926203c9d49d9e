package domain

import "go.trai.ch/zerr"

var (
	// ErrAssetNotFound is returned when the client cannot supply an asset the worker asked for.
	// The two sides disagree about the snapshot contents, so the request cannot be retried.
	ErrAssetNotFound = zerr.New("asset not found on client")

	// ErrAssetKindMismatch is returned when a fetched asset is not of the kind the caller expected.
	ErrAssetKindMismatch = zerr.New("asset kind mismatch")

	// ErrUnknownAssetKind is returned when a payload names an asset kind this build does not know.
	ErrUnknownAssetKind = zerr.New("unknown asset kind")

	// ErrAssetEncodeFailed is returned when an asset cannot be serialized.
	ErrAssetEncodeFailed = zerr.New("failed to encode asset")

	// ErrAssetDecodeFailed is returned when an asset payload cannot be deserialized.
	ErrAssetDecodeFailed = zerr.New("failed to decode asset")

	// ErrUnknownSerializer is returned when a fetch request names a serializer the peer does not support.
	ErrUnknownSerializer = zerr.New("unknown serializer")

	// ErrIdentityChanged is returned when an incremental update changes the id or path of a solution or project.
	ErrIdentityChanged = zerr.New("identity fields changed during incremental update")

	// ErrNarrowedSyncLostProject is returned when a narrowed sync would drop a project it must keep.
	ErrNarrowedSyncLostProject = zerr.New("narrowed sync lost track of a project")

	// ErrProjectReferenceCycle is returned when project references form a cycle.
	ErrProjectReferenceCycle = zerr.New("project reference cycle detected")

	// ErrChecksumMismatch is returned when a built snapshot does not hash to the requested checksum.
	ErrChecksumMismatch = zerr.New("snapshot checksum mismatch")

	// ErrProjectNotFound is returned when a project id is not part of the solution.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrDocumentNotFound is returned when a document id is not part of the solution.
	ErrDocumentNotFound = zerr.New("document not found")

	// ErrDuplicateProjectID is returned when two projects share the same id.
	ErrDuplicateProjectID = zerr.New("duplicate project id")

	// ErrDuplicateDocumentID is returned when two documents of one project share the same id.
	ErrDuplicateDocumentID = zerr.New("duplicate document id")

	// ErrNoAssetSource is returned when the worker has no attached client to fetch assets from.
	ErrNoAssetSource = zerr.New("no client attached to fetch assets from")

	// ErrSnapshotReleased is returned when a lease is used after it was released.
	ErrSnapshotReleased = zerr.New("snapshot lease already released")

	// ErrConfigReadFailed is returned when the workspace manifest cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read workspace manifest")

	// ErrConfigParseFailed is returned when the workspace manifest cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse workspace manifest")

	// ErrConfigInvalid is returned when the workspace manifest fails validation.
	ErrConfigInvalid = zerr.New("invalid workspace manifest")

	// ErrConfigNotFound is returned when no workspace manifest exists in the directory.
	ErrConfigNotFound = zerr.New("could not find replica.yaml")

	// ErrInvalidTuning is returned when worker tunables are out of range.
	ErrInvalidTuning = zerr.New("invalid worker tuning")

	// ErrSourceReadFailed is returned when a source file of the workspace cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrDaemonSpawnFailed is returned when the worker daemon process cannot be started.
	ErrDaemonSpawnFailed = zerr.New("failed to spawn worker daemon")

	// ErrDaemonUnavailable is returned when the worker daemon does not answer.
	ErrDaemonUnavailable = zerr.New("worker daemon is not responsive")
)
