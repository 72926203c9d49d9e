package domain

import "path/filepath"

const (
	// ReplicaDirName is the name of the internal workspace directory.
	ReplicaDirName = ".replica"

	// ManifestFileName is the name of the workspace manifest.
	ManifestFileName = "replica.yaml"

	// WorkerSocketName is the socket the worker daemon listens on.
	WorkerSocketName = "worker.sock"

	// AssetSocketName is the socket the client serves assets on.
	AssetSocketName = "assets.sock"

	// WorkerPIDFile is the pid file written by the worker daemon.
	WorkerPIDFile = "worker.pid"

	// WorkerLogFile receives stdout and stderr of a spawned worker.
	WorkerLogFile = "worker.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// SocketPerm restricts sockets to the owner (rwx------).
	SocketPerm = 0o700

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// StatePath returns the directory holding sockets and pid files for root.
func StatePath(root string) string {
	return filepath.Join(root, ReplicaDirName)
}

// WorkerSocketPath returns the worker daemon socket for the workspace at root.
func WorkerSocketPath(root string) string {
	return filepath.Join(root, ReplicaDirName, WorkerSocketName)
}

// AssetSocketPath returns the client asset socket for the workspace at root.
func AssetSocketPath(root string) string {
	return filepath.Join(root, ReplicaDirName, AssetSocketName)
}

// WorkerPIDPath returns the worker pid file for the workspace at root.
func WorkerPIDPath(root string) string {
	return filepath.Join(root, ReplicaDirName, WorkerPIDFile)
}

// WorkerLogPath returns the log file of a spawned worker.
func WorkerLogPath(root string) string {
	return filepath.Join(root, ReplicaDirName, WorkerLogFile)
}

// ManifestPath returns the manifest location for the workspace at root.
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestFileName)
}
