// Package replicav1 holds the worker and asset services spoken over Unix domain sockets.
package replicav1

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative replica/v1/replica.proto
