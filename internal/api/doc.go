// Package api holds the Scriptoria gRPC contract generated from
// scriptoria.proto.
package api

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative scriptoria.proto
