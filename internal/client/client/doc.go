// Package client talks to the Scriptoria gRPC API on behalf of the CLI.
//
// # Overview
//
// GRPCClient owns one connection and at most one session token. The token
// is attached to every call through a unary interceptor once Login has
// succeeded, and dropped on Logout.
//
// # Error Handling
//
// Server statuses are turned back into the sentinel errors of
// internal/common wrapped in a RemoteError, so callers can match them with
// errors.Is while still printing the server's message. Transport failures
// are reported as ErrUnavailable.
package client
