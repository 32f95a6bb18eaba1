// Package client talks to the auditkeeper gRPC endpoint on behalf of the CLI.
//
// GRPCClient keeps the access token obtained by Login in memory and attaches
// it as "authorization: Bearer <token>" metadata to every call. gRPC status
// codes are mapped to the sentinel errors in errors.go, so callers can match
// them with errors.Is.
//
// There is no refresh flow: an Unauthenticated answer to an authenticated
// call drops the stored token and the user has to log in again.
package client
