// Package cli provides the interactive auditkeeper command-line client.
//
// It wires configuration and the gRPC client into a small REPL: register,
// login, add an audit record, list records and log out. A background
// watcher pings the server and shows online/offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
