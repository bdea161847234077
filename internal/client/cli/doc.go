// Package cli provides the interactive command-line client of the CommPro
// auth service.
//
// It wires configuration, the gRPC client and a REPL. A background watcher
// pings the server and flips the prompt between online and offline.
//
// Commands:
//   - register, login (with a two-factor prompt when the account needs it)
//   - me, password, logout
//   - 2fa-enable, 2fa-confirm, 2fa-disable
//   - forgot, reset
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
