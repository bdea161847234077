// Package client is the gRPC client of the CommPro auth service used by the
// CLI.
//
// GRPCClient holds the current token pair, attaches the access token to
// every call and, when the server answers Unauthenticated with "token
// expired", rotates the pair with the refresh token and retries once.
// Status codes are mapped to the sentinel errors ErrUnavailable and
// ErrUnauthorized; other failures carry the server message.
package client
