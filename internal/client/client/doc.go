// Package client talks to the collabdocs backend over HTTP.
//
// Every outbound call goes through HTTPClient.Do, which attaches the bearer
// credential, defeats intermediary caches, unwraps the {code, message, data}
// envelope and reports session invalidation to registered handlers before the
// failing call returns.
//
// # Errors
//
// Failures match one of the sentinels with errors.Is:
//
//   - ErrUnavailable: the round trip did not produce a usable response
//     (dial error, timeout, non-2xx status, undecodable body).
//   - ErrRequestFailed: the server rejected the call in the envelope; the
//     concrete error is *APIError and its message is the server's message.
//   - ErrUnauthorized: the session was invalidated (HTTP 401 or an envelope
//     code in the invalidation set).
//
// The package also bootstraps the local SQLite database (InitDatabase,
// RunMigrations) used to persist the session between runs.
package client
