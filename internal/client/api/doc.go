// Package api is the typed client for the SyncVeil backend REST API.
//
// Every operation either returns its success value or fails with exactly
// one *Error carrying an HTTP-style status, a user-facing message and the
// raw response body as details. Transport failures with no response map to
// a synthetic 500. Operations that require a bearer credential fail fast
// with 401 when no access token is stored, without touching the network.
// The client never retries; every failure surfaces once to the caller.
package api
