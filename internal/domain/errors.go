package domain

import "errors"

// Sentinel errors for feed operations
var (
	// ErrInvalidURL indicates the feed endpoint is malformed; no request was made
	ErrInvalidURL = errors.New("invalid feed URL")

	// ErrNetwork indicates the feed could not be retrieved
	ErrNetwork = errors.New("feed is unreachable")

	// ErrDecode indicates the feed document does not match the expected schema
	ErrDecode = errors.New("feed document is malformed")
)
