package domain

import "context"

// FeedSource retrieves the raw feed document.
type FeedSource interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}
