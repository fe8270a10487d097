package domain

// CatalogEntry is one curated item of the feed.
// Entries are compared by value; the grid keys cards by the whole record.
type CatalogEntry struct {
	Copyright   string // Copyright line shown under the card
	Name        string // Display name, the only searchable field
	ArtworkURL  string // Artwork image URL (100px variant)
	ReleaseDate string // Release date as published by the feed
}

// FeedEnvelope is the decoded, validated feed.
// Entries keep the order of the source feed, which is its curation rank.
type FeedEnvelope struct {
	Entries []CatalogEntry
}

// Len returns the number of entries in the envelope
func (e FeedEnvelope) Len() int {
	return len(e.Entries)
}
