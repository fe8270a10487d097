package feed

import "encoding/json"

// document is the root of the feed response
type document struct {
	Feed *container `json:"feed"`
}

// container holds the result list. Elements stay raw so each one can be
// validated on its own and failures can name the element index.
type container struct {
	Results *[]json.RawMessage `json:"results"`
}

// result is a single feed element. Pointers distinguish absent or null
// fields from empty strings.
type result struct {
	Copyright     *string `json:"copyright"`
	Name          *string `json:"name"`
	ArtworkURL100 *string `json:"artworkUrl100"`
	ReleaseDate   *string `json:"releaseDate"`
}
