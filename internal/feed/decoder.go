package feed

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmcdole/appgrid/internal/domain"
)

// DecodeError describes why a feed document was rejected.
// It matches domain.ErrDecode with errors.Is.
type DecodeError struct {
	Index int    // Element index in feed.results, -1 for document-level failures
	Field string // Wire field name, empty when not field-specific
	Err   error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Index >= 0 && e.Field != "":
		return fmt.Sprintf("decode feed: results[%d].%s: %v", e.Index, e.Field, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("decode feed: results[%d]: %v", e.Index, e.Err)
	case e.Field != "":
		return fmt.Sprintf("decode feed: %s: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("decode feed: %v", e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is domain.ErrDecode
func (e *DecodeError) Is(target error) bool {
	return target == domain.ErrDecode
}

var (
	errMissingField = errors.New("missing required field")
	errWrongType    = errors.New("wrong field type")
)

// Decode parses a feed document into an envelope.
// Decoding is all-or-nothing: any malformed element rejects the document.
func Decode(data []byte) (domain.FeedEnvelope, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.FeedEnvelope{}, wrapJSONError(-1, err)
	}
	if doc.Feed == nil {
		return domain.FeedEnvelope{}, &DecodeError{Index: -1, Field: "feed", Err: errMissingField}
	}
	if doc.Feed.Results == nil {
		return domain.FeedEnvelope{}, &DecodeError{Index: -1, Field: "feed.results", Err: errMissingField}
	}

	raw := *doc.Feed.Results
	entries := make([]domain.CatalogEntry, 0, len(raw))
	for i, elem := range raw {
		var r result
		if err := json.Unmarshal(elem, &r); err != nil {
			return domain.FeedEnvelope{}, wrapJSONError(i, err)
		}
		entry, err := mapResult(i, r)
		if err != nil {
			return domain.FeedEnvelope{}, err
		}
		entries = append(entries, entry)
	}

	return domain.FeedEnvelope{Entries: entries}, nil
}

// mapResult converts a wire element to a catalog entry, requiring every field
func mapResult(index int, r result) (domain.CatalogEntry, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"copyright", r.Copyright},
		{"name", r.Name},
		{"artworkUrl100", r.ArtworkURL100},
		{"releaseDate", r.ReleaseDate},
	}
	for _, f := range fields {
		if f.value == nil {
			return domain.CatalogEntry{}, &DecodeError{Index: index, Field: f.name, Err: errMissingField}
		}
	}

	return domain.CatalogEntry{
		Copyright:   *r.Copyright,
		Name:        *r.Name,
		ArtworkURL:  *r.ArtworkURL100,
		ReleaseDate: *r.ReleaseDate,
	}, nil
}

// wrapJSONError converts encoding/json failures into DecodeErrors
func wrapJSONError(index int, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Index: index, Field: typeErr.Field, Err: fmt.Errorf("%w: %v", errWrongType, err)}
	}
	return &DecodeError{Index: index, Err: err}
}
