// Package media defines the internal media-type discriminator. The
// internal tag for series is "show" everywhere; translation to TMDB's
// "tv" happens only inside the TMDB client.
package media

import (
	"errors"
	"fmt"
)

// Type distinguishes movies from shows.
type Type string

const (
	TypeMovie Type = "movie"
	TypeShow  Type = "show"
)

// ErrInvalidType indicates an unsupported media-type string at the
// boundary. Rejected before any network call.
var ErrInvalidType = errors.New("invalid media type")

// ParseType validates a media-type string from the boundary.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeMovie, TypeShow:
		return Type(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidType)
}
