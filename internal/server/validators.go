// file: internal/server/validators.go
// version: 1.1.0
// guid: 9b0c1d2e-3f4a-5b6c-7d8e-9f0a1b2c3d4e

package server

import (
	"fmt"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/transmission"
)

// ValidationError represents a request validation error with code
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateMagnet checks that the decoded `magnet` field is a non-empty
// string. The URI format itself is not validated; a malformed magnet passes
// through and the daemon rejects it.
func ValidateMagnet(value any) (string, error) {
	magnet, ok := value.(string)
	if !ok || magnet == "" {
		return "", ValidationError{
			Field:   "magnet",
			Message: "Missing or invalid 'magnet' field",
			Code:    "MAGNET_REQUIRED",
		}
	}
	return magnet, nil
}

// ResolveCategory normalizes the two request shapes the API accepts into one
// media category. An explicit `media_type` string wins over the legacy `tv`
// boolean, and an invalid string is an error even when a boolean is also
// present. With neither field the category defaults to film.
func ResolveCategory(body map[string]any) (transmission.Category, error) {
	if raw, present := body["media_type"]; present {
		s, ok := raw.(string)
		if !ok {
			return "", ValidationError{
				Field:   "media_type",
				Message: "media_type must be 'tv' or 'film'",
				Code:    "MEDIA_TYPE_INVALID",
			}
		}
		cat, err := transmission.ParseCategory(s)
		if err != nil {
			return "", ValidationError{
				Field:   "media_type",
				Message: "media_type must be 'tv' or 'film'",
				Code:    "MEDIA_TYPE_INVALID",
			}
		}
		return cat, nil
	}

	if raw, present := body["tv"]; present {
		isTV, ok := raw.(bool)
		if !ok {
			return "", ValidationError{
				Field:   "tv",
				Message: "tv must be a boolean",
				Code:    "TV_FLAG_INVALID",
			}
		}
		if isTV {
			return transmission.CategoryTV, nil
		}
		return transmission.CategoryFilm, nil
	}

	return transmission.CategoryFilm, nil
}
