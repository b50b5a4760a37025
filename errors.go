package cropvariantsbuilder

import "errors"

// Validation errors. All of them signal bad caller input and are wrapped with
// the name of the offending crop variant; match with errors.Is.
var (
	// ErrMissingField is returned by Build when a required field (title,
	// crop area or the allowed aspect ratios) is empty.
	ErrMissingField = errors.New("required field is empty")

	// ErrInvalidArea is returned when a non-empty rectangle lacks one or
	// more of the x, y, width and height keys.
	ErrInvalidArea = errors.New("area is missing required keys")

	// ErrDuplicateRatio is returned when an aspect ratio key is added
	// twice. The existing entry has to be removed first.
	ErrDuplicateRatio = errors.New("aspect ratio is already allowed, remove the existing entry first")

	// ErrUnknownRatio is returned when a removal or selection references an
	// aspect ratio key that was never added.
	ErrUnknownRatio = errors.New("aspect ratio is not allowed on this variant")
)
