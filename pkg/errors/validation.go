package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxDimension caps render sizes; no terminal is this large.
const maxDimension = 10000

// ValidateSize checks a requested render size.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidSize, "size must be positive, got %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidSize, "size too large (max %d per side), got %dx%d", maxDimension, width, height)
	}
	return nil
}

// ValidateBounds checks an axis range. A zero-width range is allowed; the
// chart simply draws no samples for it.
func ValidateBounds(name string, bounds []float64) error {
	if len(bounds) != 2 {
		return New(ErrCodeInvalidBounds, "%s: bounds need exactly 2 values, got %d", name, len(bounds))
	}
	for _, v := range bounds {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidBounds, "%s: bounds must be finite, got %v", name, bounds)
		}
	}
	if bounds[0] > bounds[1] {
		return New(ErrCodeInvalidBounds, "%s: min %v is greater than max %v", name, bounds[0], bounds[1])
	}
	return nil
}

// ValidateLabel rejects labels that would corrupt the cell grid.
func ValidateLabel(name, label string) error {
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s: label %q contains control characters", name, label)
		}
	}
	return nil
}

// ValidatePath validates a chart document path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
