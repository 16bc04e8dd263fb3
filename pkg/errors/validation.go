package errors

import (
	"strings"
	"unicode"
)

// ValidateItemID validates a tile identifier arriving from untrusted
// input (board files, HTTP request bodies, CLI arguments).
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No path separators (IDs appear in URLs and filenames)
//   - Maximum length of 128 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidItem, "item id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id contains control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidItem, "item id cannot contain path separators")
	}

	return nil
}

// ValidateSize validates a raw pixel size arriving from untrusted input.
// Sizes must be positive; the engine snaps them to span multiples but
// never invents a size for a zero or negative request.
func ValidateSize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidInput, "size must be positive, got %gx%g", width, height)
	}
	return nil
}
