package errors

import (
	"strings"
	"unicode"
)

// FirstYear is the first Advent of Code event.
const FirstYear = 2015

// ValidateYearDay checks that year and day name a possible Advent of Code puzzle.
// It does not check whether the puzzle has been solved in this module.
func ValidateYearDay(year, day int) error {
	if year < FirstYear {
		return New(ErrCodeInvalidInput, "year %d is before the first event (%d)", year, FirstYear)
	}
	if day < 1 || day > 25 {
		return New(ErrCodeInvalidInput, "day %d is out of range (1-25)", day)
	}
	return nil
}

// ValidatePart checks that part is 1 or 2.
func ValidatePart(part int) error {
	if part != 1 && part != 2 {
		return New(ErrCodeInvalidInput, "part must be 1 or 2, got %d", part)
	}
	return nil
}

// ValidatePath validates an input file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//
// "-" is accepted and means standard input.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
