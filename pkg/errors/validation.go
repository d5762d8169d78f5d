package errors

import (
	"slices"
	"strings"
	"unicode"
)

// Supported alphabet sizes. Above the maximum the symmetry table alone
// outgrows memory long before a search could finish.
const (
	MinSymbols = 2
	MaxSymbols = 7
)

// Output formats accepted by the CLI.
var Formats = []string{"table", "json", "toml"}

// ValidateSymbols checks that n is a supported alphabet size.
func ValidateSymbols(n int) error {
	if n < MinSymbols || n > MaxSymbols {
		return New(ErrCodeInvalidSymbols, "alphabet size %d outside [%d, %d]", n, MinSymbols, MaxSymbols)
	}
	return nil
}

// ValidateFormat checks that f is one of [Formats].
func ValidateFormat(f string) error {
	if !slices.Contains(Formats, f) {
		return New(ErrCodeInvalidFormat, "unknown format %q (want one of %s)", f, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidatePath validates an output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if slices.Contains(strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }), "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
