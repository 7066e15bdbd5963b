package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches six-digit hex colours with an optional leading '#'.
var hexColorRegex = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a palette colour literal such as "a40e4c" or "#a40e4c".
func ValidateHexColor(s string) error {
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidPalette, "invalid hex colour: %q", s)
	}
	return nil
}

// paletteNameRegex matches palette identifiers usable as CLI flags and URL params.
var paletteNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidatePaletteName validates a palette identifier.
//
// Names must start with a letter, contain only letters, digits, '-' and '_',
// and be at most 64 characters long.
func ValidatePaletteName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPalette, "palette name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidPalette, "palette name too long (max 64 characters)")
	}
	if !paletteNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPalette, "invalid palette name: %q", name)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
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

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}

// ValidateRecordID validates a gallery record identifier (a canonical UUID string).
func ValidateRecordID(id string) error {
	if len(id) != 36 {
		return New(ErrCodeInvalidInput, "invalid record id: %q", id)
	}
	for i, r := range id {
		switch i {
		case 8, 13, 18, 23:
			if r != '-' {
				return New(ErrCodeInvalidInput, "invalid record id: %q", id)
			}
		default:
			if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
				return New(ErrCodeInvalidInput, "invalid record id: %q", id)
			}
		}
	}
	return nil
}
