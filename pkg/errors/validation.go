package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// gameIDRegex matches slug-style game identifiers ("flappy-dwb", "dwb-2048").
var gameIDRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ValidateGameID validates a game identifier used in URLs and library files.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - Maximum length of 128 characters
//   - Lowercase letters, digits and inner hyphens only
func ValidateGameID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGameID, "game id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidGameID, "game id too long (max 128 characters)")
	}
	if !gameIDRegex.MatchString(id) {
		return New(ErrCodeInvalidGameID, "invalid game id: %q", id)
	}
	return nil
}

// ValidateImageRef validates a thumbnail reference (a file name, a path
// such as "/Thumbnails/ph1.jpg", or an http(s) URL).
func ValidateImageRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidInput, "image reference cannot be empty")
	}
	if len(ref) > 1024 {
		return New(ErrCodeInvalidInput, "image reference too long (max 1024 characters)")
	}
	for _, r := range ref {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "image reference contains invalid control characters")
		}
	}
	if strings.Contains(ref, "..") {
		return New(ErrCodeInvalidInput, "image reference cannot contain path traversal sequences (..)")
	}
	return nil
}

// ValidatePath validates a relative file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
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

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
