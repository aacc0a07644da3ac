package errors

import (
	"strings"
	"unicode"
)

// ValidateWindowID validates a host-supplied window identifier.
//
// The rules are intentionally conservative: window ids arrive from outside
// the process and end up in logs, config documents, and API paths.
//
//   - No empty ids
//   - No control characters
//   - No whitespace
//   - Maximum length of 256 characters
func ValidateWindowID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidWindow, "window id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidWindow, "window id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWindow, "window id contains control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidWindow, "window id contains whitespace")
		}
	}
	return nil
}

// ValidateScreenName validates a host-supplied screen (output) name.
// Screen names look like "DP-1" or "HDMI-A-2" but the exact format is
// host-specific, so only clearly unsafe input is rejected.
func ValidateScreenName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScreen, "screen name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidScreen, "screen name too long (max 128 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScreen, "screen name contains control characters")
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidScreen, "screen name contains path separators")
	}
	return nil
}
