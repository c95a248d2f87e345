package validator

import (
	"regexp"
	"strings"
)

// keySegmentRegexp accepts letters, digits, dots, underscores and hyphens, 1-128 characters.
var keySegmentRegexp = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// ValidateKeySegment reports whether s can be used as one segment of an object storage key.
// "." and ".." are rejected.
func ValidateKeySegment(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed != s || trimmed == "." || trimmed == ".." {
		return false
	}
	return keySegmentRegexp.MatchString(trimmed)
}
