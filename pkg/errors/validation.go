package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxPackageNameLength bounds query names accepted from the CLI and HTTP API.
const maxPackageNameLength = 256

// ValidatePackageName validates a package name received from a caller before
// it is used as a query. It does not check that the package exists: unknown
// names are valid queries that yield an empty result.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No whitespace (a name is a single Depends token)
//   - Maximum length of 256 characters
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "package name cannot be empty")
	}

	if len(name) > maxPackageNameLength {
		return New(ErrCodeInvalidInput, "package name too long (max %d characters)", maxPackageNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "package name contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "package name cannot contain whitespace")
		}
	}

	return nil
}

// ValidateStatusPath validates the path of the control file to read.
func ValidateStatusPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidConfig, "status path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidConfig, "status path contains a null byte")
	}
	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (available: %s)", format, strings.Join(allowed, ", "))
}
