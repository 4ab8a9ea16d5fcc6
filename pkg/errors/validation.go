package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// loginRegex matches GitHub usernames: alphanumerics separated by single
// hyphens, never starting or ending with a hyphen.
var loginRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9])*$`)

const maxLoginLength = 39

// ValidateLogin validates a GitHub username before it is sent to the API
// or used as part of a cache key or URL path.
func ValidateLogin(login string) error {
	if login == "" {
		return New(ErrCodeInvalidLogin, "GitHub user name cannot be empty")
	}
	if len(login) > maxLoginLength {
		return New(ErrCodeInvalidLogin, "GitHub user name too long (max %d characters)", maxLoginLength)
	}
	if !loginRegex.MatchString(login) {
		return New(ErrCodeInvalidLogin, "invalid GitHub user name: %q", login)
	}
	return nil
}

// ValidateOutputDir validates a directory path that artifacts are written to.
// Absolute and relative paths are both accepted.
func ValidateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 1024
	if len(dir) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}
	return nil
}

// ValidateFilename validates a bare artifact file name. It must not contain
// path separators or traversal sequences.
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators")
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "file name cannot contain path traversal sequences (..)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid characters")
		}
	}
	return nil
}
