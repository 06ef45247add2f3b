package errors

import (
	"os"
	"strings"
	"unicode"
)

const maxPathLength = 4096

// ValidateOutputPath checks that path is usable as an output location.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - If the path exists it must be a directory
//
// Absolute paths and ".." are allowed: output locations are chosen by the
// local user, not by untrusted input.
func ValidateOutputPath(path string) error {
	if err := validatePathText(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		return New(ErrCodeInvalidPath, "output path %q is not a directory", path)
	}
	return nil
}

// ValidateImagePath checks that path names an existing regular file.
func ValidateImagePath(path string) error {
	if err := validatePathText(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Wrap(ErrCodeFileNotFound, err, "image %q does not exist", path)
		}
		return Wrap(ErrCodeInvalidPath, err, "cannot access image %q", path)
	}
	if info.IsDir() {
		return New(ErrCodeInvalidPath, "image path %q is a directory", path)
	}
	return nil
}

// ValidateFormat checks that format is one of the supported values.
// Comparison is case-insensitive.
func ValidateFormat(format string, supported []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	for _, s := range supported {
		if strings.EqualFold(format, s) {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", format, strings.Join(supported, ", "))
}

func validatePathText(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
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
