package utils

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	usernameRe     = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,32}$`)
	unsafeNameRe   = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	passwordMinLen = 8
	passwordMaxLen = 128
)

func ValidateUsername(s string) error {
	if !usernameRe.MatchString(s) {
		return errors.New("invalid username")
	}
	return nil
}

func ValidatePassword(s string) error {
	if len(s) < passwordMinLen {
		return errors.New("password too short (min 8 chars)")
	}
	if len(s) > passwordMaxLen {
		return errors.New("password too long (max 128 chars)")
	}
	return nil
}

// SanitizeFilename strips path components and collapses anything outside
// [a-zA-Z0-9._-] so an uploaded name is safe to store on disk.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeNameRe.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" {
		return "arquivo"
	}
	return name
}

// FileExtension returns the lowercase extension without the dot, or "" when the
// name has none.
func FileExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return strings.TrimPrefix(ext, ".")
}
