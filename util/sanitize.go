package util

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// filenameUnsafeRegex matches anything outside the conservative character
// set kept in stored filenames.
var filenameUnsafeRegex = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeString trims whitespace and removes control characters from s.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// SanitizeFilename reduces an untrusted upload filename to a safe base name:
// directory components are stripped, unsafe characters collapse to "_", and
// leading dots are removed so the result can never escape the storage root
// or hide as a dotfile. Returns "" if nothing safe remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = SanitizeString(name)
	name = filenameUnsafeRegex.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" || strings.Trim(name, "_") == "" {
		return ""
	}
	return name
}

// FileExtension returns the lower-cased extension of name without the dot,
// or "" if the name has no extension.
func FileExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
