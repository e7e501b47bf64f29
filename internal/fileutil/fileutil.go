// Package fileutil provides filename and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// illegalChars are rejected by at least one mainstream filesystem.
const illegalChars = `<>:"/\|?*`

// SanitizeFilename strips characters that are illegal in common filesystems,
// trims surrounding whitespace, and converts remaining spaces to underscores
// unless preserveSpaces is set. If nothing survives stripping, a fallback
// name derived from now is returned, so the result is never empty.
func SanitizeFilename(name string, preserveSpaces bool, now time.Time) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if !strings.ContainsRune(illegalChars, r) {
			b.WriteRune(r)
		}
	}

	safe := strings.TrimSpace(b.String())
	if !preserveSpaces {
		safe = strings.ReplaceAll(safe, " ", "_")
	}
	if safe == "" {
		return fmt.Sprintf("document_%d", now.Unix())
	}
	return safe
}

// EnsureExtension appends ext (including its dot) unless name already ends
// with it, compared case-insensitively.
func EnsureExtension(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name
	}
	return name + ext
}

// BaseName returns name without its extension, if it has one.
func BaseName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a bare name. A string containing path separators (/, \) is treated as a
// path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
