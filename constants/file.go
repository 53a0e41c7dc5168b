package constants

import "strings"

// AllowedExtensions holds the allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"xml": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt checks if a normalized extension is in the allowed set.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[ext]
	return ok
}
