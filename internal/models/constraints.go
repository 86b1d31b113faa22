package models

import (
	"path/filepath"
	"strings"
)

// Proof file constraints shared by the submission workflow and the
// store-side upload handler.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"

	MaxProofSizeBytes = int64(5 << 20) // 5 MB
)

// AllowedProofType reports whether a selected proof file may be
// uploaded. The MIME type is the primary signal; the file extension is
// only consulted when the type is missing or generic.
func AllowedProofType(contentType, filename string) bool {
	switch strings.ToLower(contentType) {
	case ContentTypeJPEG, ContentTypePNG, "image/jpg":
		return true
	case "", "application/octet-stream":
		// fall through to the extension
	default:
		return false
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
