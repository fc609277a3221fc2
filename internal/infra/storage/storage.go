// Package storage keeps proposal documents in object storage. Objects are
// content addressed, so uploading the same document twice yields one object.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"event-customize/internal/usecase/shared"
)

var (
	_ shared.ObjectStorage = (*S3Store)(nil)
	_ shared.ObjectStorage = (*MemoryStore)(nil)
)

func objectKey(prefix string, data []byte, contentType string) string {
	sum := sha256.Sum256(data)
	return prefix + hex.EncodeToString(sum[:]) + extensionFor(contentType)
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])) {
	case "application/pdf":
		return ".pdf"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "application/msword":
		return ".doc"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return ".docx"
	default:
		return ".bin"
	}
}
