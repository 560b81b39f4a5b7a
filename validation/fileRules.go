package validation

import "github.com/gabriel-vasile/mimetype"

// CheckFileSize caps an upload at maxSize megabytes.
func CheckFileSize(fileSize, maxSize uint64) bool {
	return fileSize <= maxSize*1024*1024
}

// CheckFileMime accepts the image formats the upload paths store.
func CheckFileMime(fileMime string) bool {
	return mimetype.EqualsAny(fileMime, "image/webp", "image/jpeg", "image/png")
}
