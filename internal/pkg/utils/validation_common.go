package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
)

var supportedDocumentMimeTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"image/tiff",
	"text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/octet-stream",
}

func ValidateUploadFile(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return errors.New("file is missing from request")
	}

	if fileHeader.Size > maxSizeInMegabytes<<20 {
		return fmt.Errorf("file exceeds maximum allowed size of %dMB", maxSizeInMegabytes)
	}

	return nil
}

func ValidateDocumentMimeType(mimeType string) error {
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	if idx := strings.Index(normalized, ";"); idx >= 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}

	for _, supported := range supportedDocumentMimeTypes {
		if normalized == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported document type %q. Supported types are: %s", mimeType, strings.Join(supportedDocumentMimeTypes, ", "))
}
