package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// Supported page image MIME types.
const (
	MIMETypePNG  = "image/png"
	MIMETypeJPEG = "image/jpeg"
)

// Image is one uploaded chapter page.
type Image struct {
	// Name is the original file name, used only for display and logs.
	Name     string
	MIMEType string
	Data     []byte
}

// NewImage sniffs the content type of data and returns an Image when it is a
// PNG or JPEG no larger than maxBytes. A maxBytes of zero disables the check.
func NewImage(name string, data []byte, maxBytes int64) (Image, error) {
	if len(data) == 0 {
		return Image{}, NewValidationError("page "+name, "is empty", ErrEmptyContent)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return Image{}, NewValidationError("page "+name,
			fmt.Sprintf("exceeds %d bytes", maxBytes), ErrImageTooLarge)
	}

	mimeType := http.DetectContentType(data)
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	switch mimeType {
	case MIMETypePNG, MIMETypeJPEG:
	default:
		return Image{}, NewValidationError("page "+name,
			"must be a PNG or JPEG image, got "+mimeType, ErrUnsupportedImageType)
	}

	return Image{Name: name, MIMEType: mimeType, Data: data}, nil
}

// ValidatePages checks the page count against maxPages (zero means no limit).
func ValidatePages(pages []Image, maxPages int) error {
	if len(pages) == 0 {
		return NewValidationError("pages", "are required", ErrNoImages)
	}
	if maxPages > 0 && len(pages) > maxPages {
		return NewValidationError("pages",
			fmt.Sprintf("must be at most %d", maxPages), ErrTooManyImages)
	}
	return nil
}
