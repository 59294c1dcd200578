package domain

import (
	"errors"
	"testing"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

func TestNewImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		maxBytes int64
		wantMIME string
		wantErr  error
	}{
		{"png", pngHeader, 0, MIMETypePNG, nil},
		{"jpeg", jpegHeader, 1 << 20, MIMETypeJPEG, nil},
		{"gif rejected", []byte("GIF89a\x01\x00\x01\x00"), 0, "", ErrUnsupportedImageType},
		{"text rejected", []byte("hello world"), 0, "", ErrUnsupportedImageType},
		{"empty", nil, 0, "", ErrEmptyContent},
		{"too large", pngHeader, 4, "", ErrImageTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			img, err := NewImage("p1", tc.data, tc.maxBytes)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected a validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.MIMEType != tc.wantMIME {
				t.Errorf("expected MIME %s, got %s", tc.wantMIME, img.MIMEType)
			}
			if img.Name != "p1" {
				t.Errorf("expected name p1, got %s", img.Name)
			}
		})
	}
}

func TestValidatePages(t *testing.T) {
	t.Parallel()

	page := Image{Name: "p", MIMEType: MIMETypePNG, Data: pngHeader}

	if err := ValidatePages(nil, 5); !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}
	if err := ValidatePages([]Image{page, page, page}, 2); !errors.Is(err, ErrTooManyImages) {
		t.Errorf("expected ErrTooManyImages, got %v", err)
	}
	if err := ValidatePages([]Image{page, page}, 2); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := ValidatePages([]Image{page, page, page}, 0); err != nil {
		t.Errorf("zero limit should not restrict, got %v", err)
	}
}
