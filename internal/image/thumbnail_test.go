package image

import (
	"errors"
	"testing"
)

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"landscape", 800, 400, 400, 400, 400, 200},
		{"portrait", 300, 900, 400, 400, 133, 400},
		{"already fits", 100, 50, 400, 400, 100, 50},
		{"exact", 400, 400, 400, 400, 400, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, _ := New(tt.w, tt.h, FormatRGB8)
			src.Fill(200, 100, 50)

			got, err := Thumbnail(src, tt.maxW, tt.maxH)
			if err != nil {
				t.Fatalf("Thumbnail() error = %v", err)
			}
			if got.Width() != tt.wantW || got.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", got.Width(), got.Height(), tt.wantW, tt.wantH)
			}
			// A flat image stays flat after resampling.
			if r := got.At(got.Width()/2, got.Height()/2, 0); r < 199 || r > 201 {
				t.Errorf("center R = %d, want ~200", r)
			}
		})
	}
}

func TestThumbnailGray(t *testing.T) {
	src, _ := New(50, 20, FormatGray8)
	src.Fill(90)

	got, err := Thumbnail(src, 10, 10)
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}
	if got.Format() != FormatGray8 {
		t.Errorf("Format = %v, want Gray8", got.Format())
	}
	if got.Width() != 10 || got.Height() != 4 {
		t.Errorf("size = %dx%d, want 10x4", got.Width(), got.Height())
	}
}

func TestThumbnailErrors(t *testing.T) {
	if _, err := Thumbnail(nil, 10, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Thumbnail(nil) error = %v, want ErrInvalidInput", err)
	}
	src, _ := New(4, 4, FormatRGB8)
	if _, err := Thumbnail(src, 0, 10); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Thumbnail(0 width) error = %v, want ErrInvalidParameter", err)
	}
}
