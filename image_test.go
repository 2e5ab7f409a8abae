package imagefx

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/spf13/afero"
)

func TestFromRaw(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}

	rgb, err := FromRaw(data, 2, 1, 3)
	if err != nil {
		t.Fatalf("FromRaw(3 channels) error = %v", err)
	}
	if rgb.Format() != FormatRGB8 || rgb.At(1, 0, 2) != 6 {
		t.Errorf("FromRaw(3 channels) = %v, last sample %d", rgb.Format(), rgb.At(1, 0, 2))
	}

	gray, err := FromRaw(data, 3, 2, 1)
	if err != nil {
		t.Fatalf("FromRaw(1 channel) error = %v", err)
	}
	if gray.Format() != FormatGray8 || gray.At(2, 1, 0) != 6 {
		t.Errorf("FromRaw(1 channel) = %v, last sample %d", gray.Format(), gray.At(2, 1, 0))
	}

	for _, ch := range []int{0, 2, 4} {
		if _, err := FromRaw(data, 1, 1, ch); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FromRaw(%d channels) error = %v, want ErrUnsupportedFormat", ch, err)
		}
	}
}

func TestSaveLoadFS(t *testing.T) {
	fs := afero.NewMemMapFs()
	img := randomBuffer(t, 17, 9, FormatRGB8, 1)

	if err := SaveFS(fs, img, "out/result.png"); err != nil {
		t.Fatalf("SaveFS() error = %v", err)
	}

	got, err := LoadFS(fs, "out/result.png")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	if !got.Equal(img) {
		t.Error("PNG round trip changed the image")
	}
}

func TestSaveLoadFSGray(t *testing.T) {
	fs := afero.NewMemMapFs()
	img := randomBuffer(t, 8, 8, FormatGray8, 2)

	if err := SaveFS(fs, img, "gray.bmp"); err != nil {
		t.Fatalf("SaveFS() error = %v", err)
	}
	got, err := LoadFS(fs, "gray.bmp")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}

	// Loading always yields RGB8 with equal channels.
	if got.Format() != FormatRGB8 {
		t.Fatalf("format = %v, want RGB8", got.Format())
	}
	for y := range 8 {
		for x := range 8 {
			want := img.At(x, y, 0)
			for c := range 3 {
				if v := got.At(x, y, c); v != want {
					t.Fatalf("(%d, %d, %d) = %d, want %d", x, y, c, v, want)
				}
			}
		}
	}
}

func TestSaveFSErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := SaveFS(fs, nil, "nil.png"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("SaveFS(nil) error = %v, want ErrInvalidInput", err)
	}
	img := testBuffer(t, 2, 2, FormatRGB8)
	if err := SaveFS(fs, img, "out.xyz"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SaveFS(.xyz) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeEncode(t *testing.T) {
	img := randomBuffer(t, 5, 7, FormatRGB8, 3)

	var buf bytes.Buffer
	if err := Encode(&buf, img, FileTIFF); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !got.Equal(img) {
		t.Error("TIFF round trip changed the image")
	}

	if _, err := Decode(bytes.NewReader([]byte("not an image"))); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode(garbage) error = %v, want ErrDecode", err)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	b, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if b.Width() != 3 || b.Height() != 2 || b.Format() != FormatRGB8 {
		t.Fatalf("FromImage() = %dx%d %v, want 3x2 RGB8", b.Width(), b.Height(), b.Format())
	}
	if r, g, bl := b.At(1, 1, 0), b.At(1, 1, 1), b.At(1, 1, 2); r != 10 || g != 20 || bl != 30 {
		t.Errorf("pixel = (%d, %d, %d), want (10, 20, 30)", r, g, bl)
	}

	if _, err := FromImage(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FromImage(nil) error = %v, want ErrInvalidInput", err)
	}
	if _, err := FromImage(image.NewGray(image.Rectangle{})); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FromImage(empty) error = %v, want ErrInvalidInput", err)
	}
}

func TestToImage(t *testing.T) {
	gray := testBuffer(t, 2, 2, FormatGray8, 77)
	img, err := ToImage(gray)
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}
	g, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("ToImage(gray) = %T, want *image.Gray", img)
	}
	if g.GrayAt(1, 1).Y != 77 {
		t.Errorf("gray pixel = %d, want 77", g.GrayAt(1, 1).Y)
	}

	if _, err := ToImage(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ToImage(nil) error = %v, want ErrInvalidInput", err)
	}
}

func TestThumbnail(t *testing.T) {
	img := randomBuffer(t, 800, 400, FormatRGB8, 4)
	thumb, err := Thumbnail(img, 400, 400)
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}
	if thumb.Width() != 400 || thumb.Height() != 200 {
		t.Errorf("Thumbnail() = %dx%d, want 400x200", thumb.Width(), thumb.Height())
	}
}

func TestApplyThenSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	img := randomBuffer(t, 32, 24, FormatRGB8, 6)

	out, err := Apply(img, Cartoon)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := SaveFS(fs, out, "cartoon.jpg"); err != nil {
		t.Fatalf("SaveFS() error = %v", err)
	}
	if ok, _ := afero.Exists(fs, "cartoon.jpg"); !ok {
		t.Error("cartoon.jpg was not written")
	}
}
