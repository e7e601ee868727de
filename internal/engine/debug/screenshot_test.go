package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFlipRGBA(t *testing.T) {
	// Two rows, bottom row first as GL returns them
	pixels := []byte{
		1, 1, 1, 255, 2, 2, 2, 255, // bottom
		9, 9, 9, 255, 8, 8, 8, 255, // top
	}
	img, err := FlipRGBA(pixels, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(0, 0); c.R != 9 {
		t.Errorf("top-left = %v, want the last GL row", c)
	}
	if c := img.RGBAAt(1, 1); c.R != 2 {
		t.Errorf("bottom-right = %v, want the first GL row", c)
	}
	if _, err := FlipRGBA(pixels[:5], 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "wavefield")
	sc.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

	name, err := sc.CaptureFromPixels(make([]byte, 3*2*4), 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "wavefield_2026-03-04_05-06-07.000.png"); name != want {
		t.Errorf("name = %s, want %s", name, want)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded bounds %v", b)
	}
	if !strings.HasPrefix(filepath.Base(name), "wavefield_") {
		t.Errorf("unexpected name %s", name)
	}
}
