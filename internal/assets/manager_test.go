package assets

import "testing"

func TestDecodeShippedSprites(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h int
	}{
		{Earth, 128, 128},
		{Background, 195, 422},
	} {
		img, err := Decode(tc.name)
		if err != nil {
			t.Fatalf("Decode(%q): %v", tc.name, err)
		}
		b := img.Bounds()
		if b.Dx() != tc.w || b.Dy() != tc.h {
			t.Errorf("%s is %dx%d, want %dx%d", tc.name, b.Dx(), b.Dy(), tc.w, tc.h)
		}
	}
}

func TestEarthHasTransparentCorners(t *testing.T) {
	img, err := Decode(Earth)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want transparent", a)
	}
	if _, _, _, a := img.At(64, 64).RGBA(); a == 0 {
		t.Error("centre is transparent")
	}
}

func TestDecodeMissing(t *testing.T) {
	if _, err := Decode("moon.png"); err == nil {
		t.Fatal("expected an error for a missing sprite")
	}
}
