package game

import (
	"image"
	"testing"
	"time"

	"earthdodge/internal/scene"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"dodge", ModeDodge, false},
		{"", ModeDodge, false},
		{"sandbox", ModeSandbox, false},
		{"arcade", ModeDodge, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestButtons(t *testing.T) {
	buttons := layoutButtons(390, 844)
	screen := image.Rect(0, 0, 390, 844)

	for _, b := range buttons {
		if !b.Rect.In(screen) {
			t.Errorf("button %q at %v is off screen", b.Label, b.Rect)
		}
		center := image.Pt((b.Rect.Min.X+b.Rect.Max.X)/2, (b.Rect.Min.Y+b.Rect.Max.Y)/2)
		dir, ok := buttonAt(buttons, center)
		if !ok || dir != b.Dir {
			t.Errorf("tap on %q = %v, %v", b.Label, dir, ok)
		}
	}

	if _, ok := buttonAt(buttons, image.Pt(195, 422)); ok {
		t.Error("tap on Earth hit a button")
	}
	if buttons[0].Dir != scene.ScaleDown || buttons[1].Dir != scene.ScaleUp {
		t.Error("buttons swapped")
	}
}

func TestFrameDuration(t *testing.T) {
	if d := frameDuration(60); d != time.Second/60 {
		t.Errorf("frameDuration(60) = %s", d)
	}
	if d := frameDuration(0); d != time.Second/60 {
		t.Errorf("frameDuration(0) = %s", d)
	}
}
