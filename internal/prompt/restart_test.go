package prompt

import (
	"image"
	"testing"
)

func TestConfirmRunsCallbackOnce(t *testing.T) {
	r := NewRestart(390, 844)
	if r.Visible() {
		t.Fatal("prompt visible before game over")
	}
	if r.Confirm() {
		t.Fatal("hidden prompt confirmed")
	}

	calls := 0
	r.PresentRestartPrompt(func() { calls++ })
	if !r.Visible() {
		t.Fatal("prompt not shown")
	}

	if !r.Confirm() {
		t.Fatal("Confirm returned false")
	}
	r.Confirm()
	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
	if r.Visible() {
		t.Fatal("prompt still visible")
	}
}

func TestHandleTaps(t *testing.T) {
	r := NewRestart(390, 844)
	calls := 0
	r.PresentRestartPrompt(func() { calls++ })

	btn := r.ButtonRect()
	outside := image.Pt(btn.Min.X-5, btn.Min.Y-5)
	if r.HandleTaps([]image.Point{outside}) {
		t.Fatal("tap outside the button confirmed")
	}

	center := image.Pt((btn.Min.X+btn.Max.X)/2, (btn.Min.Y+btn.Max.Y)/2)
	if !r.HandleTaps([]image.Point{outside, center}) {
		t.Fatal("tap on the button ignored")
	}
	if calls != 1 {
		t.Fatalf("calls = %d", calls)
	}
}

func TestButtonInsideScreen(t *testing.T) {
	for _, size := range []image.Point{{390, 844}, {320, 240}, {1280, 720}} {
		r := NewRestart(size.X, size.Y)
		if !r.ButtonRect().In(image.Rect(0, 0, size.X, size.Y)) {
			t.Errorf("button %v outside %v screen", r.ButtonRect(), size)
		}
	}
}

func TestRepresentReplacesCallback(t *testing.T) {
	r := NewRestart(390, 844)
	first, second := 0, 0
	r.PresentRestartPrompt(func() { first++ })
	r.PresentRestartPrompt(func() { second++ })
	r.Confirm()
	if first != 0 || second != 1 {
		t.Fatalf("first = %d, second = %d", first, second)
	}
}
