package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite names shipped with the game.
const (
	Earth      = "earth.png"
	Background = "background.png"
)

//go:embed images/*.png
var projectAssets embed.FS

// Decode reads an embedded PNG without touching the GPU
func Decode(name string) (image.Image, error) {
	fileData, err := projectAssets.ReadFile("images/" + name)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}
	return img, nil
}

// LoadImage loads an embedded PNG into VRAM
func LoadImage(name string) (*ebiten.Image, error) {
	img, err := Decode(name)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
