package startup

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/png"

	"golang.org/x/image/draw"
)

//go:embed "assets/backdrop.png"
var backdrop []byte

// ErrAsset is the wrapping error for problems with the embedded assets.
// an ErrAsset is always fatal
var ErrAsset = errors.New("asset")

// DrawImage decodes the embedded backdrop image and draws it with its
// top-left corner at the origin of the destination
func DrawImage(dst draw.Image) error {
	return drawImage(dst, backdrop)
}

func drawImage(dst draw.Image, data []byte) error {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: backdrop: %w", ErrAsset, err)
	}

	r := img.Bounds().Sub(img.Bounds().Min)
	draw.Draw(dst, r, img, img.Bounds().Min, draw.Src)

	return nil
}
