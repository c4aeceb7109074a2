//go:build !wasm

package ebiten

import (
	"fmt"

	"github.com/jetsetilly/reticle/resources"
)

const windowResource = "window"

func onWindowOpen() (windowGeometry, error) {
	geom := windowGeometry{x: -1}

	s, err := resources.Read(windowResource)
	if err != nil {
		return geom, fmt.Errorf("ebiten: %w", err)
	}
	if s == "" {
		return geom, nil
	}

	_, err = fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return windowGeometry{x: -1}, fmt.Errorf("ebiten: window geometry: %w", err)
	}

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !geom.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	err := resources.Write(windowResource, s)
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
