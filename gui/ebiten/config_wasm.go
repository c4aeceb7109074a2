//go:build wasm

package ebiten

// window geometry is not saved in the browser
func onWindowOpen() (windowGeometry, error) {
	return windowGeometry{x: -1}, nil
}

func onWindowClose(_ windowGeometry) error {
	return nil
}
