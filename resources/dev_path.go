//go:build !release

package resources

const configDir = ".reticle"

func resourcePath() (string, error) {
	return configDir, nil
}
