package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

const filePerm = 0o644

// SavePNG encodes img to path through a temporary sibling file and a rename,
// so path either keeps its old content or holds the complete new image.
// The parent directory must exist.
func SavePNG(path string, img image.Image) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// LoadMaster decodes a previously written master PNG.
func LoadMaster(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open master: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode master %s: %w", path, err)
	}
	return img, nil
}
