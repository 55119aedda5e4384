package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// LoadImage reads and decodes an image file. The format is sniffed from
// the content, not the extension.
func LoadImage(path string) (image.Image, string, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image %q: %w", path, err)
	}
	return DecodeImage(path, fileData)
}

// DecodeImage decodes in-memory image bytes; name is only used in errors.
func DecodeImage(name string, data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image %q: %w", name, err)
	}
	return img, format, nil
}
