package mediameta

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/tiff"
)

// ProbeDimensions decodes only the image header to learn pixel dimensions.
// Used as a fallback when the EXIF block does not carry them. Unknown
// formats return zero dimensions without an error.
func ProbeDimensions(rs io.ReadSeeker) (width, height int, err error) {
	if _, err = rs.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}

	cfg, _, err := image.DecodeConfig(rs)
	if err != nil {
		if err == image.ErrFormat {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	return cfg.Width, cfg.Height, nil
}
