package thumb

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const (
	// ThumbMaxWidth 缩略图最大宽度
	ThumbMaxWidth = 400
	// ThumbMaxHeight 缩略图最大高度
	ThumbMaxHeight = 300
	// ViewMaxWidth 预览图最大宽度
	ViewMaxWidth = 1920
	// ViewMaxHeight 预览图最大高度
	ViewMaxHeight = 1080
)

// ErrUnsupportedFormat 无法用内置解码器生成缩略图的格式，
// 调用方应回退为直接复用原图
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Thumb 缩略图
type Thumb struct {
	src image.Image
	ext string
}

// NewThumbFromFile 从文件数据获取新的Thumb对象，
// 尝试通过扩展名ext解码图像
func NewThumbFromFile(file io.Reader, ext string) (*Thumb, error) {
	// 无扩展名时
	if ext == "" {
		return nil, fmt.Errorf("unknown image format: %w", ErrUnsupportedFormat)
	}

	var err error
	var img image.Image
	switch ext {
	case "jpg", "jpeg":
		img, err = jpeg.Decode(file)
	case "gif":
		img, err = gif.Decode(file)
	case "png":
		img, err = png.Decode(file)
	default:
		return nil, fmt.Errorf("unknown image format %q: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse image: %s (%w)", err, ErrUnsupportedFormat)
	}

	return &Thumb{
		src: img,
		ext: ext,
	}, nil
}

// GetThumb 生成给定最大尺寸的缩略图
func (image *Thumb) GetThumb(width, height uint) {
	image.src = Thumbnail(width, height, image.src)
}

// GetSize 获取图像尺寸
func (image *Thumb) GetSize() (int, int) {
	b := image.src.Bounds()
	return b.Max.X, b.Max.Y
}

// Save 将图像编码后写入给定Writer
func (image *Thumb) Save(w io.Writer) (err error) {
	switch image.ext {
	case "png":
		err = png.Encode(w, image.src)
	default:
		err = jpeg.Encode(w, image.src, &jpeg.Options{Quality: 85})
	}

	return err
}

// Thumbnail will downscale provided image to max width and height preserving
// original aspect ratio and using the interpolation function interp.
// It will return original image, without processing it, if original sizes
// are already smaller than provided constraints.
func Thumbnail(maxWidth, maxHeight uint, img image.Image) image.Image {
	origBounds := img.Bounds()
	origWidth := uint(origBounds.Dx())
	origHeight := uint(origBounds.Dy())
	newWidth, newHeight := origWidth, origHeight

	// Return original image if it have same or smaller size as constraints
	if maxWidth >= origWidth && maxHeight >= origHeight {
		return img
	}

	// Preserve aspect ratio
	if origWidth > maxWidth {
		newHeight = uint(origHeight * maxWidth / origWidth)
		if newHeight < 1 {
			newHeight = 1
		}
		newWidth = maxWidth
	}

	if newHeight > maxHeight {
		newWidth = uint(newWidth * maxHeight / newHeight)
		if newWidth < 1 {
			newWidth = 1
		}
		newHeight = maxHeight
	}
	return Resize(newWidth, newHeight, img)
}

// Resize 将图像重采样到给定尺寸
func Resize(newWidth, newHeight uint, img image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, int(newWidth), int(newHeight)))
	draw.BiLinear.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)
	return dst
}
