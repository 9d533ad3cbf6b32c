package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"golang.org/x/image/draw"

	// Регистрация декодеров для image.Decode
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Габариты миниатюры для ленты и альбомов
const (
	ThumbnailWidth  = 300
	ThumbnailHeight = 300
)

// Processor масштабирует изображения и готовит миниатюры
type Processor struct {
	quality int // JPEG качество (1-100)
}

// NewProcessor создает процессор изображений
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &Processor{
		quality: quality,
	}
}

// Thumbnail строит миниатюру с сохранением пропорций.
// Результат всегда JPEG независимо от исходного формата.
func (p *Processor) Thumbnail(reader io.Reader) (io.Reader, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.resize(img, ThumbnailWidth, ThumbnailHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return &buf, nil
}

// resize вписывает изображение в рамку maxWidth x maxHeight
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// Dimensions возвращает размеры изображения
func Dimensions(reader io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// IsValidImage проверяет что поток содержит поддерживаемое изображение
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.DecodeConfig(reader)
	return err == nil
}
