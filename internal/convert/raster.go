// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"github.com/HugoSmits86/nativewebp"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/file-converter/pkg/types"
)

// jpegQuality is the only lossy setting; PNG and WebP output is lossless.
const jpegQuality = 90

// reencodeImage decodes a raster image at native resolution, draws it onto
// a canvas of the same size and exports the canvas in the target format.
func reencodeImage(ctx context.Context, in types.InputFile, target types.Format) ([]byte, error) {
	src, err := decodeImage(in.Data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// JPEG has no alpha channel; flatten onto white rather than black.
	var background image.Image
	if target == types.FormatJPG {
		background = image.NewUniform(color.White)
	}
	return encodeRaster(drawCanvas(src, background), target)
}

// decodeImage decodes any registered raster format.
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeFailure(fmt.Errorf("decoding image: %w", err))
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, decodeFailure(errors.New("image has no pixels"))
	}
	return img, nil
}

// drawCanvas copies src onto a fresh NRGBA canvas anchored at the origin.
// A non-nil background is painted first and src is composited over it.
func drawCanvas(src image.Image, background image.Image) *image.NRGBA {
	b := src.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if background == nil {
		draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Src)
		return canvas
	}
	draw.Draw(canvas, canvas.Bounds(), background, image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Over)
	return canvas
}

// encodeRaster exports img in one of the raster formats.
func encodeRaster(img image.Image, target types.Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch target {
	case types.FormatPNG:
		err = png.Encode(&buf, img)
	case types.FormatJPG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case types.FormatWEBP:
		err = nativewebp.Encode(&buf, img, nil)
	default:
		err = fmt.Errorf("%s is not a raster format", target)
	}
	if err != nil {
		return nil, encodeFailure(fmt.Errorf("encoding %s: %w", target, err))
	}
	return buf.Bytes(), nil
}
