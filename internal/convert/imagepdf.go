// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/file-converter/pkg/types"
)

const (
	// A4 in millimetres.
	pageShortMM = 210.0
	pageLongMM  = 297.0

	imageMarginMM = 10.0

	pdfCreator   = "file-converter"
	pdfImageName = "source"
)

// PageLayout places a single image on an A4 page. All lengths are in
// millimetres.
type PageLayout struct {
	Landscape  bool
	PageWidth  float64
	PageHeight float64
	X          float64
	Y          float64
	Width      float64
	Height     float64
}

// Orientation returns the fpdf orientation code for the page.
func (l PageLayout) Orientation() string {
	if l.Landscape {
		return "L"
	}
	return "P"
}

// FitImage computes the page layout for an image of the given pixel size:
// landscape iff wider than tall, scaled uniformly to fit inside the margins
// and anchored at the top-left margin.
func FitImage(pxWidth, pxHeight int) PageLayout {
	l := PageLayout{
		Landscape:  pxWidth > pxHeight,
		PageWidth:  pageShortMM,
		PageHeight: pageLongMM,
		X:          imageMarginMM,
		Y:          imageMarginMM,
	}
	if l.Landscape {
		l.PageWidth, l.PageHeight = pageLongMM, pageShortMM
	}

	availW := l.PageWidth - 2*imageMarginMM
	availH := l.PageHeight - 2*imageMarginMM
	w, h := float64(pxWidth), float64(pxHeight)
	scale := min(availW/w, availH/h)

	l.Width = w * scale
	l.Height = h * scale
	return l
}

// imageToPDF embeds a raster image as the only content of a one-page PDF.
func imageToPDF(ctx context.Context, in types.InputFile, _ types.Format) ([]byte, error) {
	src, err := decodeImage(in.Data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := src.Bounds()
	layout := FitImage(b.Dx(), b.Dy())

	// The page renderer reads PNG, JPEG and GIF only; normalize through a
	// lossless PNG so every decodable input embeds the same way.
	embedded, err := encodeRaster(drawCanvas(src, nil), types.FormatPNG)
	if err != nil {
		return nil, err
	}

	doc := fpdf.New(layout.Orientation(), "mm", "A4", "")
	doc.SetCreator(pdfCreator, true)
	doc.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(pdfImageName, opts, bytes.NewReader(embedded))
	doc.ImageOptions(pdfImageName, layout.X, layout.Y, layout.Width, layout.Height, false, opts, 0, "")

	return renderPDF(doc)
}

func renderPDF(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, encodeFailure(fmt.Errorf("rendering PDF: %w", err))
	}
	return buf.Bytes(), nil
}
