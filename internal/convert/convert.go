// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements single-file format conversion. A lookup table
// keyed by (input category, target format) selects the routine; routines
// re-encode rasters, lay images or text out as PDF pages, or emit the
// PDF-to-text placeholder.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/file-converter/pkg/types"
)

// Converter turns an input file into an artifact of the target format.
type Converter interface {
	Convert(ctx context.Context, in types.InputFile, target types.Format) (types.Artifact, error)
}

// Routine identifies a conversion routine.
type Routine string

const (
	RoutineReencode    Routine = "reencode"
	RoutineImageToPDF  Routine = "image-to-pdf"
	RoutineTextToPDF   Routine = "text-to-pdf"
	RoutinePDFToText   Routine = "pdf-to-text"
	RoutinePassthrough Routine = "passthrough"
)

type routeKey struct {
	category types.Category
	target   types.Format
}

var routes = buildRoutes()

func buildRoutes() map[routeKey]Routine {
	r := map[routeKey]Routine{
		{types.CategoryImage, types.FormatPNG}:    RoutineReencode,
		{types.CategoryImage, types.FormatJPG}:    RoutineReencode,
		{types.CategoryImage, types.FormatWEBP}:   RoutineReencode,
		{types.CategoryImage, types.FormatPDF}:    RoutineImageToPDF,
		{types.CategoryText, types.FormatPDF}:     RoutineTextToPDF,
		{types.CategoryDocument, types.FormatTXT}: RoutinePDFToText,
	}
	// Unclassified input is copied through whatever the target.
	for _, f := range types.Formats {
		r[routeKey{types.CategoryOther, f}] = RoutinePassthrough
	}
	return r
}

// Route returns the routine mapped for a category and target format.
func Route(category types.Category, target types.Format) (Routine, bool) {
	r, ok := routes[routeKey{category, target}]
	return r, ok
}

type routineFunc func(ctx context.Context, in types.InputFile, target types.Format) ([]byte, error)

// Dispatcher is the production Converter.
type Dispatcher struct {
	routines map[Routine]routineFunc
	logger   *zap.Logger
}

// NewDispatcher builds a Dispatcher. ExtractText in cfg enables reading the
// PDF text layer before falling back to the placeholder. A nil logger
// disables logging.
func NewDispatcher(cfg types.ConversionConfig, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{logger: logger}
	d.routines = map[Routine]routineFunc{
		RoutineReencode:    reencodeImage,
		RoutineImageToPDF:  imageToPDF,
		RoutineTextToPDF:   textToPDF,
		RoutinePDFToText:   d.pdfToText(cfg.ExtractText),
		RoutinePassthrough: passthrough,
	}
	return d
}

// Convert runs the routine mapped for the input's category and target.
// Failures are *ConversionError values except for context cancellation.
// No partial artifact is returned on error.
func (d *Dispatcher) Convert(ctx context.Context, in types.InputFile, target types.Format) (types.Artifact, error) {
	category := CategoryOf(in)
	routine, ok := Route(category, target)
	if !ok {
		return types.Artifact{}, &ConversionError{
			Kind:   ErrUnsupportedConversion,
			Source: in.Name,
			Target: target,
			Err:    fmt.Errorf("no routine for %s input", category),
		}
	}
	if err := ctx.Err(); err != nil {
		return types.Artifact{}, err
	}

	log := d.logger.With(
		zap.String("source", in.Name),
		zap.String("category", string(category)),
		zap.String("target", string(target)),
		zap.String("routine", string(routine)),
	)
	log.Debug("conversion started", zap.Int64("size", in.Size))

	data, err := d.routines[routine](ctx, in, target)
	if err != nil {
		var ce *ConversionError
		if errors.As(err, &ce) {
			ce.Source = in.Name
			ce.Target = target
		}
		log.Debug("conversion failed", zap.Error(err))
		return types.Artifact{}, err
	}

	mediaType := target.MediaType()
	if routine == RoutinePassthrough {
		mediaType = passthroughMediaType(in)
	}

	a := types.Artifact{
		Data:      data,
		MediaType: mediaType,
		FileName:  OutputFileName(in.Name, target),
		Format:    target,
		Routine:   string(routine),
	}
	log.Debug("conversion finished", zap.String("output", a.FileName), zap.Int64("output_size", a.Size()))
	return a, nil
}

func (d *Dispatcher) pdfToText(extract bool) routineFunc {
	return func(_ context.Context, in types.InputFile, _ types.Format) ([]byte, error) {
		if extract {
			text, err := extractTextLayer(in.Data)
			if err == nil && strings.TrimSpace(text) != "" {
				return []byte(text), nil
			}
			d.logger.Debug("no usable text layer, writing placeholder",
				zap.String("source", in.Name), zap.Error(err))
		}
		return []byte(PlaceholderText(in)), nil
	}
}

func passthrough(_ context.Context, in types.InputFile, _ types.Format) ([]byte, error) {
	return in.Data, nil
}

func passthroughMediaType(in types.InputFile) string {
	if mt := baseMediaType(in.MediaType); mt != "" {
		return mt
	}
	return mediaTypeOctetStream
}

// WriteArtifact writes a into outDir under its derived file name and
// prints a status line to w. An existing file is left untouched unless
// force is set.
func WriteArtifact(a types.Artifact, outDir string, force bool, w io.Writer) (string, types.ConversionStatus) {
	if outDir == "" {
		outDir = "."
	}
	outPath := filepath.Join(outDir, a.FileName)

	if !force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", outPath)
			return outPath, types.ConversionSkipped
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", outPath, err)
		return outPath, types.ConversionFailed
	}

	if err := os.WriteFile(outPath, a.Data, 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", outPath, err)
		return outPath, types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s\n", outPath)
	return outPath, types.ConversionDone
}
