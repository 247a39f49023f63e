// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/pdiddy/file-converter/pkg/types"
)

const mediaTypeOctetStream = "application/octet-stream"

// imageExtensions are recognized as images when the declared media type
// says nothing useful.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// formatOptions lists the targets offered for each input category.
var formatOptions = map[types.Category][]types.Format{
	types.CategoryImage:    {types.FormatPNG, types.FormatJPG, types.FormatWEBP, types.FormatPDF},
	types.CategoryText:     {types.FormatPDF},
	types.CategoryDocument: {types.FormatTXT},
	types.CategoryOther:    {types.FormatTXT, types.FormatPDF},
}

// CategoryOf classifies an input by its declared media type, falling back
// to the filename extension when the media type is absent or generic.
func CategoryOf(in types.InputFile) types.Category {
	mt := baseMediaType(in.MediaType)
	ext := strings.ToLower(filepath.Ext(in.Name))

	switch {
	case strings.HasPrefix(mt, "image/"):
		return types.CategoryImage
	case strings.HasPrefix(mt, "text/") || ext == ".txt":
		return types.CategoryText
	case mt == "application/pdf" || ext == ".pdf":
		return types.CategoryDocument
	case (mt == "" || mt == mediaTypeOctetStream) && imageExtensions[ext]:
		return types.CategoryImage
	}
	return types.CategoryOther
}

// FormatOptions returns the target formats offered for in, in display order.
func FormatOptions(in types.InputFile) []types.Format {
	opts := formatOptions[CategoryOf(in)]
	out := make([]types.Format, len(opts))
	copy(out, opts)
	return out
}

// baseMediaType lowercases a media type and strips its parameters.
func baseMediaType(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(s); err == nil {
		return mt
	}
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}
