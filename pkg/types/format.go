// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Format identifies a conversion target.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatWEBP Format = "webp"
	FormatPDF  Format = "pdf"
	FormatTXT  Format = "txt"
)

// Formats lists every recognized target format in display order.
var Formats = []Format{FormatPNG, FormatJPG, FormatWEBP, FormatPDF, FormatTXT}

type formatInfo struct {
	mediaType string
	label     string
}

var formatTable = map[Format]formatInfo{
	FormatPNG:  {mediaType: "image/png", label: "PNG Image"},
	FormatJPG:  {mediaType: "image/jpeg", label: "JPG Image"},
	FormatWEBP: {mediaType: "image/webp", label: "WEBP Image"},
	FormatPDF:  {mediaType: "application/pdf", label: "PDF Document"},
	FormatTXT:  {mediaType: "text/plain", label: "Text File"},
}

// ParseFormat resolves a user-supplied format name. Matching is
// case-insensitive, ignores a leading dot, and accepts "jpeg" for jpg.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	if name == "jpeg" {
		name = string(FormatJPG)
	}
	f := Format(name)
	if !f.Valid() {
		return "", fmt.Errorf("unknown format %q: use one of %s", s, strings.Join(formatNames(), ", "))
	}
	return f, nil
}

// Valid reports whether f is one of the recognized formats.
func (f Format) Valid() bool {
	_, ok := formatTable[f]
	return ok
}

// Extension returns the canonical filename extension, without the dot.
func (f Format) Extension() string { return string(f) }

// MediaType returns the IANA media type written for f.
func (f Format) MediaType() string { return formatTable[f].mediaType }

// Label returns the human-readable name shown when listing options.
func (f Format) Label() string { return formatTable[f].label }

// IsRaster reports whether f is a raster image format.
func (f Format) IsRaster() bool {
	return f == FormatPNG || f == FormatJPG || f == FormatWEBP
}

func formatNames() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return names
}

// Category is the media category of an input file. It decides which
// conversion routines apply.
type Category string

const (
	CategoryImage    Category = "image"
	CategoryText     Category = "text"
	CategoryDocument Category = "document"
	CategoryOther    Category = "other"
)
