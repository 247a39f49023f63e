// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/file-converter/pkg/types"
)

const placeholderTemplate = `PDF File: %s
Size: %s

Note: Full PDF text extraction is not supported.
This is a placeholder conversion.`

// PlaceholderText returns the fixed payload written for PDF-to-text. It
// names the source file and its size and never inspects the document.
func PlaceholderText(in types.InputFile) string {
	return fmt.Sprintf(placeholderTemplate, filepath.Base(in.Name), humanize.IBytes(uint64(max(in.Size, 0))))
}

// extractTextLayer reads the embedded text layer of every page. Scanned
// pages without a text layer contribute nothing. The parser panics on some
// malformed input, so panics are reported as errors.
func extractTextLayer(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	fonts := make(map[string]*pdf.Font)
	var parts []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}
		pageText, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", i, err)
		}
		if trimmed := strings.TrimSpace(pageText); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}
