// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/file-converter/pkg/types"
)

const (
	textFontFamily   = "Helvetica"
	textFontSizePt   = 12.0
	textMarginMM     = 15.0
	textLineWidthMM  = 180.0
	cellPaddingMM    = 1.0
	lineHeightFactor = 1.15
	tabWidth         = 4
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// textToPDF lays plain text out on A4 pages: wrapped to a fixed width at a
// fixed font size, starting at the top margin. The renderer breaks pages.
// Text is drawn with a core font, so characters outside cp1252 render as
// the translator's substitute.
func textToPDF(ctx context.Context, in types.InputFile, _ types.Format) ([]byte, error) {
	text, err := decodeText(in.Data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreator(pdfCreator, true)
	doc.SetMargins(textMarginMM, textMarginMM, textMarginMM)
	doc.SetAutoPageBreak(true, textMarginMM)
	doc.AddPage()
	doc.SetFont(textFontFamily, "", textFontSizePt)
	doc.SetCellMargin(cellPaddingMM)

	// Core fonts are single-byte; translate to cp1252 before measuring.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	lineHeight := textFontSizePt * lineHeightFactor * 25.4 / 72
	width := textLineWidthMM - 2*cellPaddingMM

	for _, line := range wrapLines(tr(text), width, doc.GetStringWidth) {
		doc.CellFormat(textLineWidthMM, lineHeight, line, "", 1, "L", false, 0, "")
	}
	return renderPDF(doc)
}

// decodeText reads UTF-8 or BOM-marked UTF-16 text and normalizes line
// endings. Invalid UTF-8 without a UTF-16 BOM is a decode failure.
func decodeText(data []byte) (string, error) {
	if !bytes.HasPrefix(data, bomUTF16LE) && !bytes.HasPrefix(data, bomUTF16BE) && !utf8.Valid(data) {
		return "", decodeFailure(errors.New("text is not valid UTF-8"))
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", decodeFailure(fmt.Errorf("decoding text: %w", err))
	}
	s := strings.ReplaceAll(string(out), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth)), nil
}

// wrapLines splits text on newlines and greedily wraps each paragraph so no
// line measures wider than width. Runs of spaces inside a line are kept;
// the spaces at a wrap point are dropped. Words longer than a full line are
// broken between bytes. Trailing newlines do not produce empty lines.
func wrapLines(text string, width float64, measure func(string) float64) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		var cur string
		for _, tok := range spacedWords(para) {
			if measure(cur+tok) <= width {
				cur += tok
				continue
			}
			if strings.TrimSpace(cur) != "" {
				lines = append(lines, strings.TrimRight(cur, " "))
				tok = strings.TrimLeft(tok, " ")
			}
			cur = tok
			for measure(cur) > width && len(cur) > 1 {
				cut := breakPoint(cur, width, measure)
				lines = append(lines, cur[:cut])
				cur = cur[cut:]
			}
		}
		lines = append(lines, strings.TrimRight(cur, " "))
	}
	return lines
}

// spacedWords splits s before every word, so each piece carries the spaces
// that precede it. Concatenating the pieces yields s.
func spacedWords(s string) []string {
	var out []string
	start, word := 0, false
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			continue
		}
		if word && s[i-1] == ' ' {
			j := i
			for s[j-1] == ' ' {
				j--
			}
			out = append(out, s[start:j])
			start = j
		}
		word = true
	}
	return append(out, s[start:])
}

// breakPoint returns the longest prefix length of s that fits in width,
// never less than one byte.
func breakPoint(s string, width float64, measure func(string) float64) int {
	n := 1
	for n < len(s) && measure(s[:n+1]) <= width {
		n++
	}
	return n
}
