// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the summary printed after a conversion.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/file-converter/pkg/types"
)

// Summary describes one completed conversion.
type Summary struct {
	SessionID string                 `json:"session_id" yaml:"session_id"`
	Source    string                 `json:"source" yaml:"source"`
	From      string                 `json:"from" yaml:"from"`
	To        string                 `json:"to" yaml:"to"`
	Output    string                 `json:"output" yaml:"output"`
	MediaType string                 `json:"media_type" yaml:"media_type"`
	Routine   string                 `json:"routine" yaml:"routine"`
	Size      int64                  `json:"size" yaml:"size"`
	SizeHuman string                 `json:"size_human" yaml:"size_human"`
	Status    types.ConversionStatus `json:"status" yaml:"status"`
}

// NewSummary builds a Summary for an artifact produced from in and written
// to outPath with the given status.
func NewSummary(sessionID string, in types.InputFile, a types.Artifact, outPath string, status types.ConversionStatus) Summary {
	return Summary{
		SessionID: sessionID,
		Source:    in.Name,
		From:      sourceLabel(in.Name),
		To:        strings.ToUpper(a.Format.Extension()),
		Output:    outPath,
		MediaType: a.MediaType,
		Routine:   a.Routine,
		Size:      a.Size(),
		SizeHuman: humanize.IBytes(uint64(a.Size())),
		Status:    status,
	}
}

// Write renders s to w in the requested format.
func Write(w io.Writer, s Summary, format types.ReportFormat) error {
	switch format {
	case types.ReportText, "":
		return writeText(w, s)
	case types.ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding YAML summary: %w", err)
		}
		return enc.Close()
	case types.ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding JSON summary: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported report format %q: use text, yaml, or json", format)
	}
}

// writeText prints the summary lines. A skipped write reports the existing
// output file and no size, since nothing was written.
func writeText(w io.Writer, s Summary) error {
	if s.Status == types.ConversionSkipped {
		_, err := fmt.Fprintf(w, "Skipped: %s\nFrom: %s  To: %s\nOutput: %s (exists, use --force to overwrite)\n",
			s.Source, s.From, s.To, s.Output)
		return err
	}
	_, err := fmt.Fprintf(w, "Converted: %s\nFrom: %s  To: %s\nSize: %s\nOutput: %s\n",
		s.Source, s.From, s.To, s.SizeHuman, s.Output)
	return err
}

// sourceLabel is the upper-cased extension of name, or the whole base name
// when it has none.
func sourceLabel(name string) string {
	base := filepath.Base(name)
	if i := strings.LastIndexByte(base, '.'); i >= 0 && i < len(base)-1 {
		return strings.ToUpper(base[i+1:])
	}
	return strings.ToUpper(base)
}
