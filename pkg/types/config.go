// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReportFormat selects how the conversion summary is printed.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// ConversionConfig holds settings for a conversion run. Layout thresholds
// (page size, margins, font size, JPEG quality) are fixed and not part of
// the configuration.
type ConversionConfig struct {
	// OutputDir is the directory the artifact is written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"out_dir"`

	// Force overwrites an existing output file instead of skipping it.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`

	// ExtractText makes PDF-to-text read the embedded text layer before
	// falling back to the placeholder payload.
	ExtractText bool `json:"extract_text" yaml:"extract_text" mapstructure:"extract_text"`

	// Report selects the summary format: text, yaml, or json.
	Report ReportFormat `json:"report" yaml:"report" mapstructure:"report"`
}
