// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of writing a converted artifact.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// InputFile is a file selected for conversion.
type InputFile struct {
	// Name is the file name as selected (e.g. "photo.png"). Only the base
	// name is used when deriving the output name.
	Name string `json:"name" yaml:"name"`

	// Size is the byte size of the file.
	Size int64 `json:"size" yaml:"size"`

	// MediaType is the declared media type. It may be empty or generic
	// ("application/octet-stream"), in which case the extension decides.
	MediaType string `json:"media_type,omitempty" yaml:"media_type,omitempty"`

	// Data holds the file contents.
	Data []byte `json:"-" yaml:"-"`
}

// Artifact is the product of a successful conversion.
type Artifact struct {
	// Data is the converted payload.
	Data []byte `json:"-" yaml:"-"`

	// MediaType is the media type of Data.
	MediaType string `json:"media_type" yaml:"media_type"`

	// FileName is the derived output name: the input base name plus the
	// target format's extension.
	FileName string `json:"file_name" yaml:"file_name"`

	// Format is the target format the artifact was produced for.
	Format Format `json:"format" yaml:"format"`

	// Routine names the conversion routine that produced the artifact.
	Routine string `json:"routine" yaml:"routine"`
}

// Size returns the byte length of the payload.
func (a Artifact) Size() int64 { return int64(len(a.Data)) }
