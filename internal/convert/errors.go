// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/file-converter/pkg/types"
)

// Error kinds. A *ConversionError matches its kind with errors.Is.
var (
	// ErrUnsupportedConversion means no routine is mapped for the
	// (input category, target format) pair.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrDecodeFailure means the input bytes could not be read as the
	// expected source type.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrEncodeFailure means the target encoder or page renderer failed.
	ErrEncodeFailure = errors.New("encode failure")
)

// ConversionError is the single error type surfaced for a failed
// conversion attempt.
type ConversionError struct {
	Kind   error
	Source string
	Target types.Format
	Err    error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("converting %s to %s: %v", e.Source, e.Target, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func decodeFailure(err error) error {
	return &ConversionError{Kind: ErrDecodeFailure, Err: err}
}

func encodeFailure(err error) error {
	return &ConversionError{Kind: ErrEncodeFailure, Err: err}
}
