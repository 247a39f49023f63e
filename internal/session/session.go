// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the selection state of a conversion: the selected
// file, the chosen target format, and the produced artifact. A Session is
// a value; every transition returns a new Session and leaves the receiver
// untouched.
package session

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/pdiddy/file-converter/internal/convert"
	"github.com/pdiddy/file-converter/pkg/types"
)

var (
	ErrNoFile   = errors.New("no file selected")
	ErrNoFormat = errors.New("no target format chosen")
)

// Phase summarizes where a session is in the select → choose → convert flow.
type Phase string

const (
	PhaseEmpty     Phase = "empty"
	PhaseSelected  Phase = "selected"
	PhaseReady     Phase = "ready"
	PhaseConverted Phase = "converted"
)

// Session is the state of a single conversion flow.
type Session struct {
	// ID correlates log lines for one session. It survives Reset.
	ID string

	File     *types.InputFile
	Format   types.Format
	Artifact *types.Artifact
}

// New returns an empty session with a fresh ID.
func New() Session {
	return Session{ID: uuid.NewString()}
}

// Phase reports the current phase.
func (s Session) Phase() Phase {
	switch {
	case s.Artifact != nil:
		return PhaseConverted
	case s.File != nil && s.Format != "":
		return PhaseReady
	case s.File != nil:
		return PhaseSelected
	}
	return PhaseEmpty
}

// CanConvert reports whether Convert has everything it needs.
func (s Session) CanConvert() bool {
	return s.Phase() == PhaseReady
}

// Options lists the target formats offered for the selected file.
func (s Session) Options() []types.Format {
	if s.File == nil {
		return nil
	}
	return convert.FormatOptions(*s.File)
}

// Select replaces the selected file. Any previous format choice and
// artifact are discarded.
func (s Session) Select(f types.InputFile) (Session, error) {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Size, validation.Min(int64(0))),
	)
	if err != nil {
		return s, fmt.Errorf("selecting file: %w", err)
	}

	next := s.Reset()
	next.File = &f
	return next, nil
}

// ChooseFormat sets the target format. It must be one of Options; a
// previous artifact is discarded.
func (s Session) ChooseFormat(f types.Format) (Session, error) {
	if s.File == nil {
		return s, ErrNoFile
	}

	allowed := make([]interface{}, 0, len(types.Formats))
	for _, opt := range s.Options() {
		allowed = append(allowed, opt)
	}
	if err := validation.Validate(f, validation.Required, validation.In(allowed...)); err != nil {
		return s, fmt.Errorf("choosing format %q for %s: %w", f, s.File.Name, err)
	}

	next := s
	next.Format = f
	next.Artifact = nil
	return next, nil
}

// Convert runs c on the selected file and target format. On failure the
// returned session is s unchanged, so no partial artifact is exposed.
func (s Session) Convert(ctx context.Context, c convert.Converter) (Session, error) {
	if s.File == nil {
		return s, ErrNoFile
	}
	if s.Format == "" {
		return s, ErrNoFormat
	}

	a, err := c.Convert(ctx, *s.File, s.Format)
	if err != nil {
		return s, err
	}

	next := s
	next.Artifact = &a
	return next, nil
}

// StartOver keeps the selected file and clears the format and artifact.
func (s Session) StartOver() Session {
	next := s
	next.Format = ""
	next.Artifact = nil
	return next
}

// Reset clears everything except the session ID.
func (s Session) Reset() Session {
	return Session{ID: s.ID}
}
