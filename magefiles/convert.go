//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const sampleOutDir = "converted"

// Convert builds the CLI and converts one file into converted/, e.g.
// `mage convert photo.png jpg`.
func Convert(path, format string) error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "convert", path, "--to", format, "--out-dir", sampleOutDir, "--force"); err != nil {
		return fmt.Errorf("converting %s to %s: %w", path, format, err)
	}
	return nil
}
