// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/file-converter/pkg/types"
)

const fallbackBaseName = "converted"

// OutputFileName derives the artifact name from the input name: directory
// parts and the final extension are dropped and the target's canonical
// extension is appended. A leading dot (".profile") is not an extension.
func OutputFileName(name string, target types.Format) string {
	return BaseName(name) + "." + target.Extension()
}

// BaseName returns the input name without directory parts or its final
// extension.
func BaseName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		return fallbackBaseName
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}
