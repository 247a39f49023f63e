// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/file-converter/pkg/types"
)

// readInput loads the file at path as a conversion input. The declared
// media type comes from the extension, or from content sniffing when the
// extension is unknown.
func readInput(path string) (types.InputFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.InputFile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return types.InputFile{}, fmt.Errorf("reading %s: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.InputFile{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return types.InputFile{
		Name:      filepath.Base(path),
		Size:      int64(len(data)),
		MediaType: detectMediaType(path, data),
		Data:      data,
	}, nil
}

func detectMediaType(path string, data []byte) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}
	return http.DetectContentType(data)
}
