// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()

	t.Run("media type from extension", func(t *testing.T) {
		in, err := readInput(writeInput(t, dir, "notes.txt", "hello world"))
		require.NoError(t, err)
		assert.Equal(t, "notes.txt", in.Name)
		assert.Equal(t, int64(11), in.Size)
		assert.Contains(t, in.MediaType, "text/plain")
	})

	t.Run("media type sniffed without extension", func(t *testing.T) {
		in, err := readInput(writeInput(t, dir, "scan", "%PDF-1.4\n"))
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", in.MediaType)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readInput(filepath.Join(dir, "nope.png"))
		require.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := readInput(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "report.pdf", "%PDF-1.4 broken")
	outDir := filepath.Join(dir, "out")

	out, err := runCLI(t, "convert", src, "--to", "txt", "--out-dir", outDir, "--report", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "source: report.pdf")
	assert.Contains(t, out, "to: TXT")

	data, err := os.ReadFile(filepath.Join(outDir, "report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "PDF File: report.pdf")
}

func TestConvertCommand_Unsupported(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "notes.txt", "hello")

	_, err := runCLI(t, "convert", src, "--to", "png", "--out-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "png")
}

func TestFormatsCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "notes.txt", "hello")

	out, err := runCLI(t, "formats", src)
	require.NoError(t, err)
	assert.Contains(t, out, "notes.txt (text)")
	assert.Contains(t, out, "notes.pdf")
}

func TestConvertCommand_SkipsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "notes.dat", "\x00\x01\x02payload")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	existing := writeInput(t, outDir, "notes.txt", "keep me")

	out, err := runCLI(t, "convert", src, "--to", "txt", "--out-dir", outDir, "--report", "text", "--force=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped: notes.dat")
	assert.NotContains(t, out, "Converted:")

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}
