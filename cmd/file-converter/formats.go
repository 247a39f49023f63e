// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/file-converter/internal/convert"
	"github.com/pdiddy/file-converter/internal/session"
)

var formatsCmd = &cobra.Command{
	Use:   "formats <file>",
	Short: "List the formats a file can be converted to",
	Long: `Formats classifies the file by media type (falling back to its
extension) and lists the target formats offered for that category.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	in, err := readInput(args[0])
	if err != nil {
		return err
	}
	s, err := session.New().Select(in)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s)\n", in.Name, convert.CategoryOf(in))
	for _, f := range s.Options() {
		fmt.Fprintf(w, "  %-5s  %-13s  -> %s\n", f, f.Label(), convert.OutputFileName(in.Name, f))
	}
	return nil
}
