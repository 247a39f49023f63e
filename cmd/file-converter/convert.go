// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/file-converter/internal/convert"
	"github.com/pdiddy/file-converter/internal/report"
	"github.com/pdiddy/file-converter/internal/session"
	"github.com/pdiddy/file-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a file to another format",
	Long: `Convert reads one file, converts it to the format given with --to, and
writes <name>.<ext> into the output directory. An existing output file is
skipped unless --force is set.

Supported conversions:
  image (png, jpg, webp, gif, bmp, tiff)  ->  png, jpg, webp, pdf
  plain text                              ->  pdf
  pdf                                     ->  txt (placeholder; --extract-text reads the text layer)
  anything else                           ->  txt, pdf (bytes copied unchanged)`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("to", "t", "", "target format: png, jpg, webp, pdf, or txt")
	convertCmd.Flags().StringP("out-dir", "o", ".", "directory to write the converted file to")
	convertCmd.Flags().Bool("force", false, "overwrite an existing output file")
	convertCmd.Flags().Bool("extract-text", false, "for PDF to txt, read the embedded text layer before falling back to the placeholder")
	convertCmd.Flags().String("report", "text", "summary format: text, yaml, or json")
	_ = convertCmd.MarkFlagRequired("to")

	_ = viper.BindPFlag("out_dir", convertCmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("force", convertCmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("extract_text", convertCmd.Flags().Lookup("extract-text"))
	_ = viper.BindPFlag("report", convertCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	target, err := types.ParseFormat(to)
	if err != nil {
		return err
	}

	cfg := conversionConfig()

	in, err := readInput(args[0])
	if err != nil {
		return err
	}

	s, err := session.New().Select(in)
	if err != nil {
		return err
	}
	s, err = s.ChooseFormat(target)
	if err != nil {
		return err
	}

	log := logger.With(zap.String("session", s.ID))
	s, err = s.Convert(context.Background(), convert.NewDispatcher(cfg, log))
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	outPath, status := convert.WriteArtifact(*s.Artifact, cfg.OutputDir, cfg.Force, cmd.ErrOrStderr())
	if status == types.ConversionFailed {
		return fmt.Errorf("writing %s failed", outPath)
	}

	summary := report.NewSummary(s.ID, *s.File, *s.Artifact, outPath, status)
	return report.Write(cmd.OutOrStdout(), summary, cfg.Report)
}

// conversionConfig reads the conversion settings from flags, the config
// file, and FILE_CONVERTER_* environment variables, in viper's precedence.
func conversionConfig() types.ConversionConfig {
	outDir := viper.GetString("out_dir")
	if outDir == "" {
		outDir = "."
	}
	return types.ConversionConfig{
		OutputDir:   outDir,
		Force:       viper.GetBool("force"),
		ExtractText: viper.GetBool("extract_text"),
		Report:      types.ReportFormat(viper.GetString("report")),
	}
}
