package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AnTengye/accreditation/service"
	"github.com/spf13/cobra"
)

var (
	convertIn      string
	convertOut     string
	convertPublish bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a spreadsheet TSV export into a JSON data set",
	Long: `Convert tab separated rows copied from the accreditation spreadsheet into the
JSON data set read by serve and stats. With --publish the result is also
uploaded to the configured MinIO bucket under data.object.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertIn, "in", "", "TSV export to convert (- for stdin)")
	convertCmd.Flags().StringVar(&convertOut, "out", "contracts.json", "Output JSON file")
	convertCmd.Flags().BoolVar(&convertPublish, "publish", false, "Upload the data set to MinIO")
	_ = convertCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if convertIn != "-" {
		f, err := os.Open(convertIn)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	data, result, err := convertTSV(in)
	if err != nil {
		return err
	}
	if len(result.InvalidLines) > 0 {
		slog.Warn("skipped invalid lines", "count", len(result.InvalidLines), "lines", result.InvalidLines)
	}

	if err := os.WriteFile(convertOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Info("data set written", "path", convertOut, "contracts", len(result.Contracts))

	if convertPublish {
		minioSvc, err := service.NewMinioService(&cfg.Minio)
		if err != nil {
			return fmt.Errorf("failed to initialize MINIO service: %w", err)
		}
		if err := minioSvc.EnsureBucket(cmd.Context()); err != nil {
			return err
		}
		if err := minioSvc.UploadFile(cmd.Context(), cfg.Data.Object, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
			return err
		}
		slog.Info("data set published", "url", minioSvc.ObjectURL(cfg.Data.Object))
	}

	printSummary(cmd.OutOrStdout(), service.Summarize(result.Contracts, 10))
	return nil
}

// convertTSV parses a TSV export and encodes the contracts as an indented JSON array
func convertTSV(r io.Reader) ([]byte, service.TSVResult, error) {
	result, err := service.ParseTSV(r)
	if err != nil {
		return nil, result, err
	}

	data, err := json.MarshalIndent(result.Contracts, "", "  ")
	if err != nil {
		return nil, result, fmt.Errorf("failed to encode contracts: %w", err)
	}
	return append(data, '\n'), result, nil
}
