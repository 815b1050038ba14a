package main

import (
	"bytes"
	"fmt"
	"io"

	"lingo/config"
	"lingo/internal/infra/content"
	"lingo/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type contentFlags struct {
	path      string
	bucketURL string
	key       string
	strict    bool
}

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the lesson dataset",
	}

	cmd.AddCommand(newContentCheckCmd())

	return cmd
}

func newContentCheckCmd() *cobra.Command {
	var flags contentFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the dataset and report size, id gaps and empty lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.contentConfig()
			if err != nil {
				return err
			}

			return checkContent(cmd, cfg, flags.strict)
		},
	}

	cmd.Flags().StringVar(&flags.path, "path", "", "Local dataset file (skips service configuration)")
	cmd.Flags().StringVar(&flags.bucketURL, "bucket-url", "", "Blob bucket URL holding the dataset (skips service configuration)")
	cmd.Flags().StringVar(&flags.key, "key", "german_content.json", "Object key inside --bucket-url")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail when ids have gaps or lessons are empty")

	return cmd
}

// contentConfig prefers explicit flags so the check runs without database settings.
func (f *contentFlags) contentConfig() (config.ContentConfig, error) {
	if f.path != "" || f.bucketURL != "" {
		return config.ContentConfig{Path: f.path, BucketURL: f.bucketURL, Key: f.key}, nil
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return config.ContentConfig{}, err
	}

	return cfg.Content, nil
}

func checkContent(cmd *cobra.Command, cfg config.ContentConfig, strict bool) error {
	data, err := content.ReadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	catalog, err := content.Parse(data)
	if err != nil {
		return err
	}

	checksum, err := util.Checksum(bytes.NewReader(data))
	if err != nil {
		return err
	}

	report := catalog.Inspect()
	if err := writeReport(cmd.OutOrStdout(), report, int64(len(data)), checksum); err != nil {
		return err
	}

	if strict && (report.MissingCount > 0 || len(report.Empty) > 0) {
		return errors.Errorf("dataset has %d missing ids and %d empty lessons", report.MissingCount, len(report.Empty))
	}

	return nil
}

func writeReport(w io.Writer, report content.Report, size int64, checksum string) error {
	_, err := fmt.Fprintf(w,
		"lessons:  %d\nid range: %d..%d\nmissing:  %s\nempty:    %s\nsize:     %s\nsha256:   %s\n",
		report.Total,
		report.FirstID, report.LastID,
		formatMissing(report),
		util.FormatIDs(report.Empty),
		util.FormatBytes(size),
		checksum,
	)

	return errors.WithStack(err)
}

func formatMissing(report content.Report) string {
	listed := util.FormatIDs(report.MissingIDs)
	if hidden := report.MissingCount - uint64(len(report.MissingIDs)); hidden > 0 {
		return fmt.Sprintf("%s (+%d more)", listed, hidden)
	}

	return listed
}
