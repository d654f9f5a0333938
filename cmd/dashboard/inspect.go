package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiboard/internal/analysis"
	"github.com/spacesedan/sentiboard/internal/dataset"
	"github.com/spacesedan/sentiboard/internal/models"
)

func newInspectCmd() *cobra.Command {
	var data string
	var top int
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print dataset size, label distributions and top words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if data != "" {
				cfg.DatasetPath = data
			}
			if top <= 0 {
				top = cfg.TopWords
			}

			ds, err := dataset.Load(cfg.DatasetPath)
			if err != nil {
				return err
			}
			return inspect(cmd.OutOrStdout(), ds, top)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "dataset CSV path (overrides DATASET_PATH)")
	cmd.Flags().IntVar(&top, "top", 0, "number of top words (defaults to TOP_WORDS)")
	return cmd
}

func inspect(out io.Writer, ds *dataset.Dataset, top int) error {
	fmt.Fprintf(out, "Dataset: %s\nTotal Data: %d ulasan\n", ds.Source(), ds.Len())

	for _, col := range models.LabelColumns {
		modal, err := analysis.Modal(ds, col)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s (mode: %s, %d rows)\n", col, modal.Mode, len(modal.Records))

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, c := range modal.Summary.Categories {
			fmt.Fprintf(tw, "  %s\t%d\n", c.Label, c.Count)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nTop %d words\n", top)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, w := range analysis.TopWords(ds.Column(models.ContentColumn.Value), top) {
		fmt.Fprintf(tw, "  %s\t%d\n", w.Word, w.Count)
	}
	return tw.Flush()
}
