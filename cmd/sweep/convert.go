package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	to          string
	dedupe      bool
	fillMissing bool
	columns     []string
	outDir      string
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Clean a file and write it as CSV or Excel",
		Example: `  sweep convert sales.xlsx --to csv --dedupe --fill-missing
  sweep convert sales.csv --to excel --columns region,units --out ./exports`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.to, "to", "", "target format: csv or excel")
	f.BoolVar(&opts.dedupe, "dedupe", false, "drop duplicate rows, keeping the first")
	f.BoolVar(&opts.fillMissing, "fill-missing", false, "fill numeric gaps with the column mean")
	f.StringSliceVar(&opts.columns, "columns", nil, "columns to keep, in output order")
	f.StringVar(&opts.outDir, "out", ".", "output directory")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, path string, opts *convertOptions) error {
	target, err := tabular.ParseFormat(opts.to)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	table, _, err := loadFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dedupe {
		var report tabular.DedupReport
		table, report = tabular.Deduplicate(table)
		fmt.Fprintf(out, "removed %d duplicate rows of %d\n", report.RowsRemoved, report.RowsBefore)
	}

	if opts.fillMissing {
		var report tabular.FillReport
		table, report = tabular.FillNumericGaps(table)
		fmt.Fprintf(out, "filled %d missing cells\n", report.CellsFilled)
		if len(report.Skipped) > 0 {
			fmt.Fprintf(out, "no values to average in: %s\n", strings.Join(report.Skipped, ", "))
		}
	}

	if len(opts.columns) > 0 {
		table, err = tabular.Project(table, opts.columns)
		if err != nil {
			return fmt.Errorf("--columns: %w", err)
		}
	}

	result, err := tabular.Serialize(table, target, filepath.Base(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", opts.outDir, err)
	}

	dst := filepath.Join(opts.outDir, result.Filename)
	if err := os.WriteFile(dst, result.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}

	fmt.Fprintf(out, "wrote %s (%d rows, %s)\n", dst, table.NRows(), sizeLabel(int64(len(result.Data))))

	return nil
}
