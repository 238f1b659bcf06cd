package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Print the first rows and column kinds of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 1 {
				return fmt.Errorf("--rows must be positive, got %d", rows)
			}

			table, size, err := loadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d rows x %d columns, %s\n", args[0], table.NRows(), table.NCols(), sizeLabel(size))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			names := table.Names()
			kinds := make([]string, len(names))
			for i := range names {
				kinds[i] = strings.ToLower(string(table.Kind(i)))
			}
			fmt.Fprintln(tw, strings.Join(names, "\t"))
			fmt.Fprintln(tw, strings.Join(kinds, "\t"))

			for _, row := range table.Head(rows) {
				cells := make([]string, len(row))
				for i, v := range row {
					cells[i] = tabular.FormatCell(v)
				}
				fmt.Fprintln(tw, strings.Join(cells, "\t"))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 5, "number of rows to print")

	return cmd
}
