package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sweep",
		Short:         "Clean, project and convert CSV and Excel files",
		Long:          `sweep runs the datasweeper cleaning pipeline on local files without starting the HTTP server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newConvertCmd(), newPreviewCmd())

	return root
}

// loadFile reads and parses a local CSV or XLSX file.
func loadFile(path string) (*tabular.Table, int64, error) {
	format, err := tabular.DetectFormat(filepath.Base(path))
	if err != nil {
		return nil, 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	table, err := tabular.Parse(data, format)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", path, err)
	}

	return table, int64(len(data)), nil
}

func sizeLabel(n int64) string {
	return humanize.IBytes(uint64(max(n, 0)))
}
