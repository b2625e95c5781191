package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alvesgeorge/PlanerTrip/internal/service"
)

func (c *cli) exportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every trip and its records as JSON or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" && format != "csv" {
				return fmt.Errorf("--format must be json or csv, got %q", format)
			}
			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return writeExport(cmd, service.NewExportService(c.repo), format, w)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")
	return cmd
}

func writeExport(cmd *cobra.Command, svc *service.ExportService, format string, w io.Writer) error {
	if format == "csv" {
		rows, err := svc.Rows(cmd.Context())
		if err != nil {
			return err
		}
		return service.WriteCSV(w, rows)
	}
	snap, err := svc.Snapshot(cmd.Context())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
