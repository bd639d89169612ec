package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/webless-hunter/prospect-cli/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the persisted lead list as CSV, JSON, or XLSX",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		selection, _ := cmd.Flags().GetIntSlice("leads")

		store, err := openState(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.LoadRun(ctx)
		if err != nil {
			return err
		}
		if run == nil || len(run.Leads) == 0 {
			return eris.New("no leads to export: run 'prospect-cli search' first")
		}

		leads := run.Leads
		if len(selection) > 0 {
			leads = leads[:0:0]
			for _, n := range selection {
				if n < 1 || n > len(run.Leads) {
					return eris.Errorf("--leads values must be between 1 and %d", len(run.Leads))
				}
				leads = append(leads, run.Leads[n-1])
			}
		}

		w := os.Stdout
		if out != "" && out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			w = f
		}

		switch format {
		case "csv":
			err = export.CSV(w, leads)
		case "json":
			err = export.JSON(w, leads)
		case "xlsx":
			if out == "" || out == "-" {
				return eris.New("--out is required for xlsx export")
			}
			err = export.XLSX(w, leads)
		default:
			return eris.Errorf("unknown format %q (valid: csv, json, xlsx)", format)
		}
		if err != nil {
			return err
		}

		if out != "" && out != "-" {
			fmt.Printf("Exported %d leads to %s\n", len(leads), out)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "csv", "output format: csv, json, or xlsx")
	exportCmd.Flags().String("out", "-", "output file, or - for stdout")
	exportCmd.Flags().IntSlice("leads", nil, "export only these lead numbers from 'status' output")
	rootCmd.AddCommand(exportCmd)
}
