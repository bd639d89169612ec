package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webless-hunter/prospect-cli/internal/export"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the persisted results of the last search",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		store, err := openState(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.LoadRun(ctx)
		if err != nil {
			return err
		}
		if run == nil {
			fmt.Println("No search run persisted. Run 'prospect-cli search' first.")
			return nil
		}

		fmt.Printf("Run %s (%s profile, %s)\n", run.ID, run.Profile, run.BusinessType)
		fmt.Printf("Center: %.4f, %.4f\n", run.Center.Lat, run.Center.Lng)
		fmt.Printf("Completed: %s\n", run.CompletedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("Areas scanned: %d/%d\n", run.Progress.CompletedAreas, run.Progress.TotalAreas)
		fmt.Printf("Businesses found: %d, without websites: %d, est. value: %d\n\n",
			run.Progress.TotalBusinesses, run.Progress.PotentialClients, run.TotalEstimatedValue())

		for i, lead := range run.Leads {
			fmt.Printf("%3d. %-30s %-15s %-8s %s\n",
				i+1, lead.Name, lead.Phone, export.FormatDistance(lead.DistanceKM), lead.BusinessType)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
