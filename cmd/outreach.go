package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/webless-hunter/prospect-cli/internal/outreach"
)

var outreachCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Generate a personalized outreach message for a lead",
	Long:  "Renders the outreach template for the numbered lead from the last search and prints the WhatsApp link for it.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		index, _ := cmd.Flags().GetInt("lead")

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
			return eris.New("no leads available: run 'prospect-cli search' first")
		}
		if index < 1 || index > len(run.Leads) {
			return eris.Errorf("--lead must be between 1 and %d", len(run.Leads))
		}

		profile, err := store.LoadProfile(ctx)
		if err != nil {
			return err
		}

		lead := run.Leads[index-1]
		fmt.Println(outreach.Message(profile, &lead))
		fmt.Println()
		fmt.Println("WhatsApp:", outreach.WhatsAppURL(profile, &lead))
		return nil
	},
}

func init() {
	outreachCmd.Flags().Int("lead", 0, "lead number from 'status' output")
	_ = outreachCmd.MarkFlagRequired("lead")
	rootCmd.AddCommand(outreachCmd)
}
