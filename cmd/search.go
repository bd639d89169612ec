package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webless-hunter/prospect-cli/internal/enrich"
	"github.com/webless-hunter/prospect-cli/internal/export"
	"github.com/webless-hunter/prospect-cli/internal/model"
	"github.com/webless-hunter/prospect-cli/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run an expanding-radius search for businesses without websites",
	Long:  "Scans the area around a center in expanding radius tiers, deduplicates results, and qualifies operational businesses lacking a website as leads.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		location, _ := cmd.Flags().GetString("location")
		profile, _ := cmd.Flags().GetString("intensity")
		businessType, _ := cmd.Flags().GetString("type")

		if location == "" {
			return fmt.Errorf("--location is required (coordinates or an address)")
		}
		if profile == "" {
			profile = cfg.Search.Profile
		}
		if businessType == "" {
			businessType = cfg.Search.BusinessType
		}

		store, err := openState(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		apiKey, err := resolveAPIKey(ctx, store)
		if err != nil {
			return err
		}
		client := placesClient(apiKey)

		center, err := resolveCenter(ctx, client, location)
		if err != nil {
			return err
		}

		orch := search.NewOrchestrator(
			search.NewScanner(search.NewPager(client)),
			enrich.NewBatcher(client),
			store,
			search.WithProgress(func(p model.Progress) {
				fmt.Printf("\r[%d/%d areas] %d businesses | %d without websites",
					p.CompletedAreas, p.TotalAreas, p.TotalBusinesses, p.PotentialClients)
			}),
		)

		run, err := orch.Run(ctx, search.Request{
			Center:       center,
			Profile:      profile,
			BusinessType: businessType,
		})
		if err != nil {
			zap.L().Error("search run failed", zap.Error(err))
			return err
		}

		fmt.Printf("\n\nFound %d businesses, %d without websites (est. value %d)\n",
			run.Progress.TotalBusinesses, run.Progress.PotentialClients, run.TotalEstimatedValue())
		for i, lead := range run.Leads {
			fmt.Printf("%3d. %-30s %-15s %-8s %s\n",
				i+1, lead.Name, lead.Phone, export.FormatDistance(lead.DistanceKM), lead.BusinessType)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().String("location", "", "search center: \"lat,lng\" or a free-text address")
	searchCmd.Flags().String("intensity", "", "intensity profile: "+fmt.Sprint(search.ProfileNames()))
	searchCmd.Flags().String("type", "", "business type filter (default: all)")
	rootCmd.AddCommand(searchCmd)
}
