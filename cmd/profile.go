package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/webless-hunter/prospect-cli/internal/config"
	"github.com/webless-hunter/prospect-cli/internal/model"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the onboarding profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save name, role, country, and API key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		name, _ := cmd.Flags().GetString("name")
		role, _ := cmd.Flags().GetString("role")
		country, _ := cmd.Flags().GetString("country")
		apiKey, _ := cmd.Flags().GetString("api-key")

		if err := config.ValidateAPIKey(apiKey); err != nil {
			return err
		}

		store, err := openState(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		profile := &model.Profile{
			Name:        name,
			Role:        role,
			Country:     country,
			APIKey:      apiKey,
			CompletedAt: time.Now().UTC(),
		}
		if err := store.SaveProfile(ctx, profile); err != nil {
			return err
		}

		fmt.Println("Profile saved.")
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		store, err := openState(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		profile, err := store.LoadProfile(ctx)
		if err != nil {
			return err
		}
		if profile == nil {
			fmt.Println("No profile saved. Run 'prospect-cli profile set' first.")
			return nil
		}

		fmt.Printf("Name:      %s\n", profile.Name)
		fmt.Printf("Role:      %s\n", profile.Role)
		fmt.Printf("Country:   %s\n", profile.Country)
		fmt.Printf("API key:   %s...\n", profile.APIKey[:8])
		fmt.Printf("Completed: %s\n", profile.CompletedAt.Format("2006-01-02 15:04:05 MST"))
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("name", "", "your name")
	profileSetCmd.Flags().String("role", "freelancer", "your role: freelancer, agency, consultant, developer, or marketer")
	profileSetCmd.Flags().String("country", "", "your ISO country code (e.g. ie, us)")
	profileSetCmd.Flags().String("api-key", "", "Google Maps API key")
	_ = profileSetCmd.MarkFlagRequired("name")
	_ = profileSetCmd.MarkFlagRequired("api-key")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
