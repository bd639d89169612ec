package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the persisted search run",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		store, err := openState(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ClearRun(ctx); err != nil {
			return err
		}

		fmt.Println("Search state cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
