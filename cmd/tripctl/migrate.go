package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-legacy",
		Short: "Copy pipe-delimited trip_list and itinerary_list records into the structured collections",
		Long: "Copies the legacy records into the structured collections. Records already\n" +
			"present are left alone, so the command can be run repeatedly. The legacy\n" +
			"keys are never modified.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.repo.MigrateLegacy(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"trips added: %d\nevents added: %d\nskipped trip records: %d\nskipped itinerary records: %d\nunmatched itinerary records: %d\n",
				report.Trips, report.Events, report.SkippedTrips, report.SkippedItinerary, report.UnmatchedItinerary)
			return nil
		},
	}
}

func (c *cli) clearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every key in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear the store without --yes")
			}
			if err := c.repo.ClearAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "store cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting all data")
	return cmd
}
