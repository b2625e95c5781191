package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/service"
)

func (c *cli) tripsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "List and select trips",
	}

	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List trips, optionally filtered by a search term",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trips, err := service.NewTripService(c.repo).List(cmd.Context(), query)
			if err != nil {
				return err
			}
			currentID, _, err := c.repo.CurrentTripID(cmd.Context())
			if err != nil {
				return err
			}
			return printTrips(cmd.OutOrStdout(), trips, currentID)
		},
	}
	list.Flags().StringVarP(&query, "query", "q", "", "match name, destination or notes")

	current := &cobra.Command{
		Use:   "current",
		Short: "Show the current trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trip, err := service.NewTripService(c.repo).Current(cmd.Context())
			if err != nil {
				return err
			}
			return printTrips(cmd.OutOrStdout(), []domain.Trip{trip}, trip.ID)
		},
	}

	use := &cobra.Command{
		Use:   "use <trip-id>",
		Short: "Select the current trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := service.NewTripService(c.repo).SetCurrent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "current trip: %s (%s)\n", trip.Name, trip.ID)
			return nil
		},
	}

	unset := &cobra.Command{
		Use:   "unset",
		Short: "Clear the current trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return service.NewTripService(c.repo).ClearCurrent(cmd.Context())
		},
	}

	del := &cobra.Command{
		Use:   "delete <trip-id>",
		Short: "Delete a trip and all of its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service.NewTripService(c.repo).Delete(cmd.Context(), args[0])
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Count trips, total budgets and distinct destinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := service.NewTripService(c.repo).Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "trips: %d\ndestinations: %d\ntotal budget: %s\n",
				st.Count, st.Destinations, st.TotalBudget.StringFixed(2))
			return nil
		},
	}

	cmd.AddCommand(list, current, use, unset, del, stats)
	return cmd
}

// printTrips writes one aligned row per trip, marking the current one.
func printTrips(w io.Writer, trips []domain.Trip, currentID string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tLOCATION\tDATES\tBUDGET")
	for _, t := range trips {
		mark := ""
		if t.ID == currentID {
			mark = "*"
		}
		budget := "-"
		if t.Budget != nil {
			budget = t.Budget.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", mark, t.ID, t.Name, t.FormattedLocation(), t.DateRange(), budget)
	}
	return tw.Flush()
}
