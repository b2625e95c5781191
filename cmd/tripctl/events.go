package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/service"
)

func (c *cli) eventsCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "events <trip-id>",
		Short: "List a trip's calendar events, optionally for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := service.NewEventService(c.repo, c.repo).List(cmd.Context(), args[0], date)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no events")
				return nil
			}
			return printEvents(cmd.OutOrStdout(), events)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "only events on this date, as stored (e.g. 15/06/2025)")
	return cmd
}

// printEvents writes one aligned row per event; done events are checked.
func printEvents(w io.Writer, events []domain.EventItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tDATE\tTIME\tTITLE\tCATEGORY")
	for _, e := range events {
		mark := "[ ]"
		if e.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", mark, e.Date, e.TimeRange(), e.Title, e.Category)
	}
	return tw.Flush()
}
