package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
)

type eventsOptions struct {
	jsonOutput bool
}

func newEventsCmd(flags *rootFlags) *cobra.Command {
	opts := &eventsOptions{}

	cmd := &cobra.Command{
		Use:   "events [YYYY-MM]",
		Short: "List the events of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags, false)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.showMonth(args); err != nil {
				return err
			}

			month := s.picker.Month()
			evts := s.picker.Store().Month(month.Anchor)
			s.log.Debug("listing events", "month", month.Title(), "count", len(evts))
			if opts.jsonOutput {
				return renderEventsJSON(cmd, evts)
			}
			return renderEventsTable(cmd, month, evts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output events as JSON")

	return cmd
}

func renderEventsTable(cmd *cobra.Command, month calendar.Month, evts []calendar.Event) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", month.Title())
	if len(evts) == 0 {
		fmt.Fprintln(out, "  No events")
		return nil
	}
	for _, e := range evts {
		fmt.Fprintf(out, "  %s  %-8s %-7s %s\n", e.Date, e.Type.Name(), e.Color.Name(), e.Title)
	}
	return nil
}

type eventJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

func renderEventsJSON(cmd *cobra.Command, evts []calendar.Event) error {
	payload := make([]eventJSON, 0, len(evts))
	for _, e := range evts {
		payload = append(payload, eventJSON{
			ID:    e.ID,
			Title: e.Title,
			Date:  e.Date.String(),
			Color: e.Color.Name(),
			Type:  e.Type.Name(),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
