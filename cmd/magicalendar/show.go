package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/magicalendar/internal/tui"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [YYYY-MM]",
		Short: "Render a month without interaction",
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

			model := tui.NewModel(s.picker, s.theme, tui.WithLogger(s.log))
			fmt.Fprintln(cmd.OutOrStdout(), model.RenderMonth())
			return nil
		},
	}

	return cmd
}
