package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFile    string

	// Overrides applied on top of the config file.
	mode     string
	firstDay string
	theme    string
	ics      []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "magicalendar",
		Short:         "A themeable calendar date picker for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the picker.
			return runPick(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flags.mode, "mode", "", "Selection mode (single, multiple, range, none)")
	pf.StringVar(&flags.firstDay, "first-day", "", "First day of the week (sunday..saturday)")
	pf.StringVar(&flags.theme, "theme", "", "Theme name (default, dark, minimal, colorful)")
	pf.StringArrayVar(&flags.ics, "ics", nil, "ICS file to import events from (repeatable)")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newEventsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
