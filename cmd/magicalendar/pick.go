package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/magicalendar/internal/tui"
)

func newPickCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [YYYY-MM]",
		Short: "Pick dates interactively",
		Long: `Launch the interactive picker. Confirmed dates are printed one per line.
When stdout is not a terminal the month is rendered instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, flags, args...)
		},
	}

	return cmd
}

func runPick(cmd *cobra.Command, flags *rootFlags, args ...string) error {
	interactive := isTerminal(cmd.OutOrStdout())

	s, err := openSession(cmd, flags, interactive)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.showMonth(args); err != nil {
		return err
	}

	model := tui.NewModel(s.picker, s.theme, tui.WithLogger(s.log))
	if !interactive {
		s.log.Warn("stdout is not a terminal, rendering month")
		fmt.Fprintln(cmd.OutOrStdout(), model.RenderMonth())
		return nil
	}

	s.log.Info("launching picker", "page", s.picker.Page())
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if err != nil {
		s.log.Error(err, "picker failed")
		return fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected picker model %T", final)
	}
	res := m.Result()
	if !res.Confirmed {
		return nil
	}
	for _, d := range res.Dates {
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
	}
	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
