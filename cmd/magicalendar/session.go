package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
	"github.com/alexisbeaulieu97/magicalendar/internal/config"
	"github.com/alexisbeaulieu97/magicalendar/internal/events"
	"github.com/alexisbeaulieu97/magicalendar/internal/logger"
	"github.com/alexisbeaulieu97/magicalendar/internal/picker"
	"github.com/alexisbeaulieu97/magicalendar/internal/theme"
)

const monthLayout = "2006-01"

// clock is swapped out by tests.
var clock calendar.Clock = calendar.SystemClock{}

// session bundles everything a command needs once flags and config are
// resolved.
type session struct {
	cfg    *config.Config
	picker *picker.Picker
	theme  theme.Theme
	log    *logger.Logger

	closers []io.Closer
}

func (s *session) Close() {
	for _, c := range s.closers {
		_ = c.Close()
	}
}

// openSession loads configuration, applies flag overrides, imports events and
// builds the picker. Interactive sessions never log to the terminal.
func openSession(cmd *cobra.Command, flags *rootFlags, interactive bool) (*session, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, newCommandError("load", "configuration", err, "Fix the configuration errors shown above and try again.")
	}

	s := &session{cfg: cfg}
	s.log, err = s.openLogger(cmd, flags, interactive)
	if err != nil {
		return nil, newCommandError("open", "log output", err, "Check that the log file location is writable.")
	}

	calCfg, err := cfg.CalendarConfiguration()
	if err != nil {
		s.Close()
		return nil, newCommandError("load", "calendar settings", err, "Check the calendar section of the configuration.")
	}

	seed, err := cfg.SeedEvents()
	if err != nil {
		s.Close()
		return nil, newCommandError("load", "configured events", err, "Check the events section of the configuration.")
	}
	store := events.NewStore(seed...)

	importer := events.NewImporter(time.Local, s.log)
	for _, path := range icsPaths(flags, cfg) {
		imported, err := importer.ImportFile(path)
		if err != nil {
			s.Close()
			return nil, newCommandError("import", fmt.Sprintf("events from %q", path), err, "Check that the file exists and is a valid iCalendar document.")
		}
		for _, e := range imported {
			store.Add(e)
		}
	}

	s.theme, err = theme.Lookup(cfg.Theme)
	if err != nil {
		s.Close()
		return nil, newCommandError("load", "theme", err, "Pick one of: "+strings.Join(theme.Names(), ", ")+".")
	}
	if s.theme.Header, err = theme.ParseHeaderStyle(cfg.HeaderStyle); err != nil {
		s.Close()
		return nil, newCommandError("load", "header style", err, "Use center, start, end or none.")
	}

	s.picker = picker.New(
		picker.WithConfiguration(calCfg),
		picker.WithClock(clock),
		picker.WithLogger(s.log),
		picker.WithStore(store),
	)
	s.log.Debug("session ready",
		"theme", s.theme.Name,
		"mode", calCfg.SelectionMode.String(),
		"events", store.Len(),
	)
	return s, nil
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	if flags.mode != "" {
		cfg.Calendar.SelectionMode = flags.mode
	}
	if flags.firstDay != "" {
		cfg.Calendar.FirstDayOfWeek = flags.firstDay
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	cfg.Normalize()
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *session) openLogger(cmd *cobra.Command, flags *rootFlags, interactive bool) (*logger.Logger, error) {
	level := s.cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	path := flags.logFile
	if path == "" {
		path = s.cfg.Log.File
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, f)
		return logger.New(logger.Options{Level: level, Writer: f, Component: "magicalendar"})
	}

	if interactive || !flags.verbose {
		return logger.Nop(), nil
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
}

// icsPaths lists the files to import. Paths from the config file are
// relative to the config file's directory.
func icsPaths(flags *rootFlags, cfg *config.Config) []string {
	base := ""
	if flags.configPath != "" {
		base = filepath.Dir(flags.configPath)
	}

	paths := make([]string, 0, len(cfg.ICS)+len(flags.ics))
	for _, p := range cfg.ICS {
		if base != "" && !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		paths = append(paths, p)
	}
	return append(paths, flags.ics...)
}

// showMonth moves the picker to the month named by args, if any.
func (s *session) showMonth(args []string) error {
	if len(args) == 0 {
		return nil
	}
	t, err := time.Parse(monthLayout, strings.TrimSpace(args[0]))
	if err != nil {
		return newCommandError("parse", fmt.Sprintf("month %q", args[0]), err, "Use the YYYY-MM format, for example 2024-03.")
	}
	anchor := calendar.NewDate(t.Year(), t.Month(), 1)
	s.picker.GoToDate(anchor)
	if !anchor.SameMonth(s.picker.Month().Anchor) {
		return newCommandError("show", fmt.Sprintf("month %s", t.Format(monthLayout)), errors.New("outside the navigable range"), "Pick a month closer to today.")
	}
	return nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
