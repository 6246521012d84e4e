package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
	calerrors "github.com/alexisbeaulieu97/magicalendar/pkg/errors"
)

const sampleConfig = `calendar:
  selection_mode: range
  first_day_of_week: monday
theme: minimal
events:
  - title: Launch
    date: 2024-03-15
    color: red
    type: meeting
  - title: Retro
    date: 2024-04-02
ics:
  - holidays.ics
`

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:spring@test\r\n" +
	"DTSTART;VALUE=DATE:20240320\r\n" +
	"SUMMARY:Spring equinox\r\n" +
	"CATEGORIES:Holiday\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func pinClock(t *testing.T) {
	t.Helper()
	original := clock
	clock = calendar.FixedDay(calendar.NewDate(2024, time.March, 12))
	t.Cleanup(func() { clock = original })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeSampleConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "holidays.ics", sampleICS)
	return writeFile(t, dir, "magicalendar.yaml", sampleConfig)
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	if args == nil {
		// nil makes cobra fall back to os.Args.
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return ansi.Strip(buf.String()), err
}

func TestShowRendersCurrentMonth(t *testing.T) {
	pinClock(t)

	out, err := executeCommand("show")
	require.NoError(t, err)
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Su")
}

func TestShowRendersRequestedMonth(t *testing.T) {
	pinClock(t)
	cfg := writeSampleConfig(t)

	out, err := executeCommand("show", "2024-04", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "April 2024")

	lines := strings.Split(out, "\n")
	var header string
	for _, line := range lines {
		if strings.Contains(line, "Mo") && strings.Contains(line, "Su") {
			header = line
			break
		}
	}
	require.NotEmpty(t, header)
	assert.Less(t, strings.Index(header, "Mo"), strings.Index(header, "Su"))
}

func TestShowRejectsBadMonth(t *testing.T) {
	pinClock(t)

	_, err := executeCommand("show", "March")
	require.Error(t, err)
	require.Contains(t, err.Error(), "YYYY-MM")

	_, err = executeCommand("show", "1900-01")
	require.Error(t, err)
	require.Contains(t, err.Error(), "outside the navigable range")
}

func TestEventsListsConfigAndICS(t *testing.T) {
	pinClock(t)
	cfg := writeSampleConfig(t)

	out, err := executeCommand("events", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "Launch")
	assert.Contains(t, out, "Spring equinox")
	assert.NotContains(t, out, "Retro")
	assert.Less(t, strings.Index(out, "Launch"), strings.Index(out, "Spring equinox"))

	out, err = executeCommand("events", "2024-05", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "No events")
}

func TestEventsJSON(t *testing.T) {
	pinClock(t)
	cfg := writeSampleConfig(t)

	out, err := executeCommand("events", "2024-04", "--json", "--config", cfg)
	require.NoError(t, err)

	var payload []eventJSON
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload, 1)
	assert.Equal(t, "Retro", payload[0].Title)
	assert.Equal(t, "2024-04-02", payload[0].Date)
	assert.Equal(t, "blue", payload[0].Color)
	assert.Equal(t, "Event", payload[0].Type)
	assert.NotEmpty(t, payload[0].ID)
}

func TestExtraICSFlag(t *testing.T) {
	pinClock(t)
	path := writeFile(t, t.TempDir(), "extra.ics", sampleICS)

	out, err := executeCommand("events", "--ics", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Spring equinox")

	_, err = executeCommand("events", "--ics", filepath.Join(t.TempDir(), "missing.ics"))
	require.Error(t, err)
	var importErr *calerrors.ImportError
	require.True(t, errors.As(err, &importErr))
}

func TestInvalidConfigIsReported(t *testing.T) {
	pinClock(t)
	path := writeFile(t, t.TempDir(), "bad.yaml", "calendar:\n  selection_mode: sometimes\n")

	_, err := executeCommand("show", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")

	var validationErr *calerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestFlagOverridesAreValidated(t *testing.T) {
	pinClock(t)

	_, err := executeCommand("show", "--theme", "neon")
	require.Error(t, err)

	_, err = executeCommand("show", "--first-day", "someday")
	require.Error(t, err)

	out, err := executeCommand("show", "--theme", "dark", "--first-day", "saturday")
	require.NoError(t, err)
	assert.Contains(t, out, "Sa")
}

func TestPickWithoutTerminalRendersMonth(t *testing.T) {
	pinClock(t)

	out, err := executeCommand("pick", "2024-06")
	require.NoError(t, err)
	assert.Contains(t, out, "June 2024")

	out, err = executeCommand()
	require.NoError(t, err)
	assert.Contains(t, out, "March 2024")
}

func TestVerboseLogsToFile(t *testing.T) {
	pinClock(t)
	logPath := filepath.Join(t.TempDir(), "magicalendar.log")

	_, err := executeCommand("show", "--verbose", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session ready")
	assert.Contains(t, string(data), `"component":"magicalendar"`)
}

func TestIsTerminal(t *testing.T) {
	original := termIsTerminal
	t.Cleanup(func() { termIsTerminal = original })

	termIsTerminal = func(int) bool { return true }
	assert.True(t, isTerminal(os.Stdout))
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
