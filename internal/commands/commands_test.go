package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillview-dev/tillview/internal/commands"
	"github.com/tillview-dev/tillview/internal/report"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}

const sampleExport = `Nr;Datum;A;B;C;Ereignis;Grund;Notiz;Einnahme;Ausgabe;D;E;Saldo;Sollbetrag;Differenz
1;02.01.2025 09:00;;;;Anfangssaldo;Kasse geöffnet;;;;;;150,00;;
2;02.01.2025 12:00;;;;Bargeldverkauf;;;12,50;;;;162,50;;
3;kaputt;;;;Bargeldverkauf;;;1,00;;;;163,50;;
`

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeSample(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))
	return path
}

func TestAnalyze_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeSample(t, dir)

	stdout, stderr, err := run(t, "analyze", path, "--from", "02.01.2025", "--to", "03.01.2025")
	require.NoError(t, err)

	assert.Contains(t, stderr, "warning: line 4 skipped", "bad row warns but does not fail")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3, "header plus one line per day")
	assert.Contains(t, lines[1], "03.01.2025", "most recent day first")
	assert.Contains(t, lines[1], "162.50", "empty day carries the previous close")
	assert.Contains(t, lines[2], "02.01.2025")
	assert.Contains(t, lines[2], "12.50")
	assert.Contains(t, lines[2], "Anfangssaldo, Bargeldverkauf")

	// Run log written with defaults.
	data, err := os.ReadFile(filepath.Join(dir, "logs", "runs.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "3,2,1,2", "3 rows, 2 parsed, 1 skipped, 2 days")
}

func TestAnalyze_Details(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeSample(t, dir)

	stdout, _, err := run(t, "analyze", path, "--from", "02.01.2025", "--to", "02.01.2025", "--details")
	require.NoError(t, err)

	assert.Contains(t, stdout, "09:00")
	assert.Contains(t, stdout, "12:00")
	assert.Contains(t, stdout, "Saldo 162.50")
}

func TestAnalyze_Filter(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeSample(t, dir)

	stdout, _, err := run(t, "analyze", path,
		"--from", "02.01.2025", "--to", "05.01.2025",
		"--filter", "Anfangssaldo vorhanden")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2, "only the one day with an opening float remains")
	assert.Contains(t, lines[1], "02.01.2025")
}

func TestAnalyze_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeSample(t, dir)
	// A config that sets only the log section must not zero the range length.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tillview.yaml"), []byte("log:\n  enabled: false\n"), 0o644))

	stdout, _, err := run(t, "analyze", path, "--to", "05.01.2025")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 31, "header plus the default 30-day range ending at --to")
	assert.Contains(t, stdout, "02.01.2025")

	_, err = os.Stat(filepath.Join(dir, "logs", "runs.csv"))
	assert.True(t, os.IsNotExist(err), "logging was disabled by the config")
}

func TestAnalyze_ShortRowsNotLoggedAsSkipped(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	export := strings.Join([]string{
		"Nr;Datum;A;B;C;Ereignis;Grund;Notiz;Einnahme;Ausgabe;D;E;Saldo;Sollbetrag;Differenz",
		"1;2;3",
		"2;02.01.2025 12:00;;;;Bargeldverkauf;;;12,50;;;;162,50;;",
	}, "\n")
	path := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o644))

	_, stderr, err := run(t, "analyze", path, "--from", "02.01.2025", "--to", "02.01.2025")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "warning", "short rows drop silently")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "runs.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2,1,0,1", "short rows count toward the total but not the skips")
}

func TestAnalyze_UnknownFilter(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeSample(t, dir)

	_, _, err := run(t, "analyze", path, "--filter", "Quatschfilter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quatschfilter")
}

func TestAnalyze_StartAfterEnd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeSample(t, dir)

	_, _, err := run(t, "analyze", path, "--from", "05.01.2025", "--to", "02.01.2025")
	require.Error(t, err)
}

func TestAnalyze_EmptyExport(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("Nr;Datum\n"), 0o644))

	_, _, err := run(t, "analyze", path, "--to", "02.01.2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable entries")
}

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialized tillview")

	data, err := os.ReadFile(filepath.Join(dir, "tillview.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_days: 30")

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// A second init must not overwrite.
	_, _, err = run(t, "init", dir)
	require.Error(t, err)
}

func TestFilters_ListsAll(t *testing.T) {
	stdout, _, err := run(t, "filters")
	require.NoError(t, err)

	for _, f := range report.Filters() {
		assert.Contains(t, stdout, string(f))
	}
}

func TestTerms(t *testing.T) {
	stdout, _, err := run(t, "terms")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Anfangssaldo")
	assert.Contains(t, stdout, "Schlussbilanz")
	assert.Contains(t, stdout, "Wechselgeld in bar")
}

func TestRuns_EmptyAndAfterAnalyze(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	stdout, _, err := run(t, "runs")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No runs recorded.")

	path := writeSample(t, dir)
	_, _, err = run(t, "analyze", path, "--from", "02.01.2025", "--to", "02.01.2025")
	require.NoError(t, err)

	stdout, _, err = run(t, "runs")
	require.NoError(t, err)
	assert.Contains(t, stdout, "export.csv")
	assert.Contains(t, stdout, "rows 2/3 parsed")
}
