package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/olivier-w/gooey/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "gooey 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-19")
}

func TestPresetsCommandListsTable(t *testing.T) {
	output, err := execute(t, "presets")
	require.NoError(t, err)
	require.Contains(t, output, "NAME")
	require.Contains(t, output, "Ease In-Out")
	require.Contains(t, output, "0.68, -0.55, 0.27, 1.55")
	require.Len(t, strings.Split(strings.TrimSpace(output), "\n"), 7)
}

func TestPresetsCommandMatch(t *testing.T) {
	output, err := execute(t, "presets", "--match", "0.205,0.8,0.2,1")
	require.NoError(t, err)
	require.Equal(t, "Snappy\n", output)

	output, err = execute(t, "presets", "--match", "0.5,0.5,0.5,0.5")
	require.NoError(t, err)
	require.Equal(t, "no preset matches\n", output)

	_, err = execute(t, "presets", "--match", "1,2")
	require.Error(t, err)
}

func TestTraceSpringReversal(t *testing.T) {
	output, err := execute(t, "trace", "--size", "md", "--frames", "300", "--press", "0,6", "--every", "300")
	require.NoError(t, err)
	require.Contains(t, output, "# md spring toggle")
	require.Contains(t, output, "# frame 0: switched on")
	require.Contains(t, output, "# frame 6: switched off")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := lines[len(lines)-1]
	require.True(t, strings.HasPrefix(last, "300"), last)
	require.Contains(t, last, "off")
	require.Contains(t, last, "0.00")
	require.True(t, strings.HasSuffix(last, "true"), last)
}

func TestTraceTweenArrives(t *testing.T) {
	output, err := execute(t, "trace", "--size", "md", "--tween", "--duration", "0.5", "--frames", "60", "--every", "60")
	require.NoError(t, err)
	require.Contains(t, output, "tween toggle")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := lines[len(lines)-1]
	require.Equal(t, 4, strings.Count(last, "40.00"), last)
	require.Contains(t, last, "1.00x1.00")
	require.True(t, strings.HasSuffix(last, "true"), last)
}

func TestTraceRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "trace", "--frames", "10", "--press", "11")
	require.ErrorContains(t, err, "outside 0..10")

	_, err = execute(t, "trace", "--size", "xl")
	var ve *config.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "studio.size", ve.Field)

	_, err = execute(t, "trace", "--bezier", "0,0,1,1", "--preset", "ease")
	require.Error(t, err)

	_, err = execute(t, "trace", "--bezier", "0,0,1")
	require.ErrorContains(t, err, "--bezier")
}

func TestSnapshotWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "toggle.png")
	_, err := execute(t, "snapshot", "--size", "md", "--out", out, "--frame", "8", "--press", "0", "--scale", "1")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 80, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())
}

func TestSnapshotToStdout(t *testing.T) {
	output, err := execute(t, "snapshot", "--size", "sm", "--out", "-", "--scale", "2")
	require.NoError(t, err)
	img, err := png.Decode(strings.NewReader(output))
	require.NoError(t, err)
	require.Equal(t, 128, img.Bounds().Dx())
}

func TestSnapshotRequiresOut(t *testing.T) {
	_, err := execute(t, "snapshot")
	require.Error(t, err)
}

func TestConfigFileAndFlagsMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gooey.yaml")
	require.NoError(t, os.WriteFile(path, []byte("studio:\n  size: sm\n  fps: 30\nanimation:\n  preset: snappy\n"), 0o644))

	output, err := execute(t, "--config", path, "trace", "--frames", "0", "--duration", "0.8")
	require.NoError(t, err)
	require.Contains(t, output, "# sm tween toggle, tween 0.80s (0.20, 0.80, 0.20, 1.00)")
}

func TestStudioNeedsTerminal(t *testing.T) {
	_, err := execute(t, "studio")
	require.ErrorIs(t, err, errNotTerminal)
}
