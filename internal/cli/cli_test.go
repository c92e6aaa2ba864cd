package cli

import (
	"bytes"
	"encoding/json"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/swatch/internal/domain/pantone"
	"github.com/okian/swatch/internal/domain/types"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatch(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := run(t, "match", "#C8102E", "--color", "never")
		require.NoError(t, err)
		assert.Contains(t, out, "186 C")
		assert.Contains(t, out, "quality=exact")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "match", "c8102e", "--json")
		require.NoError(t, err)

		var r pantone.MatchResult
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, "186 C", r.Pantone.Code)
		assert.Equal(t, pantone.QualityExact, r.Quality)
		assert.Zero(t, r.Distance)
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := run(t, "match", "not-a-color")
		assert.Error(t, err)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := run(t, "match")
		assert.Error(t, err)
	})
}

func TestNearest(t *testing.T) {
	out, err := run(t, "nearest", "#000000", "-n", "3", "--json")
	require.NoError(t, err)

	var rs []pantone.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	require.Len(t, rs, 3)
	assert.Equal(t, "433 C", rs[0].Pantone.Code)
	for i := 1; i < len(rs); i++ {
		assert.LessOrEqual(t, rs[i-1].Distance, rs[i].Distance)
	}

	_, err = run(t, "nearest", "#000000", "-n", "0")
	assert.Error(t, err)
}

func TestComplementAndConversions(t *testing.T) {
	out, err := run(t, "hsl", "#C8102E", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "hsl(350, 85%, 42%)")
	assert.Contains(t, out, "\x1b[48;2;200;16;46m")

	out, err = run(t, "distance", "#000000", "000000", "--json")
	require.NoError(t, err)
	var d types.DistanceResult
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Zero(t, d.Distance)
	assert.Equal(t, pantone.QualityExact, d.Quality)

	out, err = run(t, "complement", "#C8102E", "--json")
	require.NoError(t, err)
	var r pantone.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "#37EFD1", r.Hex)
}

func TestSearchAndFamily(t *testing.T) {
	out, err := run(t, "search", "code", "28", "--json")
	require.NoError(t, err)
	var res pantone.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Matches, 8)

	out, err = run(t, "search", "name", "navy", "--color", "never")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	out, err = run(t, "family", "--json")
	require.NoError(t, err)
	var families []string
	require.NoError(t, json.Unmarshal([]byte(out), &families))
	assert.Equal(t, pantone.Families(), families)
}

func TestTableSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	doc := "colors:\n  - {code: \"X 1\", hex: \"#112233\", name: \"Ink\"}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	t.Run("flag", func(t *testing.T) {
		out, err := run(t, "table", "--table", path, "--json")
		require.NoError(t, err)
		var cs []pantone.Color
		require.NoError(t, json.Unmarshal([]byte(out), &cs))
		assert.Equal(t, []pantone.Color{{Code: "X 1", Hex: "#112233", Name: "Ink"}}, cs)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("SWATCH_TABLE", path)
		out, err := run(t, "match", "#FFFFFF", "--color", "never")
		require.NoError(t, err)
		assert.Contains(t, out, "X 1")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "table", "--table", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestAnalyze(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, stdcolor.NRGBA{R: 200, G: 16, B: 46, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "red.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	out, err := run(t, "analyze", path, "--json")
	require.NoError(t, err)
	var res types.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 16, res.Width)
	assert.Equal(t, 8, res.Height)
	assert.Equal(t, "png", res.Format)
	require.Len(t, res.Colors, 1)
	assert.Equal(t, "#C02020", res.Colors[0].Hex)

	_, err = run(t, "analyze", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestUseSwatches(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useSwatches("always", &buf))
	assert.False(t, useSwatches("never", &buf))
	assert.False(t, useSwatches("auto", &buf))
}
