package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_RacingEntry(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())
	require.NoError(t, err)

	summary := Summarize(result.Entries[0])

	assert.Equal(t, "racer-one", summary.Name)
	assert.Equal(t, "Racing", summary.Type)
	assert.Equal(t, "aluminium", summary.Material)
	assert.Equal(t, "silver", summary.Color)
	assert.Equal(t, DimensionsSummary{Length: 2.0, Width: 1.8, Height: 1.5}, summary.Dimensions)
	assert.Equal(t, 16, summary.Memory)
	assert.Equal(t, 4, summary.Processors)
	assert.InDelta(t, 171.0, summary.Weight, 1e-9)
	assert.InDelta(t, 6710.0, summary.TotalPrice, 1e-9)

	require.Len(t, summary.Videogames, 1)
	game := summary.Videogames[0]
	assert.Equal(t, "Night Drift", game.Name)
	assert.InDelta(t, 110.0, game.Price, 1e-9)
	assert.True(t, game.HighDefinition)

	require.NotNil(t, summary.Extras)
	assert.Equal(t, "Force Feedback", summary.Extras["steeringType"])
	assert.Equal(t, 1, summary.Extras["seats"])
}

func TestSummarize_ClassicalHasNoExtras(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())
	require.NoError(t, err)

	summary := Summarize(result.Entries[1])

	assert.Nil(t, summary.Extras)
	assert.Empty(t, summary.Videogames)
}

func TestRenderSummaries_YAMLStream(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	err = RenderSummaries(&buf, "yaml", SummarizeEntries(result.Entries))

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "name: racer-one")
	assert.Contains(t, out, "name: corner-cabinet")
	assert.Contains(t, out, "---")
	assert.Contains(t, out, "steeringType: Force Feedback")
}

func TestRenderSummaries_JSONArray(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	err = RenderSummaries(&buf, "json", SummarizeEntries(result.Entries))

	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "racer-one", rows[0]["name"])
	assert.Equal(t, "ClassicalArcade", rows[1]["type"])
}

func TestRenderSummaries_DefaultsToYAML(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	err = RenderSummaries(&buf, "", SummarizeEntries(result.Entries))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name: racer-one")
}

func TestRenderSummaries_EmptyYAMLStream(t *testing.T) {
	var buf bytes.Buffer

	err := RenderSummaries(&buf, "yaml", nil)

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRenderSummaries_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer

	err := RenderSummaries(&buf, "toml", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported output format "toml"`)
}
