package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goherit/domain/core"
)

func TestJSONWriterPayload(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NewJSONWriter(false).Write(&b, trioRunResult()))

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(b.String()), &payload))
	require.Contains(t, payload, "run")
	require.Contains(t, payload, "people")
	require.Contains(t, payload, "source")
	assert.NotContains(t, payload, "summary")

	var manifest map[string]interface{}
	require.NoError(t, json.Unmarshal(payload["run"], &manifest))
	assert.Equal(t, "pedigree", manifest["pedigree_hash"])
	assert.Equal(t, "1.0.0", manifest["code_version"])
	assert.NotEmpty(t, manifest["run_id"])

	var people []struct {
		Name string `json:"name"`
		Gene struct {
			Two  float64 `json:"2"`
			One  float64 `json:"1"`
			Zero float64 `json:"0"`
		} `json:"gene"`
		Trait struct {
			Present float64 `json:"true"`
			Absent  float64 `json:"false"`
		} `json:"trait"`
	}
	require.NoError(t, json.Unmarshal(payload["people"], &people))
	require.Len(t, people, 3)
	assert.Equal(t, "Harry", people[0].Name)
	assert.InDelta(t, 0.0092, people[0].Gene.Two, 1e-9)
	assert.InDelta(t, 0.7335, people[0].Trait.Absent, 1e-9)
}

func TestJSONWriterEmbedsSummary(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NewJSONWriter(true).Write(&b, trioRunResult()))

	var payload struct {
		Summary *CohortSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(b.String()), &payload))
	require.NotNil(t, payload.Summary)
	assert.Equal(t, 3, payload.Summary.People)
	assert.InDelta(t, 0.4222, payload.Summary.Trait.Mean, 1e-4)
}

func TestForFormat(t *testing.T) {
	w, err := ForFormat("text", false)
	require.NoError(t, err)
	assert.IsType(t, &TextWriter{}, w)

	w, err = ForFormat("json", true)
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, w)

	_, err = ForFormat("yaml", false)
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
}
