package results

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound3(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{7.0 / 9.0, 0.778},
		{0.5, 0.5},
		{1.0, 1.0},
		{0.0, 0.0},
		{0.0004, 0.0},
		{0.0005, 0.001},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Round3(tt.in))
	}
}

func TestWrite_RoundsAndPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Entry{
		{ID: 12, Score: 1.0},
		{ID: 7, Score: 7.0 / 9.0},
		{ID: 99, Score: 0.5},
	})
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []Entry{
		{ID: 12, Score: 1.0},
		{ID: 7, Score: 0.778},
		{ID: 99, Score: 0.5},
	}, decoded)
}

func TestWrite_EmptyEntriesEmitEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.JSONEq(t, "[]", buf.String())
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, Save(path, []Entry{{ID: 1, Score: 0.25}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []Entry{{ID: 1, Score: 0.25}}, decoded)
}

func TestSave_BadPathIsError(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing-dir", "results.json"), nil)
	require.Error(t, err)
}
