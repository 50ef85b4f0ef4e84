package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/parameterx"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	pairs, err := LoadFile(filepath.Join("testdata", "params.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []parameterx.Pair{
		{Key: "host", Value: "db.internal"},
		{Key: "port", Value: "5432"},
		{Key: "debug", Value: "false"},
		{Key: "ratio", Value: "0.25"},
		{Key: "host", Value: "replica.internal"},
	}, pairs)

	// Applying the pairs in order lets the later duplicate win.
	p := parameterx.Of(pairs...)
	host, ok := p.GetString("host")
	require.True(t, ok)
	assert.Equal(t, "replica.internal", host)
	assert.Equal(t, 4, p.Len())
}

func TestLoadFileScalarsStayText(t *testing.T) {
	path := writeYAML(t, "count: 010\nempty:\ntilde: ~\nquoted: \"a: b\"\n")

	pairs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []parameterx.Pair{
		{Key: "count", Value: "010"},
		{Key: "empty", Value: ""},
		{Key: "tilde", Value: ""},
		{Key: "quoted", Value: "a: b"},
	}, pairs)
}

func TestLoadFileEmpty(t *testing.T) {
	pairs, err := LoadFile(writeYAML(t, ""))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
		wantMsg  string
		wantLine bool
	}{
		{"nested value", "name: x\nnested:\n  a: 1\n", ErrCodeLoadFailed, `value for key "nested" must be a scalar`, true},
		{"list value", "tags: [a, b]\n", ErrCodeLoadFailed, `value for key "tags" must be a scalar`, true},
		{"sequence root", "- a\n- b\n", ErrCodeLoadFailed, "document root must be a mapping", true},
		{"invalid yaml", "key: [unclosed\n", ErrCodeLoadFailed, "invalid YAML", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeYAML(t, tt.content))
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.wantCode, loadErr.Code)
			assert.Contains(t, loadErr.Message, tt.wantMsg)
			if tt.wantLine {
				assert.Greater(t, loadErr.Line, 0)
				assert.Contains(t, loadErr.Error(), "line ")
			}
		})
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.Equal(t, 0, loadErr.Line)
	assert.Contains(t, err.Error(), "E005")
}

func TestParseAssignments(t *testing.T) {
	pairs, err := ParseAssignments([]string{"a=1", "url=http://x?y=z", "blank=", "a=2"})
	require.NoError(t, err)
	assert.Equal(t, []parameterx.Pair{
		{Key: "a", Value: "1"},
		{Key: "url", Value: "http://x?y=z"},
		{Key: "blank", Value: ""},
		{Key: "a", Value: "2"},
	}, pairs)

	for _, bad := range []string{"novalue", "=1", ""} {
		t.Run(bad, func(t *testing.T) {
			_, err := ParseAssignments([]string{bad})
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, ErrCodeInvalidAssignment, loadErr.Code)
		})
	}
}

func TestParseAssignmentsNormalizesNFC(t *testing.T) {
	decomposed := "cafe\u0301"
	composed := "caf\u00e9"

	pairs, err := ParseAssignments([]string{decomposed + "=crème", composed + "=noir"})
	require.NoError(t, err)

	p := parameterx.Of(pairs...)
	assert.Equal(t, 1, p.Len())
	v, ok := p.GetString(composed)
	require.True(t, ok)
	assert.Equal(t, "noir", v)
}
