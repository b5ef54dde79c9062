package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/gapbuffer/pkg/logs"
)

func TestRunDefault(t *testing.T) {
	var out, events bytes.Buffer
	ok, err := run(&out, logs.New(&events), "", false)
	require.NoError(t, err)
	assert.True(t, ok)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "test 0 passed", lines[0])
	for _, l := range lines {
		assert.True(t, strings.HasSuffix(l, " passed"), l)
	}
	assert.Contains(t, events.String(), `"event":"done"`)
}

func TestRunFailingScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - op: push_back
    data: abc
    want: abc
  - op: remove
    index: 1
    count: 1
    want: abc
`), 0644))

	var out bytes.Buffer
	ok, err := run(&out, logs.Disabled(), path, true)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "test 1 failed\n  remove: content: want \"abc\", got \"ac\"\n", out.String())
}

func TestRunMissingScript(t *testing.T) {
	_, err := run(&bytes.Buffer{}, logs.Disabled(), filepath.Join(t.TempDir(), "nope.yaml"), false)
	assert.Error(t, err)
}
