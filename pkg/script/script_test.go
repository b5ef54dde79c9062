package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/gapbuffer/pkg/buffer"
)

func TestDefaultScriptPasses(t *testing.T) {
	s := Default()
	assert.Equal(t, "gap buffer basics", s.Name)

	results := Run(buffer.New[rune](), s)
	require.Len(t, results, len(s.Steps))
	for _, r := range results {
		assert.True(t, r.Passed, "step %d (%s): %v", r.Index, r.Step.Op, r.Failures)
	}
	assert.True(t, Passed(results))
	assert.Equal(t, "***#&&&buffer abc", results[len(results)-1].Got)
}

func TestRunReportsFailures(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - op: push_back
    data: abc
    want: abd
    want_len: 3
    want_cursor: 1
  - op: insert
    index: 10
    data: x
  - op: insert
    index: 10
    data: x
    want_err: out_of_range
  - op: remove_prefix
    count: -1
    want_err: negative_count
  - op: clear
    want_front: a
  - op: check
    want_back: a
    want_err: empty
`))
	require.NoError(t, err)

	results := Run(buffer.New[rune](), s)
	require.Len(t, results, 6)
	assert.False(t, Passed(results))

	assert.False(t, results[0].Passed)
	assert.Equal(t, "abc", results[0].Got)
	assert.Equal(t, []string{
		`content: want "abd", got "abc"`,
		"cursor: want 1, got 3",
	}, results[0].Failures)

	assert.False(t, results[1].Passed)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Failures[0], "unexpected error")

	assert.True(t, results[2].Passed, "%v", results[2].Failures)
	assert.True(t, results[3].Passed, "%v", results[3].Failures)

	assert.False(t, results[4].Passed)
	assert.Contains(t, results[4].Failures[0], "front: front: buffer is empty")

	// The op itself succeeded, so the expected error is missing.
	assert.False(t, results[5].Passed)
	assert.Contains(t, results[5].Failures[0], "error: want empty, got <nil>")
}

func TestCursorOps(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - op: push_back
    data: hello world
  - op: set_cursor
    index: 5
    want_cursor: 5
  - op: delete_forward
    count: 1
    want: helloworld
  - op: delete_backward
    count: 5
    want: world
    want_cursor: 0
  - op: insert
    index: 5
    data: "!"
    want: world!
    want_cursor: 6
  - op: remove_before
    index: 5
    count: 2
    want: wor!
    want_cursor: 3
  - op: remove_after
    index: 0
    count: 1
    want: or!
    want_front: o
    want_back: "!"
  - op: remove
    index: 3
    count: -2
    want: o
  - op: set_cursor
    index: 9
    want_err: out_of_range
`))
	require.NoError(t, err)

	results := Run(buffer.New[rune](), s)
	for _, r := range results {
		assert.True(t, r.Passed, "step %d (%s): %v", r.Index, r.Step.Op, r.Failures)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
		want string
	}{
		{name: "empty", yaml: "name: x\n", want: "no steps"},
		{name: "op", yaml: "steps:\n  - op: explode\n", want: `unknown op "explode"`},
		{name: "want_err", yaml: "steps:\n  - op: check\n    want_err: boom\n", want: `unknown want_err "boom"`},
		{name: "front", yaml: "steps:\n  - op: check\n    want_front: ab\n", want: "single character"},
		{name: "field", yaml: "steps:\n  - op: check\n    wnat: x\n", want: "parsing yaml"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - op: push_back\n    data: x\n    want: x\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, Passed(Run(buffer.New[rune](), s)))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
