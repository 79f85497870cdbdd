package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"middle 1 2 3 4", "3"},
		{"middle", "none"},
		{"reverse 1 2 3", "[3 2 1]"},
		{"reorder 1 2 3 4 5", "[1 5 2 4 3]"},
		{"rotate 2 1 2 3 4 5", "[4 5 1 2 3]"},
		{"rotate 4 0 1 2", "[2 0 1]"},
		{"remove-nth 2 1 2 3 4 5", "[1 2 3 5]"},
		{"remove-nth 9 1 2 3", "[1 2 3]"},
		{"palindrome 1 2 3 2 1", "true"},
		{"palindrome 1 2 3", "false"},
		{"has-cycle -1 1 2 3 4", "false"},
		{"has-cycle 1 10 20 30 40 50", "true"},
		{"cycle-start 1 10 20 30 40 50", "20"},
		{"cycle-start -1 10 20", "none"},
		{"cycle-length 1 10 20 30 40 50", "4"},
		{"intersection 2 3 4 1 5 6 1 8 4 5", "8"},
		{"intersection 2 2 1 2 3 4", "none"},
		{"two-sum 6 1 2 3 4 6", "1 3"},
		{"two-sum 20 2 3 5 9", "none"},
		{"pair 6 4 1 2 3 6", "2 4"},
		{"max-area 1 8 6 2 5 4 8 3 7", "49"},
		{"duplicate 1 3 4 2 2", "2"},
		{"duplicate 1", "none"},
		{"happy 19", "true"},
		{"happy 2", "false"},
		{"circular-loop 2 -1 1 2 2", "true"},
		{"circular-loop -1 2", "false"},
		{"circular-loop -2 1 -1 -2 -2", "false"},
		{"max-area [1, 1]", "1"},
	}
	for _, tt := range tests {
		have, err := evaluateLine(tt.line)
		assert.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, have, tt.line)
	}
}

func TestEvaluateErrors(t *testing.T) {
	_, err := evaluate("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, err = evaluate("rotate", nil)
	assert.ErrorContains(t, err, "usage: rotate <k> <values...>")

	_, err = evaluate("reverse", []string{"1", "x"})
	assert.ErrorContains(t, err, "argument 1")

	have, err := evaluateLine("   ")
	assert.NoError(t, err)
	assert.Empty(t, have)
}

func TestRegistryComplete(t *testing.T) {
	for _, name := range []string{
		"middle", "reverse", "reorder", "rotate", "remove-nth", "palindrome",
		"has-cycle", "cycle-start", "cycle-length", "intersection",
		"two-sum", "pair", "max-area", "duplicate", "happy", "circular-loop",
	} {
		assert.Contains(t, registry, name)
	}
	assert.Len(t, names(), len(registry))
	assert.Equal(t, "happy <n>", registry["happy"].usage())
}

func TestRunSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`cases:
  - op: max-area
    args: [1, 8, 6, 2, 5, 4, 8, 3, 7]
    want: "49"
  - op: cycle-length
    args: [1, 10, 20, 30, 40, 50]
    want: "4"
  - op: happy
    args: [2]
    want: "true"
  - op: reverse
    args: [1, 2]
`), 0o644))

	s, err := loadSuite(path)
	require.NoError(t, err)
	require.Len(t, s.Cases, 4)

	var buf bytes.Buffer
	failed, err := s.Run(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Contains(t, buf.String(), "[2 1]")

	_, err = loadSuite(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := &Suite{Cases: []Case{{Op: "nope"}}}
	_, err = bad.Run(&buf)
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestRootCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"eval", "rotate", "2", "1", "2", "3", "4", "5"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[4 5 1 2 3]\n", out.String())

	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"eval", "circular-loop", "2", "-1", "1", "2", "2"}, "true\n"},
		{[]string{"eval", "circular-loop", "-2", "1", "-1", "-2", "-2"}, "false\n"},
		{[]string{"eval", "has-cycle", "-1", "1", "2", "3"}, "false\n"},
		{[]string{"eval", "-v", "cycle-start", "-1", "10", "20"}, "none\n"},
	} {
		out.Reset()
		cmd = newRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs(tt.args)
		require.NoError(t, cmd.Execute(), tt.args)
		assert.Equal(t, tt.want, out.String(), tt.args)
	}

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"eval", "--help"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "chase eval circular-loop 2 -1 1 2 2")

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"eval"})
	assert.Error(t, cmd.Execute())

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"ops"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "circular-loop <values...>")
}

func TestReplBatch(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("happy 19\n\nbogus 1\npalindrome 1 2 1\nexit\nhappy 7\n")
	require.NoError(t, batch(in, &out))
	assert.Equal(t, "true\ntrue\n", out.String())

	out.Reset()
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("ops\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"repl"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "two-sum <target> <values...>")
}

func TestAutoComplete(t *testing.T) {
	a := newauto()
	line := []rune("cycle-s")
	cands, n := a.Do(line, len(line))
	assert.Equal(t, len(line), n)
	assert.Equal(t, [][]rune{[]rune("tart ")}, cands)

	line = []rune("cycle-")
	cands, _ = a.Do(line, len(line))
	assert.Equal(t, [][]rune{[]rune("length "), []rune("start ")}, cands)

	line = []rune("rotate 1")
	cands, _ = a.Do(line, len(line))
	assert.Empty(t, cands)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"cycle-start", "cycle-length", "has-cycle"}, suggest("cycle-strat"))
	assert.Empty(t, suggest("bogus"))

	var out bytes.Buffer
	require.NoError(t, batch(strings.NewReader("cycle-strat 1 10 20\n"), &out))
	assert.Equal(t, "did you mean cycle-start, cycle-length, has-cycle?\n", out.String())
}

func TestRunTestdata(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", filepath.Join("testdata", "cases.yaml")})
	require.NoError(t, cmd.Execute(), out.String())
	assert.Contains(t, out.String(), "circular-loop")
}
