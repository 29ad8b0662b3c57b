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

// execute runs the root command with the given stdin and arguments.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errs bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	err = cmd.Execute()
	return out.String(), errs.String(), err
}

func TestArgs(t *testing.T) {
	out, errs, err := execute(t, "", "2 + 3 * 4", "( 2 + 3 ) * 4", "2 ^ -3")
	require.NoError(t, err)
	assert.Equal(t, "14\n20\n0.125\n", out)
	assert.Empty(t, errs)
}

func TestArgsIgnoreStdin(t *testing.T) {
	out, _, err := execute(t, "1 + 1\n", "2 + 2")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestStdinLines(t *testing.T) {
	out, errs, err := execute(t, "1 + 1\n\n8 - 3 - 2\r\n")
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n", out)
	assert.Empty(t, errs)
}

func TestErrorsContinue(t *testing.T) {
	out, errs, err := execute(t, "", "2 / 0", "1 + 1", "2 + + 3")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "2\n", out)
	assert.Equal(t, "error: \"2 / 0\": 3: division by zero\nerror: \"2 + + 3\": 5: unexpected operator \"+\"\n", errs)
}

func TestFormat(t *testing.T) {
	out, _, err := execute(t, "", "--fmt", "%.3f", "1 / 3")
	require.NoError(t, err)
	assert.Equal(t, "0.333\n", out)
}

func TestPrecision(t *testing.T) {
	out, _, err := execute(t, "", "-p", "128", "--fmt", "%.0f", "2 ^ 100 + 1")
	require.NoError(t, err)
	assert.Equal(t, "1267650600228229401496703205377\n", out)

	_, errs, err := execute(t, "", "-p", "128", "--", "-4 ^ 0.5")
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, errs, "outside domain")
}

func TestLenient(t *testing.T) {
	_, _, err := execute(t, "", "1  + 1")
	assert.ErrorIs(t, err, errFailed)
	out, _, err := execute(t, "", "--lenient", "1  + 1")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestTokens(t *testing.T) {
	out, _, err := execute(t, "", "--tokens", "( 1 + 2 )")
	require.NoError(t, err)
	assert.Equal(t, `["(" "1" "+" "2" ")"] : 3`+"\n", out)
}

func TestEcho(t *testing.T) {
	out, _, err := execute(t, "", "--echo", "2 * 3 ^ 2", "2 / 0", "2 +")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "( ( 2 * 3 ) ^ 2 ) : 36\n( 2 / 0 ) : \n", out)
}

func TestVerbose(t *testing.T) {
	_, errs, err := execute(t, "", "-v", "1 + 1")
	require.NoError(t, err)
	assert.Contains(t, errs, `"1 + 1" evaluated in`)
}

func TestInFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(name, []byte("2 * 3\n( 2 + ( 3 * 4 ) ) / 2\n"), 0o644))
	out, _, err := execute(t, "", "--in", name)
	require.NoError(t, err)
	assert.Equal(t, "6\n7\n", out)

	_, _, err = execute(t, "", "--in", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errFailed)
}

func TestNegativeLeadingNumber(t *testing.T) {
	out, _, err := execute(t, "", "--", "-3 + 1")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)
}
