package main

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wttech/maxfour/pkg/cfg"
	"github.com/wttech/maxfour/pkg/common"
	"github.com/wttech/maxfour/pkg/quad"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliRun struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliRun {
	t.Helper()
	return runCLIWithConfig(t, filepath.Join(t.TempDir(), "missing.yml"), stdin, args...)
}

func runCLIWithConfig(t *testing.T, configFile string, stdin string, args ...string) cliRun {
	t.Helper()
	t.Setenv(cfg.FileEnvVar, configFile)

	config, err := cfg.NewConfigWithError()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	cli := NewCLI(config)
	cli.cmd.SetArgs(args)
	cli.cmd.SetIn(strings.NewReader(stdin))
	cli.cmd.SetOut(&stdout)
	cli.cmd.SetErr(&stderr)

	code := cli.Exec()
	return cliRun{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestMaxFromStdin(t *testing.T) {
	cases := map[string]string{
		"3 1 4 1":                      "4\n",
		"-5 -1 -9 -3":                  "-1\n",
		"7 7 7 7":                      "7\n",
		"0 0 0 1":                      "1\n",
		"2147483647 0 -2147483648 100": "2147483647\n",
		"3\n1\n4\n1\n":                 "4\n",
	}
	for input, expected := range cases {
		run := runCLI(t, input)
		assert.Equal(t, 0, run.code, "input %q", input)
		assert.Equal(t, expected, run.stdout, "input %q", input)
	}
}

func TestMaxMalformedInput(t *testing.T) {
	for _, input := range []string{"", "1 2 3", "1 x 3 4", "2147483648 0 0 0"} {
		run := runCLI(t, input)
		assert.Equal(t, 1, run.code, "input %q", input)
		assert.Empty(t, run.stdout, "input %q", input)
		assert.Contains(t, run.stderr, "cannot parse STDIN input properly", "input %q", input)
	}

	run := runCLI(t, "1 2 3")
	assert.Contains(t, run.stderr, "insufficient input")
}

func TestMaxFromInputString(t *testing.T) {
	run := runCLI(t, "1 1 1 1", "--input-string", "9 8 7 6")
	assert.Equal(t, 0, run.code)
	assert.Equal(t, "9\n", run.stdout)
}

func TestMaxFromInputFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("10\n-20\n30\n-40\n"), 0644))

	run := runCLI(t, "", "--input-file", file)
	assert.Equal(t, 0, run.code)
	assert.Equal(t, "30\n", run.stdout)

	run = runCLI(t, "", "--input-file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, run.code)
	assert.Contains(t, run.stderr, "cannot open input file")
}

func TestMaxOutputJSON(t *testing.T) {
	run := runCLI(t, "3 1 4 1", "--output-format", "json")
	require.Equal(t, 0, run.code)

	var response struct {
		Msg    string `json:"msg"`
		Failed bool   `json:"failed"`
		Data   struct {
			Input quad.Quad `json:"input"`
			Max   int32     `json:"max"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(run.stdout), &response))
	assert.False(t, response.Failed)
	assert.Equal(t, "maximum computed", response.Msg)
	assert.Equal(t, int32(4), response.Data.Max)
	assert.Equal(t, quad.New(3, 1, 4, 1), response.Data.Input)
}

func TestMaxOutputJSONFailed(t *testing.T) {
	run := runCLI(t, "3 1", "--output-format", "json")
	assert.Equal(t, 1, run.code)
	assert.Contains(t, run.stdout, `"failed": true`)
}

func TestMaxOutputYML(t *testing.T) {
	run := runCLI(t, "3 1 4 1", "--output-format", "yml")
	assert.Equal(t, 0, run.code)
	assert.Contains(t, run.stdout, "max: 4")
	assert.Contains(t, run.stdout, "failed: false")
}

func TestMaxOutputTable(t *testing.T) {
	run := runCLI(t, "3 1 4 1", "--output-format", "table")
	assert.Equal(t, 0, run.code)
	assert.Contains(t, run.stdout, "command result")
	assert.Contains(t, run.stdout, "maximum computed")
	for _, row := range []string{`a\s*\|\s*3`, `b\s*\|\s*1`, `c\s*\|\s*4`, `d\s*\|\s*1`, `max\s*\|\s*4`} {
		assert.Regexp(t, row, run.stdout)
	}
}

func TestMaxOutputNone(t *testing.T) {
	run := runCLI(t, "3 1 4 1", "--output-format", "none")
	assert.Equal(t, 0, run.code)
	assert.Empty(t, run.stdout)
}

func TestUnsupportedOutputFormat(t *testing.T) {
	run := runCLI(t, "3 1 4 1", "--output-format", "xml")
	assert.Equal(t, 1, run.code)
	assert.Empty(t, run.stdout)
}

func TestUnexpectedArgs(t *testing.T) {
	run := runCLI(t, "3 1 4 1", "3", "1", "4", "1")
	assert.Equal(t, 1, run.code)
	assert.Empty(t, run.stdout)
}

func TestVersion(t *testing.T) {
	run := runCLI(t, "", "version")
	assert.Equal(t, 0, run.code)
	assert.True(t, strings.HasPrefix(run.stdout, common.AppName))
}

func TestConfigValues(t *testing.T) {
	run := runCLI(t, "", "config", "values", "--log-level", "error")
	assert.Equal(t, 0, run.code)
	assert.Contains(t, run.stdout, "level: error")
	assert.Contains(t, run.stdout, "format: text")
}

func TestMaxIgnoresInputFromEnv(t *testing.T) {
	t.Setenv("MAXFOUR_INPUT_STRING", "9 9 9 9")
	t.Setenv("MAXFOUR_INPUT_FILE", filepath.Join(t.TempDir(), "missing.txt"))

	run := runCLI(t, "1 2 3 4")
	assert.Equal(t, 0, run.code)
	assert.Equal(t, "4\n", run.stdout)
}

func TestMaxIgnoresInputFromConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "maxfour.yml")
	require.NoError(t, os.WriteFile(file, []byte("input:\n  string: 9 9 9 9\n  file: /nonexistent\n"), 0644))

	run := runCLIWithConfig(t, file, "1 2 3 4")
	assert.Equal(t, 0, run.code)
	assert.Equal(t, "4\n", run.stdout)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "maxfour.yml")
	require.NoError(t, os.WriteFile(file, []byte("log:\n  level: error\n"), 0644))

	run := runCLIWithConfig(t, file, "", "config", "file")
	assert.Equal(t, 0, run.code)
	assert.Equal(t, file+"\n", run.stdout)

	missing := filepath.Join(t.TempDir(), "missing.yml")
	run = runCLIWithConfig(t, missing, "", "config", "file", "--output-format", "json")
	assert.Equal(t, 0, run.code)
	assert.Contains(t, run.stdout, "config file does not exist")
}

func TestConfigValuesTable(t *testing.T) {
	run := runCLI(t, "", "config", "values", "--output-format", "table")
	assert.Equal(t, 0, run.code)
	assert.Regexp(t, `output\.format\s*\|\s*table`, run.stdout)
}

func TestVersionTable(t *testing.T) {
	run := runCLI(t, "", "version", "--output-format", "table")
	assert.Equal(t, 0, run.code)
	assert.Contains(t, run.stdout, "go version")
}

func TestNoColor(t *testing.T) {
	run := runCLI(t, "1 2 3")
	assert.Equal(t, 1, run.code)
	assert.Contains(t, run.stderr, "\x1b[")

	run = runCLI(t, "1 2 3", "--no-color")
	assert.Equal(t, 1, run.code)
	assert.Contains(t, run.stderr, "insufficient input")
	assert.NotContains(t, run.stderr, "\x1b[")
}
