package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-teixeira/http-enum/cli"
	"github.com/arthur-teixeira/http-enum/config"
)

var defaults = config.Config{
	LogLevel: "error",
	Policy:   config.DefaultPolicy,
	Format:   config.DefaultFormat,
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Run(args, &stdout, &stderr, defaults)
	return code, stdout.String(), stderr.String()
}

type record struct {
	Input  string `json:"input" yaml:"input"`
	Class  string `json:"class" yaml:"class"`
	Code   int    `json:"code" yaml:"code"`
	Text   string `json:"text" yaml:"text"`
	Method string `json:"method" yaml:"method"`
	Error  string `json:"error" yaml:"error"`
}

func TestClassByName(t *testing.T) {
	code, out, _ := run(t, "class", "client_error", "Informational")
	require.Equal(t, cli.ExitOK, code)

	var records []record
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "ClientError", records[0].Class)
	assert.Equal(t, "Informational", records[1].Class)
}

func TestClassByIntegerRFC7231(t *testing.T) {
	code, out, _ := run(t, "-format", "json", "class", "404", "199")
	assert.Equal(t, cli.ExitFailure, code)

	var records []record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "ClientError", records[0].Class)
	assert.Equal(t, 404, records[0].Code)
	assert.Equal(t, "Not Found", records[0].Text)
	assert.Empty(t, records[1].Class)
	assert.Contains(t, records[1].Error, "199 is not a valid value")
}

func TestClassByIntegerRFC9110(t *testing.T) {
	code, out, _ := run(t, "-policy", "rfc9110", "-format", "json", "class", "199", "9999")
	require.Equal(t, cli.ExitOK, code)

	var records []record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Informational", records[0].Class)
	assert.Zero(t, records[0].Code)
	assert.Equal(t, "ServerError", records[1].Class)
}

func TestCode(t *testing.T) {
	code, out, _ := run(t, "-format", "json", "code", "not found", "418")
	require.Equal(t, cli.ExitOK, code)

	var records []record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, 404, records[0].Code)
	assert.Equal(t, "ClientError", records[0].Class)
	assert.Equal(t, "I'm a teapot", records[1].Text)
}

func TestMethod(t *testing.T) {
	code, out, _ := run(t, "-format", "json", "method", "get", "BREW")
	assert.Equal(t, cli.ExitFailure, code)

	var records []record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "GET", records[0].Method)
	assert.NotEmpty(t, records[1].Error)
}

func TestUsage(t *testing.T) {
	code, _, stderr := run(t)
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, "usage: httpenum")

	code, _, _ = run(t, "frobnicate", "x")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, _ = run(t, "-policy", "rfc2616", "class", "404")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, _ = run(t, "-format", "xml", "class", "404")
	assert.Equal(t, cli.ExitFailure, code)
}

func TestSummaryLoggedAtInfo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := defaults
	cfg.LogLevel = "info"

	code := cli.Run([]string{"class", "404", "199"}, &stdout, &stderr, cfg)
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stderr.String(), "INFO: resolved 2 class value(s), 1 failed")
	assert.NotContains(t, stdout.String(), "INFO:")
}
