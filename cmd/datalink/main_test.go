// SPDX-License-Identifier: MIT

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

const doc = `name: ada
langs: [go, rust]
meta:
  active: true
`

// run executes the root command with args, feeding stdin, and isolating it
// from the environment and working directory config.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFmt(t *testing.T) {
	cfg := writeFile(t, "c.yaml", "")
	out, _, err := run(t, doc, "--config", cfg, "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t,
		`mapping { links: [{"name"} -> {"ada"}, {"langs"} -> sequence { links: [{"go"}, {"rust"}] }, {"meta"} -> mapping { links: [{"active"} -> {true}] }] }`+"\n",
		out)

	out, _, err = run(t, doc, "--config", cfg, "fmt", "--depth", "0", "-")
	require.NoError(t, err)
	assert.Equal(t, "mapping { links: [..., ..., ...] }\n", out)

	path := writeFile(t, "multi.yaml", "a: 1\n---\n[x]\n")
	out, _, err = run(t, "", "--config", cfg, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, "mapping { links: [{\"a\"} -> {1i64}] }\nsequence { links: [{\"x\"}] }\n", out)
}

func TestFmt_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "c.yaml", "format:\n  verbose: true\n  indent: \"\\t\"\n")
	out, _, err := run(t, "k: v\n", "--config", cfg, "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t, "mapping {\n\tlinks: [\n\t\t{\"k\"} -> {\"v\"}\n\t]\n}\n", out)

	bad := writeFile(t, "bad.yaml", "format:\n  strategy: lazy\n")
	_, _, err = run(t, "k: v\n", "--config", bad, "fmt", "-")
	assert.Error(t, err)
}

func TestQuery(t *testing.T) {
	cfg := writeFile(t, "c.yaml", "")
	out, _, err := run(t, doc, "--config", cfg, "query", "--key", "name", "--key", "meta", "-")
	require.NoError(t, err)
	assert.Equal(t, "{\"name\"} -> {\"ada\"}\n{\"meta\"} -> mapping { links: [{\"active\"} -> {true}] }\n", out)

	out, _, err = run(t, doc, "--config", cfg, "query", "--text", "ada", "-")
	require.NoError(t, err)
	assert.Equal(t, "{\"name\"} -> {\"ada\"}\n", out)

	out, _, err = run(t, doc, "--config", cfg, "query", "--limit", "1", "-")
	require.NoError(t, err)
	assert.Equal(t, "{\"name\"} -> {\"ada\"}\n", out)

	_, _, err = run(t, doc, "--config", cfg, "query", "--limit", "-1", "-")
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	cfg := writeFile(t, "c.yaml", "")
	out, _, err := run(t, doc, "--config", cfg, "walk", "-")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"mapping { links: [..., ..., ...] }",
		`  {"name"}: {"ada"}`,
		`  {"langs"}: sequence { links: [..., ...] }`,
		`    {"go"}`,
		`    {"rust"}`,
		`  {"meta"}: mapping { links: [...] }`,
		`    {"active"}: {true}`,
		"",
	}, "\n"), out)

	out, _, err = run(t, doc, "--config", cfg, "walk", "--order", "bfs", "--depth", "1", "-")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"mapping { links: [..., ..., ...] }",
		`  {"name"}: {"ada"}`,
		`  {"langs"}: sequence { links: [..., ...] }`,
		`  {"meta"}: mapping { links: [...] }`,
		"",
	}, "\n"), out)

	_, _, err = run(t, doc, "--config", cfg, "walk", "--order", "random", "-")
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	cfg := writeFile(t, "c.yaml", "log_level: error\n")
	_, errOut, err := run(t, "a: 1\n", "--config", cfg, "--log-level", "debug", "fmt", "-")
	require.NoError(t, err)
	assert.Contains(t, errOut, "configuration loaded")
	assert.Contains(t, errOut, "documents read")

	_, errOut, err = run(t, "a: 1\n", "--config", cfg, "fmt", "-")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	_, _, err = run(t, "a: 1\n", "--config", cfg, "--log-level", "loud", "fmt", "-")
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	cfg := writeFile(t, "c.yaml", "")
	_, _, err := run(t, "", "--config", cfg, "fmt", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
