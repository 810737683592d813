package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pipei/compiler/gen"
)

func writeTable(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "pipei.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunGeneratesFromTable(t *testing.T) {
	dir := t.TempDir()
	config := writeTable(t, dir, "package: pipei\narities: \"0-2\"\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", config, "-report", "-"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	for _, name := range []string{"arity_000.go", "arity_001.go", "arity_002.go"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, "arity_003.go"))

	var report gen.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, 3, report.Arities)
	assert.Equal(t, []string{"arity_000.go", "arity_001.go", "arity_002.go"}, report.Written)
	assert.Equal(t, "pipei", report.Package)
}

func TestRunFlagsOverrideTable(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	config := writeTable(t, dir, "arities: \"0-5\"\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", config, "-target", out, "-arities", "4", "-workers", "2"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "arity_004.go", entries[0].Name())
	assert.Empty(t, stdout.String())
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	config := writeTable(t, dir, "arities: \"1\"\n")
	ctx := context.Background()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitStale, run(ctx, []string{"-config", config, "-check"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "arity_001.go")

	stderr.Reset()
	require.Equal(t, exitOK, run(ctx, []string{"-config", config}, &stdout, &stderr), stderr.String())
	assert.Equal(t, exitOK, run(ctx, []string{"-config", config, "-check"}, &stdout, &stderr))

	path := filepath.Join(dir, "arity_001.go")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(data, "\n// edited\n"...), 0o644))

	stderr.Reset()
	assert.Equal(t, exitStale, run(ctx, []string{"-config", config, "-check"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "outdated")
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"positional argument", []string{"extra"}},
		{"check with watch", []string{"-check", "-watch"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, exitUsage, run(context.Background(), tt.args, &stdout, &stderr))
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("explicit config must exist", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr.String(), "missing.yaml")
	})

	t.Run("bad arities flag", func(t *testing.T) {
		dir := t.TempDir()
		config := writeTable(t, dir, "package: pipei\n")
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{"-config", config, "-arities", "3-1"}, &stdout, &stderr)
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr.String(), "-arities")
	})

	t.Run("arity above the limit", func(t *testing.T) {
		dir := t.TempDir()
		config := writeTable(t, dir, "arities: \"101\"\n")
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{"-config", config}, &stdout, &stderr)
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr.String(), "arity 101")
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Info("hello", "n", 1)
	// Non-terminal writers get JSON.
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
