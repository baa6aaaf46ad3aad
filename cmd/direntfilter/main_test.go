//go:build unix

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertwitch/direntfilter/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"EXPR", "NAME", "VERBOSE"} {
		key = configuration.EnvPrefix + "_" + key
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// sizedFiles creates a 10 KiB and a 10 MiB file.
func sizedFiles(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	small := filepath.Join(dir, "small.txt")
	large := filepath.Join(dir, "large.txt")

	require.NoError(t, os.WriteFile(small, make([]byte, 10*1024), 0o644))
	require.NoError(t, os.WriteFile(large, make([]byte, 10*1024*1024), 0o644))

	return small, large
}

func TestRun_Success(t *testing.T) {
	clearEnv(t)
	small, large := sizedFiles(t)

	var stdout, stderr bytes.Buffer
	code := run(
		[]string{"--expr", "item.len > parseSize('5MiB')", "--name", "item"},
		strings.NewReader(small+"\n"+large+"\n"),
		&stdout, &stderr,
	)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, large+"\n", stdout.String())
}

func TestRun_DefaultVariable(t *testing.T) {
	clearEnv(t)
	small, large := sizedFiles(t)

	var stdout, stderr bytes.Buffer
	code := run(
		[]string{"-e", "item.len < parseSize('1MB')"},
		strings.NewReader(small+"\n\n"+large),
		&stdout, &stderr,
	)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, small+"\n", stdout.String())
}

func TestRun_CustomVariable(t *testing.T) {
	clearEnv(t)
	small, large := sizedFiles(t)

	var stdout, stderr bytes.Buffer
	code := run(
		[]string{"-e", "f.is_file && f.name == 'large.txt'", "-n", "f"},
		strings.NewReader(small+"\n"+large+"\n"),
		&stdout, &stderr,
	)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, large+"\n", stdout.String())
}

func TestRun_ProcessEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(configuration.EnvPrefix+"_EXPR", "e.len > parseSize('5MiB')")
	t.Setenv(configuration.EnvPrefix+"_NAME", "e")
	small, large := sizedFiles(t)

	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(small+"\n"+large+"\n"), &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, large+"\n", stdout.String())
}

func TestRun_EnvFileWithFlagOverride(t *testing.T) {
	clearEnv(t)
	small, large := sizedFiles(t)

	envFile := filepath.Join(t.TempDir(), "filter.env")
	require.NoError(t, os.WriteFile(envFile, []byte(configuration.EnvPrefix+"_EXPR=item.len > parseSize('5MiB')\n"), 0o600))

	var stdout, stderr bytes.Buffer
	code := run(
		[]string{"--env-file", envFile},
		strings.NewReader(small+"\n"+large+"\n"),
		&stdout, &stderr,
	)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, large+"\n", stdout.String())

	stdout.Reset()
	code = run(
		[]string{"--env-file", envFile, "--expr", "item.len < parseSize('5MiB')"},
		strings.NewReader(small+"\n"+large+"\n"),
		&stdout, &stderr,
	)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, small+"\n", stdout.String())
}

func TestRun_Fail(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"Fail_MissingExpression", nil, "no expression was configured"},
		{"Fail_CompileError", []string{"-e", "item.len >"}, "failed to compile expression"},
		{"Fail_InvalidVariable", []string{"-e", "true", "-n", "my-item"}, "invalid variable name"},
		{"Fail_MissingEnvFile", []string{"-e", "true", "--env-file", "/nonexistent/filter.env"}, "failed to read env files"},
		{"Fail_UnexpectedArgument", []string{"-e", "true", "extra"}, "unknown command"},
		{"Fail_NonBoolean", []string{"-e", "item.len"}, "did not return a boolean result"},
		{"Fail_MalformedSize", []string{"-e", "item.len > parseSize('notasize')"}, "parseSize"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			small, _ := sizedFiles(t)

			var stdout, stderr bytes.Buffer
			code := run(tc.args, strings.NewReader(small+"\n"), &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tc.wantErr)
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	clearEnv(t)
	small, _ := sizedFiles(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "-e", "item.is_file"}, strings.NewReader(small+"\n"), &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, small+"\n", stdout.String())
	assert.Contains(t, stderr.String(), "Compiled expression")
	assert.Contains(t, stderr.String(), "accepted=1")
}
