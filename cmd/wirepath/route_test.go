package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns the resulting error.
// Output is captured so test runs stay quiet.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	var buf bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	return cmd.Execute()
}

// missingConfig points --config at a file that does not exist, so every
// test starts from built-in defaults rather than the developer's config.
func missingConfig(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestRoute_RejectsZeroBudget(t *testing.T) {
	err := execute(t, "route", "--config", missingConfig(t), "--budget", "0", "diagram.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget")
}

func TestRoute_RejectsNegativeClearance(t *testing.T) {
	err := execute(t, "route", "--config", missingConfig(t), "--clearance", "-4", "diagram.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clearance")
}

func TestRoute_RejectsBadBudgetFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[router]\nbudget_ms = 0\n"), 0o644))

	err := execute(t, "route", "--config", path, "diagram.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget")
}

func TestRoute_ValidValuesReachTheLoader(t *testing.T) {
	// Validation passes, so the next failure is the missing diagram file.
	err := execute(t, "route", "--config", missingConfig(t), "--budget", "16", "absent.json")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "budget")
	assert.Contains(t, err.Error(), "absent.json")
}

func TestCull_RejectsNegativePadding(t *testing.T) {
	err := execute(t, "cull", "--config", missingConfig(t), "--view", "0,0,800x600", "--pad", "-0.5", "diagram.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pad")
}
