package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	require.Equal(t, "1.4.0", normalizeVersion("v1.4.0"))
	require.Equal(t, "1.4.0", normalizeVersion("1.4.0"))
}

func TestRunSelfUpdate_DevBuild(t *testing.T) {
	require.EqualError(t, runSelfUpdate(t.Context()), "self-update is only available in release builds")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	require.True(t, names["synth"])
	require.True(t, names["update"])
	require.True(t, names["version"])
	require.NotNil(t, rootCmd.Flags().Lookup("annexf"))
	require.NotNil(t, synthCmd.Flags().Lookup("fscod2"))
}
