package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	nextversion "github.com/GrexyLoco/K.Actions.NextActionVersion"
)

func TestFormatHuman(t *testing.T) {
	t.Run("Normal decision", func(t *testing.T) {
		out := formatHuman(nextversion.Decision{
			CurrentVersion: "1.2.3",
			BumpType:       nextversion.BumpPatch,
			NewVersion:     "1.2.4",
			LastReleaseTag: "v1.2.3",
			TargetBranch:   "main",
		})

		require.Contains(t, out, "current version: 1.2.3")
		require.Contains(t, out, "bump type:       patch")
		require.Contains(t, out, "new version:     1.2.4")
		require.Contains(t, out, "last release:    v1.2.3")
		require.NotContains(t, out, "warning")
		require.NotContains(t, out, "action required")
	})

	t.Run("Decision with action required", func(t *testing.T) {
		out := formatHuman(nextversion.Decision{
			CurrentVersion:     "1.3.0-beta.2",
			BumpType:           nextversion.BumpNone,
			NewVersion:         "1.3.0-beta.2",
			Channel:            nextversion.ChannelBeta,
			Warning:            "invalid pre-release transition: beta -> alpha",
			ActionRequired:     true,
			ActionInstructions: "Continue on beta or release a stable version first.",
		})

		require.Contains(t, out, "channel:         beta")
		require.Contains(t, out, "warning:         invalid pre-release transition")
		require.Contains(t, out, "action required:")
	})

	t.Run("First release", func(t *testing.T) {
		out := formatHuman(nextversion.Decision{
			CurrentVersion: "0.0.0",
			BumpType:       nextversion.BumpMajor,
			NewVersion:     "1.0.0",
			IsFirstRelease: true,
		})

		require.Contains(t, out, "first release:   true")
	})
}

func TestGithubOutputLines(t *testing.T) {
	lines := githubOutputLines(nextversion.Decision{
		CurrentVersion: "1.2.3",
		BumpType:       nextversion.BumpMinor,
		NewVersion:     "1.3.0-alpha.1",
		LastReleaseTag: "v1.2.3",
		TargetBranch:   "dev",
		Channel:        nextversion.ChannelAlpha,
		IsFirstRelease: false,
	})

	require.Len(t, lines, 10)
	require.Contains(t, lines, "currentVersion=1.2.3")
	require.Contains(t, lines, "bumpType=minor")
	require.Contains(t, lines, "newVersion=1.3.0-alpha.1")
	require.Contains(t, lines, "lastReleaseTag=v1.2.3")
	require.Contains(t, lines, "targetBranch=dev")
	require.Contains(t, lines, "channel=alpha")
	require.Contains(t, lines, "actionRequired=false")
	require.Contains(t, lines, "isFirstRelease=false")

	// Every line is a well-formed key=value pair
	for _, line := range lines {
		require.Contains(t, line, "=")
		require.False(t, strings.HasPrefix(line, "="))
	}
}
