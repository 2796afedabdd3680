package nextversion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelTableLookup(t *testing.T) {
	table := DefaultChannelTable()

	tests := []struct {
		branch     string
		channel    Channel
		recognized bool
	}{
		{"release", ChannelNone, true},
		{"main", ChannelNone, true},
		{"master", ChannelNone, true},
		{"staging", ChannelBeta, true},
		{"dev", ChannelAlpha, true},
		{"development", ChannelAlpha, true},
		{"MAIN", ChannelNone, true}, // lowercased once before lookup
		{"Dev", ChannelAlpha, true},
		{"STAGING", ChannelBeta, true},
		{"feature/login", ChannelNone, false},
		// Exact match only: a channel name inside a branch name must not
		// classify the branch.
		{"feature/alpha-login", ChannelNone, false},
		{"beta-testing", ChannelNone, false},
		{"", ChannelNone, false},
	}

	for _, test := range tests {
		t.Run(test.branch, func(t *testing.T) {
			channel, recognized := table.Lookup(test.branch)
			require.Equal(t, test.channel, channel)
			require.Equal(t, test.recognized, recognized)
		})
	}
}

func TestChannelTableWithOverrides(t *testing.T) {
	table := DefaultChannelTable().WithOverrides(map[string]Channel{
		"Integration": ChannelAlpha,
		"main":        ChannelBeta,
	})

	channel, recognized := table.Lookup("integration")
	require.True(t, recognized)
	require.Equal(t, ChannelAlpha, channel)

	channel, recognized = table.Lookup("main")
	require.True(t, recognized)
	require.Equal(t, ChannelBeta, channel)

	// Untouched defaults survive
	channel, recognized = table.Lookup("dev")
	require.True(t, recognized)
	require.Equal(t, ChannelAlpha, channel)

	// The original table is not modified
	channel, _ = DefaultChannelTable().Lookup("main")
	require.Equal(t, ChannelNone, channel)
}
