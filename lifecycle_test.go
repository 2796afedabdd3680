package nextversion

import (
	"testing"

	"github.com/blang/semver"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  Channel
		to    Channel
		legal bool
	}{
		{"Stable to alpha", ChannelNone, ChannelAlpha, true},
		{"Stable to beta", ChannelNone, ChannelBeta, true},
		{"Alpha to beta", ChannelAlpha, ChannelBeta, true},
		{"Alpha to stable", ChannelAlpha, ChannelNone, true},
		{"Beta to stable", ChannelBeta, ChannelNone, true},
		{"Alpha continues", ChannelAlpha, ChannelAlpha, true},
		{"Beta continues", ChannelBeta, ChannelBeta, true},
		{"Stable to stable", ChannelNone, ChannelNone, true},
		{"Beta back to alpha", ChannelBeta, ChannelAlpha, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateTransition(test.from, test.to)
			if test.legal {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)

			var violation *LifecycleViolationError
			require.ErrorAs(t, err, &violation)
			require.Equal(t, test.from, violation.From)
			require.Equal(t, test.to, violation.To)
			require.Contains(t, violation.Error(), "beta -> alpha")
			require.NotEmpty(t, violation.Instructions())
		})
	}
}

func TestNextBuildNumber(t *testing.T) {
	tags := SelectTags([]string{
		"v1.3.0-alpha.1",
		"v1.3.0-alpha.2",
		"v1.3.0-beta.1",
		"v1.2.0-alpha.7",
		"v1.3.0",
	})
	base := semver.MustParse("1.3.0")

	t.Run("Continues an existing series", func(t *testing.T) {
		require.Equal(t, uint64(3), NextBuildNumber(tags, base, ChannelAlpha))
		require.Equal(t, uint64(2), NextBuildNumber(tags, base, ChannelBeta))
	})

	t.Run("Other base versions do not count", func(t *testing.T) {
		other := semver.MustParse("1.4.0")
		require.Equal(t, uint64(1), NextBuildNumber(tags, other, ChannelAlpha))
	})

	t.Run("Empty tag set starts at one", func(t *testing.T) {
		require.Equal(t, uint64(1), NextBuildNumber(nil, base, ChannelBeta))
	})
}
