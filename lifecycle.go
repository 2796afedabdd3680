package nextversion

import "github.com/blang/semver"

// forbiddenTransitions enumerates illegal channel moves. Everything not
// listed is allowed: starting a series from stable, graduating alpha to
// beta, releasing from either channel, or continuing on the same channel.
// Going from beta back to alpha is a regression within a series.
var forbiddenTransitions = map[Channel][]Channel{
	ChannelBeta: {ChannelAlpha},
}

// ValidateTransition checks whether moving from the current channel to
// the target channel is legal. A forbidden move returns a
// *LifecycleViolationError carrying a human-readable explanation; it is
// never raised as a panic.
func ValidateTransition(from, to Channel) error {
	for _, blocked := range forbiddenTransitions[from] {
		if to == blocked {
			return &LifecycleViolationError{From: from, To: to}
		}
	}
	return nil
}

// NextBuildNumber computes the build counter for the next pre-release on
// the given channel of base: one past the highest existing build among
// tags sharing the same (major, minor, patch) and channel, or 1 when the
// series has no tags yet.
func NextBuildNumber(tags []ParsedTag, base semver.Version, channel Channel) uint64 {
	var highest uint64

	for _, tag := range tags {
		v := tag.Version
		if v.Major != base.Major || v.Minor != base.Minor || v.Patch != base.Patch {
			continue
		}

		tagChannel, build := VersionChannel(v)
		if tagChannel != channel {
			continue
		}
		if build > highest {
			highest = build
		}
	}

	return highest + 1
}
