package nextversion

import (
	"regexp"
	"sort"
	"strings"

	"github.com/blang/semver"
)

// tagPattern admits release tags with an optional leading "v" and an
// optional pre-release suffix. Everything else is repository noise.
var tagPattern = regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[\w.]+)?$`)

// ParseTag parses a raw tag string into a ParsedTag. The second return
// value is false for tags that are not semantic versions.
func ParseTag(raw string) (ParsedTag, bool) {
	if !tagPattern.MatchString(raw) {
		return ParsedTag{}, false
	}

	version, err := semver.ParseTolerant(raw)
	if err != nil {
		return ParsedTag{}, false
	}

	return ParsedTag{Raw: raw, Version: version}, true
}

// SelectTags filters raw tag strings down to parseable release tags and
// returns them in descending version order: stable sorts above any
// pre-release of the same triple, beta above alpha, higher build numbers
// above lower ones. When two raw strings normalize to the same version
// the "v"-prefixed one sorts first, then the lexicographically smaller
// raw string, so the ordering is deterministic for any input set.
func SelectTags(raw []string) []ParsedTag {
	tags := make([]ParsedTag, 0, len(raw))
	for _, r := range raw {
		if tag, ok := ParseTag(r); ok {
			tags = append(tags, tag)
		}
	}

	sort.SliceStable(tags, func(i, j int) bool {
		switch tags[i].Version.Compare(tags[j].Version) {
		case 1:
			return true
		case -1:
			return false
		}

		iPrefixed := strings.HasPrefix(tags[i].Raw, "v")
		jPrefixed := strings.HasPrefix(tags[j].Raw, "v")
		if iPrefixed != jPrefixed {
			return iPrefixed
		}

		return tags[i].Raw < tags[j].Raw
	})

	return tags
}

// LatestTag returns the highest release tag in the set, or false if no
// tag parses as a semantic version.
func LatestTag(raw []string) (ParsedTag, bool) {
	tags := SelectTags(raw)
	if len(tags) == 0 {
		return ParsedTag{}, false
	}
	return tags[0], true
}

// VersionChannel extracts the pre-release channel and build number from
// a version. Suffixes outside the alpha/beta channels (e.g. "rc.1")
// order as pre-releases but carry no channel here, since the channel set
// is closed over {stable, alpha, beta}.
func VersionChannel(v semver.Version) (Channel, uint64) {
	if len(v.Pre) == 0 {
		return ChannelNone, 0
	}

	var channel Channel
	switch v.Pre[0].VersionStr {
	case string(ChannelAlpha):
		channel = ChannelAlpha
	case string(ChannelBeta):
		channel = ChannelBeta
	default:
		return ChannelNone, 0
	}

	var build uint64
	if len(v.Pre) > 1 && v.Pre[1].IsNum {
		build = v.Pre[1].VersionNum
	}

	return channel, build
}
