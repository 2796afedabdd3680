package nextversion

import "strings"

// Marker tables for commit classification. Matching is a case-insensitive
// substring test, which also covers the uppercase keyword forms
// ("BREAKING", "MAJOR", ...). The longer phrases come first so intent is
// obvious when reading a match, though any hit in the set is equivalent.
var (
	majorMarkers = []string{"breaking change", "breaking", "major", "!:"}
	minorMarkers = []string{"feat:", "feat(", "feature:", "feature", "minor", "add:", "new:"}
)

// ClassifyCommits maps commit subject lines to a bump type. A single
// MAJOR-matching message decides the whole classification and stops the
// scan; otherwise any MINOR match yields minor, and anything else is a
// patch. An empty list yields BumpNone. The branch name deliberately
// plays no role here.
func ClassifyCommits(messages []string) BumpType {
	if len(messages) == 0 {
		return BumpNone
	}

	sawMinor := false
	for _, message := range messages {
		lowered := strings.ToLower(message)

		if matchesAny(lowered, majorMarkers) {
			return BumpMajor
		}
		if matchesAny(lowered, minorMarkers) {
			sawMinor = true
		}
	}

	if sawMinor {
		return BumpMinor
	}
	return BumpPatch
}

func matchesAny(message string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
