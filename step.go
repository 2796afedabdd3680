package nextversion

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
)

// Step applies a bump to the (major, minor, patch) triple of base. Any
// pre-release suffix on base is discarded; bumping always produces a bare
// triple. BumpNone must be guarded upstream and is rejected here.
func Step(base semver.Version, bump BumpType) (semver.Version, error) {
	next := semver.Version{Major: base.Major, Minor: base.Minor, Patch: base.Patch}

	switch bump {
	case BumpMajor:
		next.Major++
		next.Minor = 0
		next.Patch = 0
	case BumpMinor:
		next.Minor++
		next.Patch = 0
	case BumpPatch:
		next.Patch++
	default:
		return semver.Version{}, fmt.Errorf("cannot step version with bump type %q", bump)
	}

	return next, nil
}

// StepString parses a version string (optional "v" prefix and pre-release
// suffix tolerated) and applies the bump. A string that does not parse as
// three non-negative integers fails with ErrInvalidVersionFormat; callers
// recover by keeping the original string and logging a warning.
func StepString(version string, bump BumpType) (string, error) {
	base, err := semver.Parse(strings.TrimPrefix(version, "v"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersionFormat, version)
	}

	next, err := Step(base, bump)
	if err != nil {
		return "", err
	}

	return next.String(), nil
}
