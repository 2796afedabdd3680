// Package nextversion decides the next semantic version for a component
// from its Git history: existing release tags, commit messages since the
// latest tag, and the branch under analysis.
package nextversion

import (
	"github.com/blang/semver"
	"github.com/go-git/go-git/v5"
)

// BumpType is the magnitude of change driving which component of the
// version triple increments.
type BumpType string

const (
	BumpMajor BumpType = "major"
	BumpMinor BumpType = "minor"
	BumpPatch BumpType = "patch"
	// BumpNone is only produced when there are zero commits since the
	// latest tag, or when a decision is degraded by an error.
	BumpNone BumpType = "none"
)

// Channel is the pre-release track a version belongs to. ChannelNone
// means stable.
type Channel string

const (
	ChannelNone  Channel = ""
	ChannelAlpha Channel = "alpha"
	ChannelBeta  Channel = "beta"
)

// ParsedTag pairs a raw tag string observed in the repository with the
// semantic version it parses to.
type ParsedTag struct {
	Raw     string
	Version semver.Version
}

// Options configures a version decision against a live repository.
type Options struct {
	// Repository is the Git repository to analyze
	Repository *git.Repository

	// Branch overrides current-branch auto-discovery
	Branch string

	// TargetBranch overrides the branch used for channel classification
	TargetBranch string

	// ForceFirstRelease treats the repository as having no release history
	ForceFirstRelease bool

	// Channels overrides the built-in branch-to-channel table
	Channels *ChannelTable
}

// Inputs are the materialized facts a decision is computed from. They are
// gathered once per invocation and never mutated.
type Inputs struct {
	// Tags is the unfiltered set of raw tag names in the repository
	Tags []string

	// Commits holds commit subject lines since the latest release tag,
	// newest first
	Commits []string

	// Branch is the branch name used for channel classification
	Branch string

	// ForceFirstRelease ignores Tags and takes the first-release path
	ForceFirstRelease bool

	// Channels overrides the built-in branch-to-channel table
	Channels *ChannelTable
}

// Decision is the result of one version computation. The field set and
// its JSON names are stable; CI pipelines consume them directly.
type Decision struct {
	CurrentVersion     string   `json:"currentVersion"`
	BumpType           BumpType `json:"bumpType"`
	NewVersion         string   `json:"newVersion"`
	LastReleaseTag     string   `json:"lastReleaseTag"`
	TargetBranch       string   `json:"targetBranch"`
	Channel            Channel  `json:"channel"`
	Warning            string   `json:"warning"`
	ActionRequired     bool     `json:"actionRequired"`
	ActionInstructions string   `json:"actionInstructions"`
	IsFirstRelease     bool     `json:"isFirstRelease"`
}
