package nextversion

import (
	"errors"
	"fmt"

	"github.com/blang/semver"
)

const zeroVersion = "0.0.0"

// Decide computes a version decision from materialized inputs. It is a
// pure function: identical inputs always produce the identical decision,
// and it never fails — the worst outcome is a decision flagged with
// ActionRequired and an explanation.
func Decide(in Inputs) Decision {
	table := in.Channels
	if table == nil {
		table = DefaultChannelTable()
	}

	targetChannel, recognized := table.Lookup(in.Branch)

	tags := SelectTags(in.Tags)
	if in.ForceFirstRelease || len(tags) == 0 {
		return firstRelease(in.Branch, targetChannel, recognized)
	}

	latest := tags[0]
	current := latest.Version

	decision := Decision{
		CurrentVersion: current.String(),
		LastReleaseTag: latest.Raw,
		TargetBranch:   in.Branch,
	}

	// Nothing landed since the latest tag: the version stands as-is and
	// no pre-release suffix is recomputed.
	if len(in.Commits) == 0 {
		decision.BumpType = BumpNone
		decision.NewVersion = current.String()
		decision.Channel, _ = VersionChannel(current)
		return decision
	}

	currentChannel, _ := VersionChannel(current)
	if err := ValidateTransition(currentChannel, targetChannel); err != nil {
		decision.BumpType = BumpNone
		decision.NewVersion = current.String()
		decision.Channel = currentChannel
		decision.Warning = err.Error()
		decision.ActionRequired = true

		var violation *LifecycleViolationError
		if errors.As(err, &violation) {
			decision.ActionInstructions = violation.Instructions()
		}
		return decision
	}

	bump := ClassifyCommits(in.Commits)

	next, err := Step(current, bump)
	if err != nil {
		// Unreachable with a non-empty commit list; degrade instead of
		// crashing the pipeline regardless.
		decision.BumpType = BumpNone
		decision.NewVersion = current.String()
		decision.Warning = err.Error()
		return decision
	}

	if targetChannel != ChannelNone {
		next.Pre = []semver.PRVersion{
			{VersionStr: string(targetChannel)},
			{VersionNum: NextBuildNumber(tags, next, targetChannel), IsNum: true},
		}
		decision.Channel = targetChannel
	}

	decision.BumpType = bump
	decision.NewVersion = next.String()

	if !recognized && in.Branch != "" {
		decision.Warning = fmt.Sprintf(
			"branch %q is not a recognized release branch; versioning as stable", in.Branch)
	}

	return decision
}

// firstRelease bootstraps a repository with no usable release history:
// the current version fixes at 0.0.0 and the first release is 1.0.0,
// suffixed for the branch's channel when one applies.
func firstRelease(branch string, channel Channel, recognized bool) Decision {
	decision := Decision{
		CurrentVersion: zeroVersion,
		BumpType:       BumpMajor,
		NewVersion:     "1.0.0",
		TargetBranch:   branch,
		IsFirstRelease: true,
	}

	if channel != ChannelNone {
		decision.NewVersion = fmt.Sprintf("1.0.0-%s.1", channel)
		decision.Channel = channel
	}

	if !recognized && branch != "" {
		decision.Warning = fmt.Sprintf(
			"branch %q is not a recognized release branch; versioning as stable", branch)
	}

	return decision
}

// Compute gathers decision inputs from a live repository and runs Decide.
// Repository access failures never escape: they degrade into a
// first-release-shaped decision carrying the error as a warning, so a CI
// pipeline always receives a well-formed result.
func Compute(opts Options) Decision {
	if opts.Repository == nil {
		return degraded(opts.TargetBranch, fmt.Errorf("repository is required"))
	}

	branch := opts.Branch
	if branch == "" {
		discovered, err := currentBranchName(opts.Repository)
		if err != nil {
			discovered = defaultBranchName(opts.Repository)
		}
		branch = discovered
	}

	target := branch
	if opts.TargetBranch != "" {
		target = opts.TargetBranch
	}

	tags, err := listTags(opts.Repository)
	if err != nil {
		return degraded(target, fmt.Errorf("listing tags: %w", err))
	}

	var sinceTag string
	if latest, ok := LatestTag(tags); ok {
		sinceTag = latest.Raw
	}

	commits, err := commitMessagesSince(opts.Repository, sinceTag)
	if err != nil {
		return degraded(target, fmt.Errorf("listing commits: %w", err))
	}

	return Decide(Inputs{
		Tags:              tags,
		Commits:           commits,
		Branch:            target,
		ForceFirstRelease: opts.ForceFirstRelease,
		Channels:          opts.Channels,
	})
}

func degraded(branch string, err error) Decision {
	return Decision{
		CurrentVersion: zeroVersion,
		BumpType:       BumpNone,
		NewVersion:     zeroVersion,
		TargetBranch:   branch,
		Warning:        err.Error(),
		ActionRequired: true,
		IsFirstRelease: true,
	}
}
