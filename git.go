package nextversion

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// fallbackBranch is used when neither the current nor the default branch
// can be discovered.
const fallbackBranch = "main"

// OpenRepository opens a Git repository at the specified path
func OpenRepository(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}

// listTags returns the short names of all tags in the repository,
// unfiltered. Parsing and ordering happen in SelectTags.
func listTags(repo *git.Repository) ([]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return names, nil
}

// tagCommitHash resolves the commit a tag points to, for both annotated
// and lightweight tags.
func tagCommitHash(repo *git.Repository, tagName string) (plumbing.Hash, error) {
	ref, err := repo.Reference(plumbing.NewTagReferenceName(tagName), true)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving tag %q: %w", tagName, err)
	}

	obj, err := repo.TagObject(ref.Hash())
	switch err {
	case nil:
		// Annotated tag
		return obj.Target, nil
	case plumbing.ErrObjectNotFound:
		// Lightweight tag
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, fmt.Errorf("reading tag object %q: %w", tagName, err)
	}
}

// commitMessagesSince returns the subject lines of commits reachable from
// HEAD down to (but excluding) the commit sinceTag points to, newest
// first. An empty sinceTag walks the full history. A repository without
// any commits yields an empty list rather than an error, so a fresh
// repository takes the first-release path.
func commitMessagesSince(repo *git.Repository, sinceTag string) ([]string, error) {
	headRef, err := repo.Head()
	if err == plumbing.ErrReferenceNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	head, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting HEAD commit: %w", err)
	}

	var stop plumbing.Hash
	if sinceTag != "" {
		stop, err = tagCommitHash(repo, sinceTag)
		if err != nil {
			return nil, err
		}
	}

	var subjects []string
	walker := object.NewCommitPreorderIter(head, nil, nil)
	err = walker.ForEach(func(commit *object.Commit) error {
		if sinceTag != "" && commit.Hash == stop {
			return storer.ErrStop
		}
		subjects = append(subjects, subjectLine(commit.Message))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking commits: %w", err)
	}

	return subjects, nil
}

func subjectLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}

// currentBranchName returns the branch HEAD points to. A detached HEAD
// is an error; callers fall back to defaultBranchName.
func currentBranchName(repo *git.Repository) (string, error) {
	headRef, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	if !headRef.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch: %s", headRef.Name())
	}

	return headRef.Name().Short(), nil
}

// defaultBranchName discovers the repository's default branch: the
// origin remote's HEAD if one is recorded, otherwise the first of
// main/master that exists locally, otherwise the hardcoded fallback.
func defaultBranchName(repo *git.Repository) string {
	if ref, err := repo.Reference(plumbing.NewRemoteHEADReferenceName("origin"), false); err == nil {
		if target := ref.Target(); target.IsRemote() {
			return strings.TrimPrefix(target.Short(), "origin/")
		}
	}

	for _, name := range []string{"main", "master"} {
		if _, err := repo.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
			return name
		}
	}

	return fallbackBranch
}
