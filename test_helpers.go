package nextversion

import (
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

var testSignature = &object.Signature{
	Name:  "test",
	Email: "test@example.com",
	When:  time.Now(),
}

// testRepoCreate creates a new in-memory git repository for testing
func testRepoCreate() (*git.Repository, error) {
	storage := memory.NewStorage()
	fs := memfs.New()
	return git.Init(storage, fs)
}

var testFileSeq int

// testRepoCommit adds one commit with the given message, touching a
// unique file so each commit has content.
func testRepoCommit(repo *git.Repository, message string) (plumbing.Hash, error) {
	workTree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	testFileSeq++
	filename := fmt.Sprintf("file_%d.txt", testFileSeq)

	err = writeFile(workTree.Filesystem, filename, message)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	_, err = workTree.Add(filename)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	return workTree.Commit(message, &git.CommitOptions{Author: testSignature})
}

// testRepoCheckoutBranch creates and checks out a branch at HEAD.
func testRepoCheckoutBranch(repo *git.Repository, name string) error {
	workTree, err := repo.Worktree()
	if err != nil {
		return err
	}

	return workTree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
}

// testRepoWithHistory builds a repository with one tagged release commit
// (all given tags point at it) followed by one commit per entry in
// commitsAfter.
func testRepoWithHistory(tags []string, commitsAfter []string) (*git.Repository, error) {
	repo, err := testRepoCreate()
	if err != nil {
		return nil, err
	}

	releaseCommit, err := testRepoCommit(repo, "Release commit")
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		_, err = repo.CreateTag(tag, releaseCommit, nil)
		if err != nil {
			return nil, err
		}
	}

	for _, message := range commitsAfter {
		_, err = testRepoCommit(repo, message)
		if err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// writeFile writes content to a file in the given filesystem
func writeFile(fs billy.Filesystem, filename, content string) error {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write([]byte(content))
	return err
}
