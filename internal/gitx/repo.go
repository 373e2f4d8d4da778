// Package gitx wraps the go-git repository surface the pipeline needs:
// upward discovery, the HEAD tree, the staging index, blob contents,
// and re-staging of rewritten files.
package gitx

import (
	"errors"
	"io"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"

	"wstrim/internal/wserr"
)

// Repo is an opened repository plus its resolved working-tree root.
type Repo struct {
	repo *git.Repository
	root string
}

// Open discovers the enclosing repository by walking upward from start.
// For a bare repository the root falls back to the start path.
func Open(start string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(start, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &wserr.RepositoryError{Err: err}
	}

	root := start
	if wt, wtErr := r.Worktree(); wtErr == nil {
		root = wt.Filesystem.Root()
	}

	return &Repo{repo: r, root: root}, nil
}

// Root returns the working-tree root path.
func (r *Repo) Root() string {
	return r.root
}

// HeadTree returns the tree of the last commit, or nil for a
// repository with no commits yet.
func (r *Repo) HeadTree() (*object.Tree, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, &wserr.RepositoryError{Err: err}
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, &wserr.RepositoryError{Err: err}
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, &wserr.RepositoryError{Err: err}
	}
	return tree, nil
}

// Index returns the staging index.
func (r *Repo) Index() (*index.Index, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, &wserr.RepositoryError{Err: err}
	}
	return idx, nil
}

// BlobContents reads the full contents of a blob object.
func (r *Repo) BlobContents(h plumbing.Hash) ([]byte, error) {
	blob, err := r.repo.BlobObject(h)
	if err != nil {
		return nil, &wserr.RepositoryError{Err: err}
	}

	rd, err := blob.Reader()
	if err != nil {
		return nil, &wserr.RepositoryError{Err: err}
	}
	defer rd.Close()

	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, &wserr.RepositoryError{Err: err}
	}
	return data, nil
}
