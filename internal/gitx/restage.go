package gitx

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"

	"wstrim/internal/wserr"
)

// Restage adds the current working-tree content of each path to the
// staging index, then persists the index once after all additions.
func (r *Repo) Restage(paths []string) error {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return &wserr.RepositoryError{Err: err}
	}

	for _, p := range paths {
		if err := r.stageFile(idx, p); err != nil {
			return err
		}
	}

	if err := r.repo.Storer.SetIndex(idx); err != nil {
		return &wserr.RepositoryError{Err: err}
	}
	return nil
}

// stageFile writes the file's content as a blob into the object
// database and points the index entry at it.
func (r *Repo) stageFile(idx *index.Index, path string) error {
	abs := filepath.Join(r.root, filepath.FromSlash(path))

	fi, err := os.Stat(abs)
	if err != nil {
		return &wserr.RepositoryError{Err: err}
	}

	h, err := r.storeBlob(abs, fi.Size())
	if err != nil {
		return err
	}

	e, err := idx.Entry(path)
	if errors.Is(err, index.ErrEntryNotFound) {
		e = idx.Add(path)
		e.Mode = filemode.Regular
		e.CreatedAt = fi.ModTime()
	} else if err != nil {
		return &wserr.RepositoryError{Err: err}
	}

	e.Hash = h
	e.Size = uint32(fi.Size())
	e.ModifiedAt = fi.ModTime()
	return nil
}

func (r *Repo) storeBlob(abs string, size int64) (plumbing.Hash, error) {
	obj := r.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(size)

	w, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, &wserr.RepositoryError{Err: err}
	}

	f, err := os.Open(abs)
	if err != nil {
		w.Close()
		return plumbing.ZeroHash, &wserr.RepositoryError{Err: err}
	}

	_, err = io.Copy(w, f)
	f.Close()
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return plumbing.ZeroHash, &wserr.RepositoryError{Err: err}
	}

	h, err := r.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, &wserr.RepositoryError{Err: err}
	}
	return h, nil
}
