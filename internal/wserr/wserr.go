// Package wserr defines the two error kinds the tool reports:
// failures from the git layer and failures from plain file I/O.
// Both are fatal to a run; neither is ever retried.
package wserr

// RepositoryError wraps a failure from the repository layer:
// discovery, HEAD/tree resolution, blob access, or index read/write.
type RepositoryError struct {
	Err error
}

func (e *RepositoryError) Error() string { return e.Err.Error() }

func (e *RepositoryError) Unwrap() error { return e.Err }

// IoError wraps a failure from file I/O during the rewrite stage,
// or from retrieving the current working directory.
type IoError struct {
	Err error
}

func (e *IoError) Error() string { return e.Err.Error() }

func (e *IoError) Unwrap() error { return e.Err }
