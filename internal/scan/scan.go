// Package scan computes the HEAD-to-index diff and classifies staged
// lines that end with trailing whitespace.
package scan

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/binary"
	"github.com/pmezard/go-difflib/difflib"

	"wstrim/internal/gitx"
	"wstrim/internal/wserr"
)

// hunkContext is the number of unchanged lines emitted around each
// edit, matching patch output.
const hunkContext = 3

// TrailingLineMap maps a repo-relative path to the ascending 1-based
// line numbers, in the staged version of the file, whose content ends
// with a space or tab. Files with no flagged lines are absent.
type TrailingLineMap map[string][]int

// Scan diffs the HEAD tree (or an empty tree for a repository with no
// commits) against the staging index and returns the flagged lines per
// file, restricted by the optional pathspec filters.
func Scan(repo *gitx.Repo, filters []string) (TrailingLineMap, error) {
	head, err := headBlobs(repo)
	if err != nil {
		return nil, err
	}

	idx, err := repo.Index()
	if err != nil {
		return nil, err
	}

	spec := NewPathspec(filters)
	result := TrailingLineMap{}

	for _, e := range idx.Entries {
		if e.Mode != filemode.Regular && e.Mode != filemode.Executable {
			continue
		}
		if !spec.Match(e.Name) {
			continue
		}

		oldHash, tracked := head[e.Name]
		if tracked && oldHash == e.Hash {
			continue
		}

		newData, err := repo.BlobContents(e.Hash)
		if err != nil {
			return nil, err
		}

		isBin, err := binary.IsBinary(bytes.NewReader(newData))
		if err != nil {
			return nil, &wserr.RepositoryError{Err: err}
		}
		if isBin {
			continue
		}

		var oldData []byte
		if tracked {
			oldData, err = repo.BlobContents(oldHash)
			if err != nil {
				return nil, err
			}
		}

		if lines := flaggedLines(oldData, newData); len(lines) > 0 {
			result[e.Name] = lines
		}
	}

	return result, nil
}

// headBlobs maps every path in the HEAD tree to its blob hash.
// An unborn HEAD yields an empty map, so the diff runs against an
// empty tree.
func headBlobs(repo *gitx.Repo) (map[string]plumbing.Hash, error) {
	tree, err := repo.HeadTree()
	if err != nil {
		return nil, err
	}

	blobs := map[string]plumbing.Hash{}
	if tree == nil {
		return blobs, nil
	}

	err = tree.Files().ForEach(func(f *object.File) error {
		blobs[f.Name] = f.Hash
		return nil
	})
	if err != nil {
		return nil, &wserr.RepositoryError{Err: err}
	}
	return blobs, nil
}

// flaggedLines renders the old→new diff as grouped hunks and returns
// the new-side line numbers of hunk lines that carry trailing
// whitespace. Context and added lines qualify; deletions have no
// new-side number.
func flaggedLines(oldData, newData []byte) []int {
	var oldLines, newLines []string
	if len(oldData) > 0 {
		oldLines = difflib.SplitLines(string(oldData))
	}
	if len(newData) > 0 {
		newLines = difflib.SplitLines(string(newData))
	}

	var flagged []int
	matcher := difflib.NewMatcher(oldLines, newLines)
	for _, group := range matcher.GetGroupedOpCodes(hunkContext) {
		for _, op := range group {
			if op.Tag == 'd' {
				continue
			}
			for j := op.J1; j < op.J2; j++ {
				if hasTrailingWhitespace(newLines[j]) {
					flagged = append(flagged, j+1)
				}
			}
		}
	}
	return flagged
}

// hasTrailingWhitespace reports whether the line content, ignoring the
// LF terminator, ends with a space or tab. Lines that are not valid
// UTF-8 are never flagged; binary-ish content must not be rewritten.
func hasTrailingWhitespace(line string) bool {
	line = strings.TrimSuffix(line, "\n")
	if !utf8.ValidString(line) {
		return false
	}
	return strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t")
}
