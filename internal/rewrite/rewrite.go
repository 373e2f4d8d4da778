// Package rewrite rewrites flagged files line by line, trimming
// trailing whitespace on exactly the flagged line numbers and
// atomically replacing each original via a temp-file-plus-rename.
package rewrite

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/maps"

	"wstrim/internal/fs"
	"wstrim/internal/wserr"
)

// Rewrite trims the flagged lines of every file in the map, one file
// at a time. Files are processed in sorted path order so failures are
// reproducible. The first error aborts the run.
func Rewrite(root string, files map[string][]int) error {
	fsys := fs.NewOSFS()

	names := maps.Keys(files)
	sort.Strings(names)

	for _, name := range names {
		if err := rewriteFile(fsys, root, name, files[name]); err != nil {
			return err
		}
	}
	return nil
}

// TempName derives the temp sibling name for a repo-relative path:
// the original name plus a hash of that name, so the temp file lands
// in the same directory and cannot collide with tracked content.
func TempName(name string) string {
	return fmt.Sprintf("%s%x", name, xxh3.HashString(name))
}

// rewriteFile streams the source 1-indexed, trimming trailing space
// and tab on lines matching the head of the queue. Every written line
// gains the platform terminator, including a previously unterminated
// final line. The temp file is removed on any failure before the
// rename, so an aborted rewrite leaves the original untouched.
func rewriteFile(fsys fs.FS, root, name string, queue []int) error {
	src := filepath.Join(root, filepath.FromSlash(name))

	fi, err := fsys.Stat(src)
	if err != nil {
		return &wserr.IoError{Err: err}
	}

	f, err := fsys.Open(src)
	if err != nil {
		return &wserr.IoError{Err: err}
	}
	defer f.Close()

	tmp := filepath.Join(root, filepath.FromSlash(TempName(name)))
	out, err := fsys.CreateExclusive(tmp, fi.Mode().Perm())
	if err != nil {
		return &wserr.IoError{Err: err}
	}
	renamed := false
	defer func() {
		out.Close()
		if !renamed {
			fsys.Remove(tmp)
		}
	}()

	if err := copyTrimmed(f, out, queue); err != nil {
		return err
	}

	if err := out.Close(); err != nil {
		return &wserr.IoError{Err: err}
	}
	if err := fsys.Rename(tmp, src); err != nil {
		return &wserr.IoError{Err: err}
	}
	renamed = true
	return nil
}

func copyTrimmed(src io.Reader, dst io.Writer, queue []int) error {
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)

	for lineNo := 1; ; lineNo++ {
		chunk, readErr := r.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return &wserr.IoError{Err: readErr}
		}
		if chunk == "" && readErr == io.EOF {
			break
		}

		line := chunk
		if strings.HasSuffix(line, "\n") {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
		}

		// A queue head past the last line is left undrained: the file
		// changed between scan and rewrite, which is benign here.
		if len(queue) > 0 && queue[0] == lineNo {
			line = strings.TrimRight(line, " \t")
			queue = queue[1:]
		}

		if _, err := w.WriteString(line); err != nil {
			return &wserr.IoError{Err: err}
		}
		if _, err := w.WriteString(lineEnding); err != nil {
			return &wserr.IoError{Err: err}
		}

		if readErr == io.EOF {
			break
		}
	}

	if err := w.Flush(); err != nil {
		return &wserr.IoError{Err: err}
	}
	return nil
}
