package rewrite_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wstrim/internal/rewrite"
	"wstrim/internal/wserr"
)

func writeFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRewriteTrimsExactlyFlaggedLines(t *testing.T) {
	root := t.TempDir()
	content := strings.Join([]string{
		"line1",
		"line2",
		"line3  ",
		"line4",
		"line5\t",
		"line6",
		"line7 \t ",
		"line8",
	}, "\n") + "\n"
	path := writeFile(t, root, "a.txt", content)

	err := rewrite.Rewrite(root, map[string][]int{"a.txt": {3, 7}})
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"line1",
		"line2",
		"line3",
		"line4",
		"line5\t", // not flagged, must survive untouched
		"line6",
		"line7",
		"line8",
	}, "\n") + "\n"
	if got := readFile(t, path); got != want {
		t.Errorf("rewritten content mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRewriteAddsTerminatorToFinalLine(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "a.txt", "foo \nbar")

	if err := rewrite.Rewrite(root, map[string][]int{"a.txt": {1}}); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, path); got != "foo\nbar\n" {
		t.Errorf("got %q, want %q", got, "foo\nbar\n")
	}
}

func TestRewriteQueueBeyondEOFIsBenign(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "a.txt", "foo \nbar\n")

	if err := rewrite.Rewrite(root, map[string][]int{"a.txt": {1, 99}}); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, path); got != "foo\nbar\n" {
		t.Errorf("got %q, want %q", got, "foo\nbar\n")
	}
}

func TestRewriteSubdirectoryFile(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "src/deep/a.txt", "x \ny\n")

	if err := rewrite.Rewrite(root, map[string][]int{"src/deep/a.txt": {1}}); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, path); got != "x\ny\n" {
		t.Errorf("got %q, want %q", got, "x\ny\n")
	}
}

func TestRewriteFailsOnTempCollision(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "a.txt", "foo \n")
	writeFile(t, root, rewrite.TempName("a.txt"), "occupied")

	err := rewrite.Rewrite(root, map[string][]int{"a.txt": {1}})
	if err == nil {
		t.Fatal("expected error on temp file collision")
	}
	var ioErr *wserr.IoError
	if !errors.As(err, &ioErr) {
		t.Errorf("expected IoError, got %T", err)
	}

	// The original must be untouched.
	if got := readFile(t, path); got != "foo \n" {
		t.Errorf("original was modified: %q", got)
	}
}

func TestRewriteMissingFile(t *testing.T) {
	root := t.TempDir()

	err := rewrite.Rewrite(root, map[string][]int{"missing.txt": {1}})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var ioErr *wserr.IoError
	if !errors.As(err, &ioErr) {
		t.Errorf("expected IoError, got %T", err)
	}
}

func TestRewritePreservesFileMode(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "run.sh", "#!/bin/sh \necho hi\n")
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := rewrite.Rewrite(root, map[string][]int{"run.sh": {1}}); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o755 {
		t.Errorf("mode = %o, want 755", fi.Mode().Perm())
	}
}

func TestRewriteLeavesNoTempFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "foo \n")

	if err := rewrite.Rewrite(root, map[string][]int{"a.txt": {1}}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.txt" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestTempNameStaysInSameDirectory(t *testing.T) {
	name := rewrite.TempName("src/a.txt")
	if !strings.HasPrefix(name, "src/a.txt") {
		t.Errorf("temp name %q does not extend the original path", name)
	}
	if filepath.Dir(filepath.FromSlash(name)) != filepath.FromSlash("src") {
		t.Errorf("temp name %q left the original directory", name)
	}
}
