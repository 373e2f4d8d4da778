//go:build !windows

package rewrite

const lineEnding = "\n"
