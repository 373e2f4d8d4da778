//go:build windows

package rewrite

const lineEnding = "\r\n"
