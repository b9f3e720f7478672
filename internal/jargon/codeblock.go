package jargon

import "strings"

// fence delimits an optional markdown-style code block around user input.
const fence = "```"

// UnwrapCodeBlock strips triple backticks around a code block.
//
// Input that does not start with a fence is returned unchanged with an empty
// stdin feed. The closing fence is optional; anything after it becomes the
// program's stdin. A single newline directly after the opening fence and
// directly before the closing fence is dropped.
func UnwrapCodeBlock(statement string) (code, stdin string) {
	if !strings.HasPrefix(statement, fence) {
		return statement, ""
	}
	statement = strings.TrimPrefix(statement, fence)
	statement = strings.TrimPrefix(statement, "\n")
	if rest, suffix, found := strings.Cut(statement, fence); found {
		statement = rest
		stdin = suffix
	}
	statement = strings.TrimSuffix(statement, "\n")
	return statement, stdin
}
