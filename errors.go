package wikicorpus

import "fmt"

// A StructuralError reports an unrecoverable deviation from the fixed
// document grammar: a missing start marker, a malformed footer after
// the end-of-article marker, or unexpected content where a duplicated
// closing marker was being consumed. It aborts the current file.
type StructuralError struct {
	Expected string
	Line     string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("wikicorpus: expected %s, got %q", e.Expected, e.Line)
}

// An UnparsableLineError reports a non-blank line that matches none
// of the token grammars, is not in the known-corruption table and is
// not the skip literal, while further input follows it. The same line
// at the very end of a file is treated as truncation instead.
type UnparsableLineError struct {
	Line string
}

func (e *UnparsableLineError) Error() string {
	return fmt.Sprintf("wikicorpus: could not parse the following non-ending line: %q", e.Line)
}
