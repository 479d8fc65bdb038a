// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import "fmt"

// ParseError is a hard grammar violation. It carries the exact position
// the offending span begins at and a short message. There is a single
// error kind rather than separate scanner/parser error types, because a
// PEG-style engine has no separate scan phase to attribute errors to.
type ParseError struct {
	Mark    Mark
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("yamlcore: %s: %s", e.Mark, e.Message)
}

// DocumentError attributes a ParseError to the document it occurred in,
// per the "abort-whole-stream" propagation rule: an error in document i
// is reported together with i so a stream-composition-aware caller can
// tell which document failed even though the whole parse call fails.
type DocumentError struct {
	DocumentIndex int
	Err           ParseError
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %d: %s", e.DocumentIndex, e.Err.Error())
}

func (e *DocumentError) Unwrap() error { return e.Err }
