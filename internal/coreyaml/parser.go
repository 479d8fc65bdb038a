// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import "github.com/pkg/errors"

// Parse runs the full grammar over src and returns the
// resulting Token Tree. On the first Error, the whole parse is aborted
// per the "abort-whole-stream" propagation rule, and the returned
// error is annotated with a stack trace at the driver boundary so
// callers can tell exactly which combinator raised it.
func Parse(src []rune, opts ...Option) (Stream, error) {
	opt := defaultOptions()
	for _, o := range opts {
		o(opt)
	}

	cursor := NewCursor(src)
	stream, res := parseStream(cursor, opt)
	if res.Outcome == Error {
		docIndex := len(stream.Documents)
		return Stream{}, errors.WithStack(&DocumentError{DocumentIndex: docIndex, Err: res.Err})
	}
	return stream, nil
}

// ParseString is a convenience wrapper over Parse for string input.
func ParseString(src string, opts ...Option) (Stream, error) {
	return Parse([]rune(src), opts...)
}
