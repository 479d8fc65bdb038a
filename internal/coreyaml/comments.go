// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// Comments, per YAML 1.2 rules [75]-[79]. The core
// discards comment text; there is no comment round-trip in this package; it
// only needs to consume comments so they don't interfere with the
// surrounding grammar.

// cNBCommentText matches '#' followed by nb-char* to end of line.
func cNBCommentText(c Cursor) Result {
	if c.peek() != '#' {
		return fail(c)
	}
	cur := c.advance()
	for isNBChar(cur.peek()) {
		cur = cur.advance()
	}
	return ok(cur)
}

// sBComment matches an optional separate-in-line, an optional comment,
// then a break-or-eof.
func sBComment(c Cursor) Result {
	cur := optional(c, func(cc Cursor) Result { return sSeparateInLine(cc) }).Next
	cur = optional(cur, func(cc Cursor) Result { return cNBCommentText(cc) }).Next
	if cur.eof() {
		return ok(cur)
	}
	return bBreak(cur)
}

// lComment matches a full comment line: separate-in-line, optional
// comment, break-or-eof.
func lComment(c Cursor) Result {
	sep := sSeparateInLine(c)
	if !sep.ok() {
		return sep
	}
	cur := optional(sep.Next, func(cc Cursor) Result { return cNBCommentText(cc) }).Next
	if cur.eof() {
		return ok(cur)
	}
	return bBreak(cur)
}

// sLComments matches s-b-comment (or start-of-line) followed by any
// number of full comment lines. It never fails.
func sLComments(c Cursor) Result {
	head := choice(c,
		func(cc Cursor) Result { return sBComment(cc) },
		func(cc Cursor) Result {
			if cc.startOfLine() {
				return ok(cc)
			}
			return fail(cc)
		},
	)
	if !head.ok() {
		return head
	}
	return star(head.Next, func(cc Cursor) Result { return lComment(cc) })
}
