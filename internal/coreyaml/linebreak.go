// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// Line breaks and folding. Every break that contributes to
// scalar content is normalized to a single U+000A here, which is what
// gives "scalar normalization" its guarantee.

// bBreak matches CR LF | CR | LF and consumes it (b-break [28]).
func bBreak(c Cursor) Result {
	if c.peek() == '\r' {
		if c.peekAt(1) == '\n' {
			return ok(c.advanceN(2))
		}
		return ok(c.advance())
	}
	if c.peek() == '\n' {
		return ok(c.advance())
	}
	return fail(c)
}

// sLinePrefix implements s-line-prefix(n,c) [67]: block contexts require
// indent(n); flow contexts allow indent(n) followed by an optional
// separate-in-line (s-flow-line-prefix [68]).
func sLinePrefix(c Cursor, n int, ctx Context) Result {
	if ctx == BlockOut || ctx == BlockIn {
		return sIndent(c, n)
	}
	return seqAll(c,
		func(cur Cursor) Result { return sIndent(cur, n) },
		func(cur Cursor) Result { return optional(cur, func(cc Cursor) Result { return sSeparateInLine(cc) }) },
	)
}

// lEmpty implements l-empty(n,c) [70]: a line-prefix (or lesser
// indentation, for compact block-in nodes) followed by a break, folded
// into a single line feed in scalar content.
func lEmpty(c Cursor, n int, ctx Context) Result {
	res := choice(c,
		func(cur Cursor) Result { return sLinePrefix(cur, n, ctx) },
		func(cur Cursor) Result { return sIndentLess(cur, n) },
	)
	if !res.ok() {
		return res
	}
	brk := bBreak(res.Next)
	if !brk.ok() {
		return brk
	}
	return okText(brk.Next, "\n")
}

// foldedLines implements the combination of b-l-trimmed / b-as-space that
// makes up b-l-folded(n,c) [73]: a break followed by any number of empty
// lines. Zero empty lines folds to a single space (b-as-space [72]); one
// or more folds to that many line feeds.
func foldedLines(c Cursor, n int, ctx Context) Result {
	brk := bBreak(c)
	if !brk.ok() {
		return brk
	}
	var feeds int
	cur := brk.Next
	for {
		res := lEmpty(cur, n, ctx)
		if res.Outcome == Error {
			return res
		}
		if !res.ok() {
			break
		}
		feeds++
		cur = res.Next
	}
	if feeds == 0 {
		return okText(cur, " ")
	}
	content := make([]rune, feeds)
	for i := range content {
		content[i] = '\n'
	}
	return okText(cur, string(content))
}

// sSeparate implements s-separate(n,c) [80]: dispatch on context between
// the multi-line and single-line separator productions.
func sSeparate(c Cursor, n int, ctx Context) Result {
	switch ctx {
	case BlockKey, FlowKey:
		return sSeparateInLine(c)
	default:
		return sSeparateLines(c, n)
	}
}

// sSeparateLines implements s-separate-lines(n) [81]: either a comment
// block followed by a flow line prefix, or a single-line separator.
func sSeparateLines(c Cursor, n int) Result {
	return choice(c,
		func(cur Cursor) Result {
			return seqAll(cur,
				func(cc Cursor) Result { return sLComments(cc) },
				func(cc Cursor) Result { return sLinePrefix(cc, n, FlowIn) },
			)
		},
		func(cur Cursor) Result { return sSeparateInLine(cur) },
	)
}

// sFlowFolded implements s-flow-folded(n) [74]: optional separate-in-
// line, a fold, then a flow line prefix.
func sFlowFolded(c Cursor, n int) Result {
	start := optional(c, func(cc Cursor) Result { return sSeparateInLine(cc) })
	folded := foldedLines(start.Next, n, FlowIn)
	if !folded.ok() {
		return folded
	}
	prefix := sLinePrefix(folded.Next, n, FlowIn)
	if !prefix.ok() {
		return prefix
	}
	return okText(prefix.Next, folded.Text)
}
