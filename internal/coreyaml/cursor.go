// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// Cursor is an immutable position over the source rune slice. Every
// combinator takes a Cursor by value and returns a new one; there is no
// shared mutable scan state, so alternatives can try a branch and discard
// it for free (backtracking is implemented by immutable cursor
// snapshots").
type Cursor struct {
	src    []rune
	pos    int
	line   int // 1-indexed
	column int // 0-indexed
}

// NewCursor builds a Cursor at the start of src.
func NewCursor(src []rune) Cursor {
	return Cursor{src: src, pos: 0, line: 1, column: 0}
}

func (c Cursor) mark() Mark {
	return Mark{Offset: c.pos, Line: c.line, Column: c.column}
}

func (c Cursor) eof() bool { return c.pos >= len(c.src) }

// peek returns the rune at the cursor, or -1 at end of input.
func (c Cursor) peek() rune {
	if c.eof() {
		return -1
	}
	return c.src[c.pos]
}

// peekAt returns the rune n positions ahead of the cursor, or -1.
func (c Cursor) peekAt(n int) rune {
	i := c.pos + n
	if i < 0 || i >= len(c.src) {
		return -1
	}
	return c.src[i]
}

// advance moves the cursor over one rune, updating line/column. A line
// feed resets the column to 0 and increments the line; every other rune
// (including a bare carriage return, which callers normalize themselves)
// just advances the column.
func (c Cursor) advance() Cursor {
	if c.eof() {
		return c
	}
	r := c.src[c.pos]
	next := c
	next.pos++
	if r == '\n' {
		next.line++
		next.column = 0
	} else {
		next.column++
	}
	return next
}

// advanceN advances n runes.
func (c Cursor) advanceN(n int) Cursor {
	for i := 0; i < n; i++ {
		c = c.advance()
	}
	return c
}

// startOfLine is true iff the cursor sits at column 0: either offset 0 or
// immediately after a line break (the separate-in-line rule).
func (c Cursor) startOfLine() bool { return c.column == 0 }

// Outcome classifies what a combinator did.
type Outcome int

const (
	Success Outcome = iota
	Failure
	Error
)

// Result is the value every grammar rule in this package returns.
//
//   - Success: matched; Next holds the post-match cursor, Node/Text/Int
//     carry whatever the rule produces.
//   - Failure: did not match here; the caller may try an alternative.
//     Next is unspecified (callers must use the cursor they passed in).
//   - Error: matched a committing prefix and then violated a hard
//     constraint. Callers must not backtrack past an Error; it propagates
//     to the document boundary.
type Result struct {
	Outcome Outcome
	Next    Cursor

	Node      *Node
	Text      string
	Int       int
	directive *Directive
	pair      Pair

	Err ParseError
}

func ok(next Cursor) Result { return Result{Outcome: Success, Next: next} }

func okNode(next Cursor, n *Node) Result { return Result{Outcome: Success, Next: next, Node: n} }

func okText(next Cursor, s string) Result { return Result{Outcome: Success, Next: next, Text: s} }

func okInt(next Cursor, n int) Result { return Result{Outcome: Success, Next: next, Int: n} }

func fail(at Cursor) Result { return Result{Outcome: Failure, Next: at} }

func errAt(at Cursor, message string) Result {
	return Result{Outcome: Error, Next: at, Err: ParseError{Mark: at.mark(), Message: message}}
}

func (r Result) ok() bool { return r.Outcome == Success }

// rule is the type of every grammar production in this package.
type rule func(Cursor) Result

// seqAll runs rules in order, stopping at the first non-Success result. A
// Failure part-way through a "seq" is itself just a Failure of the whole
// rule at the original cursor — YAML's grammar has no partial commit
// point built into plain sequencing; individual rules choose their own
// commit points by returning Error instead of Failure once they know a
// prefix can only belong to them.
func seqAll(c Cursor, rules ...rule) Result {
	cur := c
	for _, r := range rules {
		res := r(cur)
		if !res.ok() {
			if res.Outcome == Failure {
				return fail(c)
			}
			return res
		}
		cur = res.Next
	}
	return ok(cur)
}

// choice tries each alternative in order. The first Success or Error
// wins; a Failure moves on to the next alternative. If every alternative
// fails, choice fails at the original cursor.
func choice(c Cursor, rules ...rule) Result {
	for _, r := range rules {
		res := r(c)
		if res.Outcome != Failure {
			return res
		}
	}
	return fail(c)
}

// star matches r zero or more times, never failing.
func star(c Cursor, r rule) Result {
	cur := c
	for {
		res := r(cur)
		if res.Outcome == Error {
			return res
		}
		if res.Outcome != Success || res.Next.pos == cur.pos {
			break
		}
		cur = res.Next
	}
	return ok(cur)
}

// plus matches r one or more times.
func plus(c Cursor, r rule) Result {
	first := r(c)
	if !first.ok() {
		return first
	}
	rest := star(first.Next, r)
	if rest.Outcome == Error {
		return rest
	}
	return ok(rest.Next)
}

// optional never fails: it returns Success at c if r fails at c.
func optional(c Cursor, r rule) Result {
	res := r(c)
	if res.Outcome == Error {
		return res
	}
	if res.ok() {
		return res
	}
	return ok(c)
}

// matchRune consumes exactly one rune equal to want.
func matchRune(c Cursor, want rune) Result {
	if c.peek() == want {
		return ok(c.advance())
	}
	return fail(c)
}

// matchClass consumes exactly one rune satisfying pred.
func matchClass(c Cursor, pred func(rune) bool) Result {
	r := c.peek()
	if r != -1 && pred(r) {
		return ok(c.advance())
	}
	return fail(c)
}

// matchLiteral consumes the exact rune sequence s.
func matchLiteral(c Cursor, s string) Result {
	cur := c
	for _, want := range s {
		if cur.peek() != want {
			return fail(c)
		}
		cur = cur.advance()
	}
	return ok(cur)
}
