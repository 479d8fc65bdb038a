// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import "strings"

// Double- and single-quoted flow scalars, per YAML 1.2 rules [107]-[125]
// (c-double-quoted / c-single-quoted). Both scalars fold multi-line
// content the same way block scalars do; only the escaping rules and
// terminator differ.

// cDoubleQuoted matches '"' nb-double-text(n,c) '"'.
func cDoubleQuoted(c Cursor, n int, ctx Context) Result {
	if c.peek() != '"' {
		return fail(c)
	}
	start := c
	cur := c.advance()

	value, next, r := scanQuotedBody(cur, n, ctx, true)
	if !r.ok() {
		return r
	}
	cur = next
	if cur.peek() != '"' {
		return errAt(cur, "unterminated double-quoted scalar")
	}
	cur = cur.advance()
	res := ok(cur)
	res.Node = &Node{Kind: ScalarNode, Value: value, Style: DoubleQuotedStyle, Mark: start.mark()}
	return res
}

// cSingleQuoted matches '\'' nb-single-text(n,c) '\''. Its only escape is
// a doubled quote ('' -> ').
func cSingleQuoted(c Cursor, n int, ctx Context) Result {
	if c.peek() != '\'' {
		return fail(c)
	}
	start := c
	cur := c.advance()

	value, next, r := scanQuotedBody(cur, n, ctx, false)
	if !r.ok() {
		return r
	}
	cur = next
	if cur.peek() != '\'' {
		return errAt(cur, "unterminated single-quoted scalar")
	}
	cur = cur.advance()
	res := ok(cur)
	res.Node = &Node{Kind: ScalarNode, Value: value, Style: SingleQuotedStyle, Mark: start.mark()}
	return res
}

// quotedBodyDone reports whether c sits at the quote that ends the quoted
// scalar body for the given quote style (without consuming it).
func quotedBodyDone(c Cursor, double bool) bool {
	if double {
		return c.peek() == '"'
	}
	if c.peek() != '\'' {
		return false
	}
	return c.peekAt(1) != '\'' // doubled quote is an escape, not the end
}

// scanQuotedBody scans the shared structure of double- and single-quoted
// scalars: single-line runs of body characters, interrupted by flow
// folding across line breaks, until the closing quote. In key contexts
// (block-key/flow-key) the body must be single-line.
func scanQuotedBody(c Cursor, n int, ctx Context, double bool) (string, Cursor, Result) {
	var b strings.Builder
	cur := c
	singleLine := ctx == BlockKey || ctx == FlowKey

	for {
		if cur.eof() {
			return "", c, errAt(cur, "unterminated quoted scalar")
		}
		if quotedBodyDone(cur, double) {
			return b.String(), cur, ok(cur)
		}

		r := cur.peek()

		if !double && r == '\'' && cur.peekAt(1) == '\'' {
			b.WriteByte('\'')
			cur = cur.advanceN(2)
			continue
		}

		if double && r == '\\' {
			// A backslash immediately before a line break is a line
			// continuation: the break is suppressed and folding is
			// skipped for that line.
			after := cur.advance()
			if isBreak(after.peek()) {
				brk := bBreak(after)
				cur = brk.Next
				if singleLine {
					return "", c, errAt(cur, "quoted key must be a single line")
				}
				prefix := sFlowLinePrefixKeepEmpty(cur, n)
				cur = prefix
				continue
			}
			esc := scanEscape(after)
			if !esc.ok() {
				return "", c, esc
			}
			b.WriteString(esc.Text)
			cur = esc.Next
			continue
		}

		if isBreak(r) {
			if singleLine {
				return "", c, errAt(cur, "quoted key must be a single line")
			}
			folded := sFlowFolded(cur, n)
			if !folded.ok() {
				return "", c, folded
			}
			b.WriteString(folded.Text)
			cur = folded.Next
			continue
		}

		if isWhite(r) {
			// Collapse a run of trailing whitespace only if it precedes
			// a fold; otherwise keep it verbatim as content.
			wsStart := cur
			wsCur := cur
			for isWhite(wsCur.peek()) {
				wsCur = wsCur.advance()
			}
			if isBreak(wsCur.peek()) && !singleLine {
				cur = wsCur
				continue // let the break branch above perform the fold
			}
			b.WriteString(string(wsStart.src[wsStart.pos:wsCur.pos]))
			cur = wsCur
			continue
		}

		if !isNBChar(r) {
			return "", c, errAt(cur, "non-printable character in quoted scalar")
		}
		b.WriteRune(r)
		cur = cur.advance()
	}
}

// sFlowLinePrefixKeepEmpty consumes the flow line prefix after a
// suppressed line continuation: unlike sFlowFolded it must not itself
// fold, since the continuation already discarded the break.
func sFlowLinePrefixKeepEmpty(c Cursor, n int) Cursor {
	res := sLinePrefix(c, n, FlowIn)
	if res.ok() {
		return res.Next
	}
	return c
}
