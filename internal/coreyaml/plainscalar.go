// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import "strings"

// Plain scalars, per YAML 1.2 rules [126]-[136]. Plain
// scalars have the trickiest lookahead in the grammar: the first
// character is restricted (no bare indicator, except "-", "?", ":" when
// followed by a safe character), and ": " / " #" are reserved as value
// and comment introducers everywhere they could be mistaken for one.

// nsPlainFirst reports whether r may start a plain scalar in context c,
// implementing ns-plain-first(c) [126].
func nsPlainFirst(r, next rune, ctx Context) bool {
	if r == -1 {
		return false
	}
	if isIndicator(r) {
		switch r {
		case '-', '?', ':':
			return isPlainSafe(next, ctx) || next == -1
		default:
			return false
		}
	}
	return isPlainSafe(r, ctx)
}

// cPlain matches ns-plain(n,c) [136]: single-line in key contexts,
// multi-line (flow-folded) otherwise.
func cPlain(c Cursor, n int, ctx Context) Result {
	if !nsPlainFirst(c.peek(), c.peekAt(1), ctx) {
		return fail(c)
	}
	start := c

	firstLine, cur, r := scanPlainLine(c, ctx)
	if !r.ok() {
		return r
	}
	if firstLine == "" {
		return fail(c)
	}

	var b strings.Builder
	b.WriteString(firstLine)

	if ctx != BlockKey && ctx != FlowKey {
		for {
			save := cur
			folded, err := lookaheadPlainFold(cur, n)
			if err != nil {
				return *err
			}
			if folded == nil || atDocumentMarker(folded.Next) {
				cur = save
				break
			}
			line, next, r2 := scanPlainLine(folded.Next, ctx)
			if !r2.ok() || line == "" {
				cur = save
				break
			}
			b.WriteString(folded.Text)
			b.WriteString(line)
			cur = next
		}
	}

	res := ok(cur)
	res.Node = &Node{Kind: ScalarNode, Value: b.String(), Style: PlainStyle, Mark: start.mark()}
	return res
}

// atDocumentMarker reports whether c sits at the start of a line
// beginning with "---" or "...": a plain scalar folded across lines
// must stop before such a line rather than swallowing it as content,
// matching l-document-suffix [210] and c-directives-end [203].
func atDocumentMarker(c Cursor) bool {
	for _, marker := range [...]string{"---", "..."} {
		if matchLiteral(c, marker).ok() {
			after := c.advanceN(3)
			if r := after.peek(); r == -1 || isWhite(r) || isBreak(r) {
				return true
			}
		}
	}
	return false
}

// lookaheadPlainFold tries to consume a flow-folded line break leading
// into a further plain-scalar line, returning nil if the following
// content doesn't continue the scalar (so the caller can stop folding
// without having consumed anything).
func lookaheadPlainFold(c Cursor, n int) (*Result, *Result) {
	if !isBreak(c.peek()) && !isWhite(c.peek()) {
		return nil, nil
	}
	folded := sFlowFolded(c, n)
	if folded.Outcome == Error {
		return nil, &folded
	}
	if !folded.ok() {
		return nil, nil
	}
	return &folded, nil
}

// scanPlainLine matches ns-plain-char(c)* for a single line: nb-char
// minus ": " and (in flow contexts) minus flow indicators and "#" that
// isn't preceded by non-space, per ns-plain-char(c) [130] and the
// "in-line" restriction of ns-plain-one-line's [133] first char.
func scanPlainLine(c Cursor, ctx Context) (string, Cursor, Result) {
	var b strings.Builder
	cur := c
	first := true
	// end/endLen mark the last non-whitespace rune taken, so whitespace
	// that turns out to precede a terminator is not kept as content.
	end, endLen := c, 0

	for {
		r := cur.peek()
		if r == -1 || isBreak(r) {
			break
		}
		if r == ' ' || r == '\t' {
			// Trailing whitespace belongs to the fold, not the content;
			// only keep it if more content follows on the same line.
			wsCur := cur
			for isWhite(wsCur.peek()) {
				wsCur = wsCur.advance()
			}
			if wsCur.peek() == '#' {
				break // " #" starts a comment
			}
			if isBreak(wsCur.peek()) || wsCur.eof() {
				break // trailing whitespace at end of line: fold owns it
			}
			b.WriteString(string(cur.src[cur.pos:wsCur.pos]))
			cur = wsCur
			first = false
			continue
		}
		if r == ':' {
			next := cur.peekAt(1)
			if next == -1 || isWhite(next) || isBreak(next) {
				break // ": " (or ':' at EOL) ends the plain scalar
			}
			if (ctx == FlowIn || ctx == FlowOut || ctx == FlowKey) && isFlowIndicator(next) {
				break
			}
		}
		if (ctx == FlowIn || ctx == FlowOut || ctx == FlowKey) && isFlowIndicator(r) {
			break
		}
		if !first && r == '#' {
			prev := cur.peekAt(-1)
			if isWhite(prev) {
				break
			}
		}
		if !isNSChar(r) && r != ' ' && r != '\t' {
			break
		}
		b.WriteRune(r)
		cur = cur.advance()
		first = false
		end, endLen = cur, b.Len()
	}
	return b.String()[:endLen], end, ok(end)
}
