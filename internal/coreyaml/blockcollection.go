// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// Block collections, per YAML 1.2 rules [183]-[195]. Block
// sequences and mappings auto-detect their own indentation from the
// first entry, then require every subsequent entry to sit at exactly
// that column (the "auto-detected m" rule).

// seqSpaces implements the seq-spaces(n,c) adjustment: nested
// block sequences in block-out "absorb" one column into the '-'
// indicator, so their entries may be one column less indented than a
// sibling mapping would require.
func seqSpaces(n int, ctx Context) int {
	if ctx == BlockOut {
		return n - 1
	}
	return n
}

// measureLineIndent returns the indentation of an entry starting at c:
// c's column plus the spaces that follow it, stopping at the first
// non-space (which may be a tab: tabs never count as structural
// indentation). At the start of a line this is the count of leading
// spaces; mid-line (a compact collection after "- ", "? " or ": ") it is
// the column at which the nested entry begins.
func measureLineIndent(c Cursor) (int, Cursor) {
	cur := c
	n := c.column
	for cur.peek() == ' ' {
		cur = cur.advance()
		n++
	}
	return n, cur
}

// blockSequence matches l+block-sequence(n) [183]: one or more entries
// of the form indent(m) "-" block-indented, where m is the indentation
// auto-detected from the first entry and must exceed parentIndent.
func blockSequence(c Cursor, parentIndent int, opt *options) Result {
	indent, afterIndent := measureLineIndent(c)
	if indent <= parentIndent || afterIndent.peek() != '-' {
		return fail(c)
	}
	if next := afterIndent.peekAt(1); !(next == -1 || isWhite(next) || isBreak(next)) {
		return fail(c) // "-1" etc: a plain scalar, not a sequence entry
	}

	var items []*Node
	cur := c
	for {
		lineIndent, afterI := measureLineIndent(cur)
		if lineIndent != indent || afterI.peek() != '-' {
			break
		}
		next := afterI.peekAt(1)
		if !(next == -1 || isWhite(next) || isBreak(next)) {
			break
		}
		entryStart := afterI.advance() // consume '-'
		item, after, r := blockSeqEntryValue(entryStart, indent, opt)
		if r.Outcome == Error {
			return r
		}
		items = append(items, item)
		cur = after
	}

	res := ok(cur)
	res.Node = &Node{Kind: SequenceNode, Items: items, Mark: c.mark()}
	return res
}

// blockSeqEntryValue parses the content following "-": either a compact
// nested collection sharing the same line, or a normal block node
// s-l+block-node(seqIndent, block-in) read from just after the dash (its
// own separator consumes the whitespace that follows the dash), or an
// empty node.
func blockSeqEntryValue(c Cursor, seqIndent int, opt *options) (*Node, Cursor, Result) {
	spacesAfterDash := 0
	cur := c
	for isWhite(cur.peek()) {
		cur = cur.advance()
		spacesAfterDash++
	}
	if cur.eof() || isBreak(cur.peek()) {
		comments := sLComments(cur)
		if !comments.ok() {
			return nil, c, comments
		}
		return &Node{Kind: EmptyNode, Mark: c.mark()}, comments.Next, ok(comments.Next)
	}

	itemIndent := seqIndent + 1 + spacesAfterDash
	if cur.peek() == '-' {
		if next := cur.peekAt(1); next == -1 || isWhite(next) || isBreak(next) {
			// Compact nested sequence starting on the same line.
			r := blockSequence(cur, seqIndent, opt)
			if r.ok() {
				comments := sLComments(r.Next)
				return r.Node, comments.Next, ok(comments.Next)
			}
			if r.Outcome == Error {
				return nil, c, r
			}
		}
	}
	if mapping := blockMapping(cur, itemIndent-1, opt); mapping.ok() {
		return mapping.Node, mapping.Next, ok(mapping.Next)
	} else if mapping.Outcome == Error {
		return nil, c, mapping
	}

	r := blockNode(c, seqIndent, BlockIn, opt)
	if !r.ok() {
		if r.Outcome == Error {
			return nil, c, r
		}
		return nil, c, errAt(cur, "expected a block sequence entry value")
	}
	return r.Node, r.Next, ok(r.Next)
}

// blockMapping matches l+block-mapping(n) [187]: one or more entries at
// an auto-detected indentation m > parentIndent.
func blockMapping(c Cursor, parentIndent int, opt *options) Result {
	indent, afterIndent := measureLineIndent(c)
	if indent <= parentIndent || !looksLikeMappingEntry(afterIndent) {
		return fail(c)
	}

	var pairs []Pair
	cur := c
	for {
		lineIndent, afterI := measureLineIndent(cur)
		if lineIndent != indent || !looksLikeMappingEntry(afterI) {
			break
		}
		pair, after, r := blockMappingEntry(afterI, indent, opt)
		if r.Outcome == Error {
			return r
		}
		if !r.ok() {
			break
		}
		pairs = append(pairs, pair)
		cur = after
	}

	res := ok(cur)
	res.Node = &Node{Kind: MappingNode, Pairs: pairs, Mark: c.mark()}
	return res
}

// looksLikeMappingEntry reports whether c begins an explicit ("?") or
// implicit mapping entry, without committing to a full parse: used to
// decide whether a candidate line belongs to this mapping at all. Any
// start other than "?" additionally requires an actual same-line
// mapping value indicator after the key (outside a quoted key or a flow
// collection), so that a plain, quoted or flow node is never
// misdiagnosed as an ill-formed mapping entry and hard-errored instead
// of falling through to the flow-node alternative.
func looksLikeMappingEntry(c Cursor) bool {
	if c.eof() {
		return false
	}
	switch c.peek() {
	case '?':
		next := c.peekAt(1)
		return next == -1 || isWhite(next) || isBreak(next)
	case '"', '\'':
		quote := c.peek()
		cur := c.advance()
		for !cur.eof() && !isBreak(cur.peek()) && cur.peek() != quote {
			if quote == '"' && cur.peek() == '\\' {
				cur = cur.advance()
			}
			cur = cur.advance()
		}
		return lineHasMappingValueIndicator(cur)
	}
	return lineHasMappingValueIndicator(c)
}

// lineHasMappingValueIndicator scans the rest of the current line for a
// ':' that would end a plain scalar per ns-plain-char(c) [130]: not
// nested inside a flow collection, and followed by whitespace, a line
// break, or EOF.
func lineHasMappingValueIndicator(c Cursor) bool {
	cur := c
	depth := 0
	for {
		r := cur.peek()
		if r == -1 || isBreak(r) {
			return false
		}
		switch r {
		case '[', '{':
			depth++
		case ']', '}':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				next := cur.peekAt(1)
				if next == -1 || isWhite(next) || isBreak(next) {
					return true
				}
			}
		}
		cur = cur.advance()
	}
}

// blockMappingEntry matches ns-l-block-map-entry(n) [188]: an explicit
// entry (introduced by "?") or an implicit one (a single-line key
// followed directly by ":").
func blockMappingEntry(c Cursor, n int, opt *options) (Pair, Cursor, Result) {
	if c.peek() == '?' {
		if next := c.peekAt(1); next == -1 || isWhite(next) || isBreak(next) {
			return blockMappingExplicitEntry(c, n, opt)
		}
	}
	return blockMappingImplicitEntry(c, n, opt)
}

func blockMappingExplicitEntry(c Cursor, n int, opt *options) (Pair, Cursor, Result) {
	cur := c.advance()
	key, after, r := blockIndentedOrEmpty(cur, n, opt)
	if r.Outcome == Error {
		return Pair{}, c, r
	}
	cur = after

	lineIndent, afterI := measureLineIndent(cur)
	if lineIndent == n && afterI.peek() == ':' {
		if next := afterI.peekAt(1); next == -1 || isWhite(next) || isBreak(next) {
			valCur := afterI.advance()
			value, after2, r2 := blockIndentedOrEmpty(valCur, n, opt)
			if r2.Outcome == Error {
				return Pair{}, c, r2
			}
			return Pair{Key: key, Value: value}, after2, ok(after2)
		}
	}
	return Pair{Key: key, Value: &Node{Kind: EmptyNode, Mark: cur.mark()}}, cur, ok(cur)
}

func blockMappingImplicitEntry(c Cursor, n int, opt *options) (Pair, Cursor, Result) {
	keyRes := blockKeyNode(c, n, opt)
	if !keyRes.ok() {
		return Pair{}, c, keyRes
	}
	if keyRes.Next.pos-c.pos > opt.maxImplicitKeyLength {
		return Pair{}, c, errAt(c, "implicit key exceeds maximum length")
	}
	cur := optional(keyRes.Next, func(cc Cursor) Result { return sSeparateInLine(cc) }).Next
	if cur.peek() != ':' {
		return Pair{}, c, errAt(cur, "expected ':' after block mapping key")
	}
	if next := cur.peekAt(1); !(next == -1 || isWhite(next) || isBreak(next)) {
		return Pair{}, c, errAt(cur, "expected whitespace after ':'")
	}
	cur = cur.advance()
	value, after, r := blockIndentedOrEmpty(cur, n, opt)
	if r.Outcome == Error {
		return Pair{}, c, r
	}
	return Pair{Key: keyRes.Node, Value: value}, after, ok(after)
}

// blockKeyNode matches ns-s-block-map-implicit-key [186]: a single-line
// plain scalar, quoted scalar, or flow collection.
func blockKeyNode(c Cursor, n int, opt *options) Result {
	return choice(c,
		func(cur Cursor) Result { return cFlowSequence(cur, n, BlockKey, opt) },
		func(cur Cursor) Result { return cFlowMapping(cur, n, BlockKey, opt) },
		func(cur Cursor) Result { return cDoubleQuoted(cur, n, BlockKey) },
		func(cur Cursor) Result { return cSingleQuoted(cur, n, BlockKey) },
		func(cur Cursor) Result { return cPlain(cur, n, BlockKey) },
	)
}

// blockIndentedOrEmpty parses the value half of a mapping entry: a
// compact nested mapping on the same line, a normal block node, or an
// empty node with trailing comments ("either part may be
// omitted").
func blockIndentedOrEmpty(c Cursor, n int, opt *options) (*Node, Cursor, Result) {
	cur := c
	spaces := 0
	for isWhite(cur.peek()) {
		cur = cur.advance()
		spaces++
	}
	if !cur.eof() && !isBreak(cur.peek()) {
		itemIndent := n + 1 + spaces
		if mapping := blockMapping(cur, itemIndent-1, opt); mapping.ok() {
			comments := sLComments(mapping.Next)
			return mapping.Node, comments.Next, ok(comments.Next)
		} else if mapping.Outcome == Error {
			return nil, c, mapping
		}
		if r := blockNode(cur, itemIndent-1, BlockOut, opt); r.ok() {
			return r.Node, r.Next, ok(r.Next)
		} else if r.Outcome == Error {
			return nil, c, r
		}
	}

	if r := blockNode(c, n, BlockOut, opt); r.ok() {
		return r.Node, r.Next, ok(r.Next)
	} else if r.Outcome == Error {
		return nil, c, r
	}

	comments := sLComments(c)
	if !comments.ok() {
		return nil, c, comments
	}
	return &Node{Kind: EmptyNode, Mark: c.mark()}, comments.Next, ok(comments.Next)
}
