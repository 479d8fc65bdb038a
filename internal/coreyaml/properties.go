// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import "strings"

// Node properties: anchors and tags, per YAML 1.2 rules [96]-[104],
// [174]-[180]. A node property is validated here but resolved (schema
// lookup, prefix expansion) by a downstream composer; this package only
// checks the syntactic shape a resolved tag must satisfy — a valid
// local tag or absolute URI.

// scanURI matches a run of ns-uri-char, validating %HH escapes (an
// invalid escape is a hard Error) but returning the raw, still-percent-
// encoded text: decoding it is the downstream composer's job once the
// tag is resolved against a schema.
func scanURI(c Cursor) (string, Cursor, Result) {
	var b strings.Builder
	cur := c
	for {
		if cur.peek() == '%' {
			if !isHexDigit(cur.peekAt(1)) || !isHexDigit(cur.peekAt(2)) {
				return "", c, errAt(cur, "invalid %-escape in URI: expected two hex digits")
			}
			b.WriteRune('%')
			b.WriteRune(cur.peekAt(1))
			b.WriteRune(cur.peekAt(2))
			cur = cur.advanceN(3)
			continue
		}
		if isURIChar(cur.peek()) {
			b.WriteRune(cur.peek())
			cur = cur.advance()
			continue
		}
		break
	}
	return b.String(), cur, ok(cur)
}

// cVerbatimTag matches "!<" ns-uri-char+ ">", rule c-verbatim-tag [97].
// The content must be a local tag ("!" prefix) or an absolute URI (see
// looksLikeAbsoluteURI); anything else is a hard Error.
func cVerbatimTag(c Cursor) Result {
	if c.peek() != '!' || c.peekAt(1) != '<' {
		return fail(c)
	}
	start := c
	cur := c.advanceN(2)
	uri, next, r := scanURI(cur)
	if !r.ok() {
		return r
	}
	if len(uri) == 0 {
		return errAt(next, "empty verbatim tag")
	}
	if next.peek() != '>' {
		return errAt(next, "unterminated verbatim tag: expected '>'")
	}
	next = next.advance()
	tag := Tag{Kind: VerbatimTag, URI: uri, Mark: start.mark()}
	if !(strings.HasPrefix(uri, "!") || looksLikeAbsoluteURI(uri)) {
		return errAt(start, "verbatim tag must be a local tag or an absolute URI: "+uri)
	}
	res := ok(next)
	res.Node = &Node{Property: NodeProperty{HasTag: true, Tag: &tag}}
	return res
}

// looksLikeAbsoluteURI applies an RFC 2396-lite check: a scheme, ":",
// then scheme-specific content. Full URI grammar validation is out of
// scope; this only rejects strings that obviously aren't absolute URIs.
func looksLikeAbsoluteURI(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon <= 0 {
		return false
	}
	scheme := s[:colon]
	if !isASCIILetter(rune(scheme[0])) {
		return false
	}
	for _, r := range scheme[1:] {
		if !isASCIILetter(r) && !isDecDigit(r) && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// cNsShorthandTag matches c-tag-handle ns-tag-char+, rule [101].
func cNsShorthandTag(c Cursor) Result {
	handle, cur, r := scanTagHandle(c)
	if !r.ok() {
		return r
	}
	start := cur
	for isTagChar(cur.peek()) {
		cur = cur.advance()
	}
	suffix := string(start.src[start.pos:cur.pos])
	if handle != "!" && handle != "!!" && len(suffix) == 0 {
		return errAt(cur, "shorthand tag with named handle "+handle+" requires a suffix")
	}
	res := ok(cur)
	res.Node = &Node{Property: NodeProperty{HasTag: true, Tag: &Tag{
		Kind: ShorthandTag, Handle: handle, Suffix: suffix, Mark: c.mark(),
	}}}
	return res
}

// cNonSpecificTag matches a bare "!", rule c-non-specific-tag [98].
func cNonSpecificTag(c Cursor) Result {
	if c.peek() != '!' {
		return fail(c)
	}
	// A bare "!" must not be immediately followed by tag-char or "<": that
	// would make it a shorthand or verbatim tag instead.
	next := c.peekAt(1)
	if next == '<' || isTagChar(next) {
		return fail(c)
	}
	res := ok(c.advance())
	res.Node = &Node{Property: NodeProperty{HasTag: true, Tag: &Tag{Kind: NonSpecificTag, Mark: c.mark()}}}
	return res
}

// cNsTagProperty matches c-ns-tag-property [104]: verbatim, shorthand,
// or non-specific, tried in that order (verbatim and shorthand both
// start with tag-char content after '!', so order matters).
func cNsTagProperty(c Cursor) Result {
	return choice(c,
		cVerbatimTag,
		cNsShorthandTag,
		cNonSpecificTag,
	)
}

// cNsAnchorProperty matches "&" ns-anchor-name, rule [102]/[103]. An
// anchor name is ns-anchor-char+; the grammar additionally requires it be
// non-empty and free of flow indicators and whitespace, which
// isAnchorChar already enforces.
func cNsAnchorProperty(c Cursor) Result {
	if c.peek() != '&' {
		return fail(c)
	}
	start := c
	cur := c.advance()
	nameStart := cur
	for isAnchorChar(cur.peek()) {
		cur = cur.advance()
	}
	if cur.pos == nameStart.pos {
		return errAt(cur, "anchor name must not be empty")
	}
	name := string(nameStart.src[nameStart.pos:cur.pos])
	res := ok(cur)
	res.Node = &Node{Property: NodeProperty{HasAnchor: true, Anchor: &Anchor{Name: name, Mark: start.mark()}}}
	return res
}

// cNsProperties matches c-ns-properties(n,c) [104]: tag-then-anchor,
// anchor-then-tag, or either alone, per YAML 1.2's requirement that at
// most one of each appear but either declaration order is legal.
func cNsProperties(c Cursor, n int, ctx Context) Result {
	tagFirst := func(cur Cursor) Result {
		tagRes := cNsTagProperty(cur)
		if !tagRes.ok() {
			return tagRes
		}
		prop := tagRes.Node.Property
		sep := sSeparate(tagRes.Next, n, ctx)
		if sep.ok() {
			anchorRes := cNsAnchorProperty(sep.Next)
			if anchorRes.ok() {
				prop.HasAnchor = true
				prop.Anchor = anchorRes.Node.Property.Anchor
				prop.TagFirst = true
				res := ok(anchorRes.Next)
				res.Node = &Node{Property: prop}
				return res
			}
			if anchorRes.Outcome == Error {
				return anchorRes
			}
		}
		prop.TagFirst = true
		res := ok(tagRes.Next)
		res.Node = &Node{Property: prop}
		return res
	}
	anchorFirst := func(cur Cursor) Result {
		anchorRes := cNsAnchorProperty(cur)
		if !anchorRes.ok() {
			return anchorRes
		}
		prop := anchorRes.Node.Property
		sep := sSeparate(anchorRes.Next, n, ctx)
		if sep.ok() {
			tagRes := cNsTagProperty(sep.Next)
			if tagRes.ok() {
				prop.HasTag = true
				prop.Tag = tagRes.Node.Property.Tag
				res := ok(tagRes.Next)
				res.Node = &Node{Property: prop}
				return res
			}
			if tagRes.Outcome == Error {
				return tagRes
			}
		}
		res := ok(anchorRes.Next)
		res.Node = &Node{Property: prop}
		return res
	}
	return choice(c, tagFirst, anchorFirst)
}
