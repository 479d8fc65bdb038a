// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// Flow nodes and collections, per YAML 1.2 rules
// [137]-[161]. defaultMaxImplicitKeyLength is the 1024 code-point bound
// YAML 1.2 puts on implicit keys; it is overridable via the Option
// returned by WithMaxImplicitKeyLength.
const defaultMaxImplicitKeyLength = 1024

// cNsAliasNode matches "*" ns-anchor-name, rule [104].
func cNsAliasNode(c Cursor) Result {
	if c.peek() != '*' {
		return fail(c)
	}
	start := c
	cur := c.advance()
	nameStart := cur
	for isAnchorChar(cur.peek()) {
		cur = cur.advance()
	}
	if cur.pos == nameStart.pos {
		return errAt(cur, "alias name must not be empty")
	}
	res := ok(cur)
	res.Node = &Node{Kind: AliasNode, AliasName: string(nameStart.src[nameStart.pos:cur.pos]), Mark: start.mark()}
	return res
}

// nsFlowNode matches ns-flow-node(n,c) [161]: an alias, bare flow
// content, or optional properties followed by optional flow content.
func nsFlowNode(c Cursor, n int, ctx Context, opt *options) Result {
	if r := cNsAliasNode(c); r.ok() {
		return r
	} else if r.Outcome == Error {
		return r
	}

	propRes := cNsProperties(c, n, ctx)
	if propRes.Outcome == Error {
		return propRes
	}
	if propRes.ok() {
		prop := propRes.Node.Property
		sep := sSeparate(propRes.Next, n, ctx)
		if sep.ok() {
			content := nsFlowContent(sep.Next, n, ctx, opt)
			if content.ok() {
				content.Node.Property = prop
				content.Node.Mark = c.mark()
				return content
			}
			if content.Outcome == Error {
				return content
			}
		}
		res := ok(propRes.Next)
		res.Node = &Node{Kind: EmptyNode, Property: prop, Mark: c.mark()}
		return res
	}

	return nsFlowContent(c, n, ctx, opt)
}

// nsFlowContent matches ns-flow-content(n,c) [160]: a flow collection or
// a flow scalar.
func nsFlowContent(c Cursor, n int, ctx Context, opt *options) Result {
	return choice(c,
		func(cur Cursor) Result { return cFlowSequence(cur, n, ctx, opt) },
		func(cur Cursor) Result { return cFlowMapping(cur, n, ctx, opt) },
		func(cur Cursor) Result { return cDoubleQuoted(cur, n, ctx) },
		func(cur Cursor) Result { return cSingleQuoted(cur, n, ctx) },
		func(cur Cursor) Result { return cPlain(cur, n, ctx) },
	)
}

// cFlowSequence matches "[" s-separate? ns-s-flow-seq-entries(n,in-flow(c))? s-separate? "]", rule [137].
func cFlowSequence(c Cursor, n int, ctx Context, opt *options) Result {
	if c.peek() != '[' {
		return fail(c)
	}
	start := c
	cur := c.advance()
	cur = optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, ctx) }).Next

	inner := inFlow(ctx)
	var items []*Node
	if cur.peek() != ']' {
		for {
			entry := flowSeqEntry(cur, n, inner, opt)
			if entry.Outcome == Error {
				return entry
			}
			if !entry.ok() {
				break
			}
			items = append(items, entry.Node)
			cur = entry.Next
			cur = optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, inner) }).Next
			if cur.peek() != ',' {
				break
			}
			cur = cur.advance()
			cur = optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, inner) }).Next
		}
	}
	if cur.peek() != ']' {
		return errAt(cur, "expected ',' or ']' in flow sequence")
	}
	cur = cur.advance()
	res := ok(cur)
	res.Node = &Node{Kind: SequenceNode, Items: items, Mark: start.mark()}
	return res
}

// flowSeqEntry matches ns-flow-seq-entry(n,c) [138]: either a
// single-pair flow mapping or a plain flow node.
func flowSeqEntry(c Cursor, n int, ctx Context, opt *options) Result {
	if pair := flowPair(c, n, ctx, opt); pair.ok() {
		return pair
	} else if pair.Outcome == Error {
		return pair
	}
	return nsFlowNode(c, n, ctx, opt)
}

// flowPair matches ns-flow-pair(n,c) [151]: the explicit-key or
// implicit-key shape of a single-entry flow mapping, wrapped as a
// one-pair MappingNode so it can sit directly inside a sequence.
func flowPair(c Cursor, n int, ctx Context, opt *options) Result {
	entry := flowMapEntry(c, n, ctx, opt)
	if !entry.ok() {
		return entry
	}
	res := ok(entry.Next)
	res.Node = &Node{Kind: MappingNode, Pairs: []Pair{entry.pair}, Mark: c.mark()}
	return res
}

// cFlowMapping matches "{" s-separate? ns-s-flow-map-entries(n,in-flow(c))? s-separate? "}", rule [140].
func cFlowMapping(c Cursor, n int, ctx Context, opt *options) Result {
	if c.peek() != '{' {
		return fail(c)
	}
	start := c
	cur := c.advance()
	cur = optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, ctx) }).Next

	inner := inFlow(ctx)
	var pairs []Pair
	if cur.peek() != '}' {
		for {
			entry := flowMapEntry(cur, n, inner, opt)
			if entry.Outcome == Error {
				return entry
			}
			if !entry.ok() {
				break
			}
			pairs = append(pairs, entry.pair)
			cur = entry.Next
			cur = optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, inner) }).Next
			if cur.peek() != ',' {
				break
			}
			cur = cur.advance()
			cur = optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, inner) }).Next
		}
	}
	if cur.peek() != '}' {
		return errAt(cur, "expected ',' or '}' in flow mapping")
	}
	cur = cur.advance()
	res := ok(cur)
	res.Node = &Node{Kind: MappingNode, Pairs: pairs, Mark: start.mark()}
	return res
}

// flowMapEntry matches ns-flow-map-entry(n,c) [144]: explicit ("? key :
// value"), implicit ("key: value"), or empty-key (": value") shapes.
// Implicit keys are bounded to opt.maxImplicitKeyLength code points and
// must fit on one line.
func flowMapEntry(c Cursor, n int, ctx Context, opt *options) Result {
	if c.peek() == '?' {
		next := c.peekAt(1)
		if isWhite(next) || isBreak(next) || next == -1 {
			return flowMapExplicitEntry(c, n, ctx, opt)
		}
	}
	return flowMapImplicitEntry(c, n, ctx, opt)
}

func flowMapExplicitEntry(c Cursor, n int, ctx Context, opt *options) Result {
	cur := c.advance()
	sep := sSeparate(cur, n, ctx)
	if !sep.ok() {
		return sep
	}
	keyRes := nsFlowNode(sep.Next, n, ctx, opt)
	var key *Node
	cur = sep.Next
	if keyRes.ok() {
		key = keyRes.Node
		cur = keyRes.Next
	} else if keyRes.Outcome == Error {
		return keyRes
	} else {
		key = &Node{Kind: EmptyNode, Mark: cur.mark()}
	}
	cur = optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, ctx) }).Next
	var value *Node
	if cur.peek() == ':' {
		cur = cur.advance()
		vSep := optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, ctx) }).Next
		vRes := nsFlowNode(vSep, n, ctx, opt)
		if vRes.ok() {
			value = vRes.Node
			cur = vRes.Next
		} else if vRes.Outcome == Error {
			return vRes
		} else {
			value = &Node{Kind: EmptyNode, Mark: cur.mark()}
			cur = vSep
		}
	} else {
		value = &Node{Kind: EmptyNode, Mark: cur.mark()}
	}
	res := ok(cur)
	res.pair = Pair{Key: key, Value: value}
	return res
}

func flowMapImplicitEntry(c Cursor, n int, ctx Context, opt *options) Result {
	if c.peek() == ':' {
		next := c.peekAt(1)
		if isWhite(next) || isBreak(next) || next == -1 || isFlowIndicator(next) {
			cur := c.advance()
			vSep := optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, ctx) }).Next
			vRes := nsFlowNode(vSep, n, ctx, opt)
			var value *Node
			cur = vSep
			if vRes.ok() {
				value = vRes.Node
				cur = vRes.Next
			} else if vRes.Outcome == Error {
				return vRes
			} else {
				value = &Node{Kind: EmptyNode, Mark: cur.mark()}
			}
			res := ok(cur)
			res.pair = Pair{Key: &Node{Kind: EmptyNode, Mark: c.mark()}, Value: value}
			return res
		}
	}

	keyCtx := ctx
	if ctx == FlowIn || ctx == FlowOut {
		keyCtx = FlowKey
	}
	keyRes := nsFlowNode(c, n, keyCtx, opt)
	if !keyRes.ok() {
		return keyRes
	}
	if keyRes.Next.pos-c.pos > opt.maxImplicitKeyLength {
		return errAt(c, "implicit key exceeds maximum length")
	}
	cur := optional(keyRes.Next, func(cc Cursor) Result { return sSeparate(cc, n, ctx) }).Next
	if cur.peek() != ':' {
		// Not every scanned key candidate is followed by ":" — ns-flow-pair
		// is an ordered alternative with ns-flow-node [138], so a miss here
		// must let flowSeqEntry retry the same input as a bare flow node
		// instead of aborting the whole collection.
		return fail(c)
	}
	cur = cur.advance()
	vSep := optional(cur, func(cc Cursor) Result { return sSeparate(cc, n, ctx) }).Next
	vRes := nsFlowNode(vSep, n, ctx, opt)
	var value *Node
	cur = vSep
	if vRes.ok() {
		value = vRes.Node
		cur = vRes.Next
	} else if vRes.Outcome == Error {
		return vRes
	} else {
		value = &Node{Kind: EmptyNode, Mark: cur.mark()}
	}
	res := ok(cur)
	res.pair = Pair{Key: keyRes.Node, Value: value}
	return res
}
