// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// Block node dispatch, per YAML 1.2 rule [196]
// s-l+block-node(n,c): a block-in-block node (properties then a block
// scalar or block collection), a flow-in-block node (a flow node reached
// through a block separator), or an empty node.

// blockNode matches s-l+block-node(n,c) [196].
func blockNode(c Cursor, n int, ctx Context, opt *options) Result {
	if r := blockScalarWithProperties(c, n, ctx, opt); r.ok() || r.Outcome == Error {
		return r
	}
	if r := blockCollectionWithProperties(c, n, ctx, opt); r.ok() || r.Outcome == Error {
		return r
	}
	if r := flowInBlock(c, n, opt); r.ok() || r.Outcome == Error {
		return r
	}
	return fail(c)
}

// blockScalarWithProperties matches s-l+block-scalar(n,c) [197]:
// s-separate(n+1,c), optional properties, then a literal or folded block
// scalar.
func blockScalarWithProperties(c Cursor, n int, ctx Context, opt *options) Result {
	sep := sSeparate(c, n+1, ctx)
	if !sep.ok() {
		return sep
	}
	cur := sep.Next
	var prop NodeProperty
	propRes := cNsProperties(cur, n+1, ctx)
	if propRes.Outcome == Error {
		return propRes
	}
	if propRes.ok() {
		propSep := sSeparate(propRes.Next, n+1, ctx)
		if !propSep.ok() {
			return fail(c)
		}
		prop = propRes.Node.Property
		cur = propSep.Next
	}

	scalar := choice(cur,
		func(cc Cursor) Result { return cLplusLiteral(cc, n, opt) },
		func(cc Cursor) Result { return cLplusFolded(cc, n, opt) },
	)
	if !scalar.ok() {
		if scalar.Outcome == Error {
			return scalar
		}
		return fail(c)
	}
	scalar.Node.Property = prop
	scalar.Node.Mark = c.mark()
	return scalar
}

// blockCollectionWithProperties matches s-l+block-collection(n,c) [198]:
// optional (separator + properties), then s-l-comments, then a block
// sequence (at seq-spaces(n,c)) or a block mapping (at n).
func blockCollectionWithProperties(c Cursor, n int, ctx Context, opt *options) Result {
	cur := c
	var prop NodeProperty
	if sep := sSeparate(c, n+1, ctx); sep.ok() {
		propRes := cNsProperties(sep.Next, n+1, ctx)
		if propRes.Outcome == Error {
			return propRes
		}
		if propRes.ok() {
			prop = propRes.Node.Property
			cur = propRes.Next
		}
	}

	comments := sLComments(cur)
	if !comments.ok() {
		return comments
	}
	cur = comments.Next

	body := choice(cur,
		func(cc Cursor) Result { return blockSequence(cc, seqSpaces(n, ctx), opt) },
		func(cc Cursor) Result { return blockMapping(cc, n, opt) },
	)
	if !body.ok() {
		if body.Outcome == Error {
			return body
		}
		return fail(c)
	}
	body.Node.Property = prop
	body.Node.Mark = c.mark()
	return body
}

// flowInBlock matches s-l+flow-in-block(n) [199]: s-separate(n+1,flow-
// out), a flow node in flow-out context, then trailing comments.
func flowInBlock(c Cursor, n int, opt *options) Result {
	sep := sSeparate(c, n+1, FlowOut)
	if !sep.ok() {
		return sep
	}
	node := nsFlowNode(sep.Next, n+1, FlowOut, opt)
	if !node.ok() {
		return node
	}
	comments := sLComments(node.Next)
	if !comments.ok() {
		return comments
	}
	res := ok(comments.Next)
	res.Node = node.Node
	return res
}
