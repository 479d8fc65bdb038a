// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// Documents, per YAML 1.2 rules [207]-[210]. Tag-directive
// state is per-document: every document starts from the default
// handle bindings and a fresh version.

const defaultTagPrefixSecondary = "tag:yaml.org,2002:"

// tagScope tracks the handle -> prefix bindings in effect for one
// document, reset at the start of every document.
type tagScope struct {
	handles map[string]string
}

func newTagScope() *tagScope {
	return &tagScope{handles: map[string]string{
		"!":  "!",
		"!!": defaultTagPrefixSecondary,
	}}
}

// lDocumentPrefix matches l-document-prefix [207]: any number of blank
// or comment lines (the BOM is assumed already stripped, by an outer
// "out of scope" list).
func lDocumentPrefix(c Cursor) Result {
	return star(c, func(cc Cursor) Result { return lComment(cc) })
}

// lDocumentSuffix matches l-document-suffix [210]: "..." then comments.
func lDocumentSuffix(c Cursor) Result {
	if !matchLiteral(c, "...").ok() {
		return fail(c)
	}
	after := c.advanceN(3)
	if r := after.peek(); r != -1 && !isWhite(r) && !isBreak(r) {
		return fail(c)
	}
	return sLComments(after)
}

// cDirectivesEnd matches "---" not immediately followed by a
// non-whitespace ns-char (which would make it a plain scalar instead).
func cDirectivesEnd(c Cursor) Result {
	if !matchLiteral(c, "---").ok() {
		return fail(c)
	}
	after := c.advanceN(3)
	if r := after.peek(); r != -1 && !isWhite(r) && !isBreak(r) {
		return fail(c)
	}
	return ok(after)
}

// parseDocument parses one document starting at c and returns it along
// with the cursor just past it. explicitOnly requires the document to
// begin with "---" (a document not preceded by "..." must be
// explicit or directive).
func parseDocument(c Cursor, explicitOnly bool, opt *options) (Document, Cursor, Result) {
	scope := newTagScope()
	var doc Document
	doc.StartMark = c.mark()
	cur := c
	sawYAMLDirective := false
	declaredHandles := map[string]bool{}

	for {
		dRes := lDirective(cur)
		if dRes.Outcome == Error {
			return doc, c, dRes
		}
		if !dRes.ok() {
			break
		}
		d := *dRes.directive
		if d.Kind == YAMLDirective {
			if sawYAMLDirective {
				return doc, c, errAt(cur, "duplicate YAML directive")
			}
			sawYAMLDirective = true
			if d.Major > 1 || (d.Major == 1 && d.Minor > 2) {
				doc.Warnings = append(doc.Warnings, Diagnostic{Mark: d.Mark, Message: "YAML directive version greater than 1.2; parsing as 1.2"})
			}
		}
		if d.Kind == TagDirective {
			if prev := scope.handles[d.Handle]; declaredHandles[d.Handle] && prev != d.Prefix {
				doc.Warnings = append(doc.Warnings, Diagnostic{Mark: d.Mark, Message: "duplicate TAG directive for handle " + d.Handle})
			}
			declaredHandles[d.Handle] = true
			scope.handles[d.Handle] = d.Prefix
		}
		if d.Kind == ReservedDirective {
			doc.Warnings = append(doc.Warnings, Diagnostic{Mark: d.Mark, Message: "unknown directive %" + d.Name})
		}
		doc.Directives = append(doc.Directives, d)
		cur = dRes.Next
	}

	hasDirectives := len(doc.Directives) > 0
	sawMarker := false
	if r := cDirectivesEnd(cur); r.ok() {
		sawMarker = true
		cur = r.Next
	} else if r.Outcome == Error {
		return doc, c, r
	}

	if hasDirectives {
		doc.Form = DirectiveDocument
		if !sawMarker {
			return doc, c, errAt(cur, "expected '---' after directives")
		}
	} else if sawMarker {
		doc.Form = ExplicitDocument
	} else {
		if explicitOnly {
			return doc, c, fail(c)
		}
		doc.Form = BareDocument
	}

	node := blockNode(cur, -1, BlockIn, opt)
	if node.ok() {
		doc.Root = node.Node
		cur = node.Next
	} else if node.Outcome == Error {
		return doc, c, node
	} else {
		comments := sLComments(cur)
		if !comments.ok() {
			return doc, c, comments
		}
		doc.Root = &Node{Kind: EmptyNode, Mark: cur.mark()}
		cur = comments.Next
	}

	if suffix := lDocumentSuffix(cur); suffix.ok() {
		doc.HasExplicitEnd = true
		cur = suffix.Next
	}

	doc.EndMark = cur.mark()
	return doc, cur, ok(cur)
}
