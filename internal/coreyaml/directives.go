// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import "strconv"

// Directives, per YAML 1.2 rules [82]-[89]. A directive
// begins at column 0 with '%'; lDirective dispatches on the name to one
// of the three recognized shapes.

// lDirective matches c-directive ns-directive-name (...) s-l-comments and
// returns the parsed Directive. Unknown names produce a Reserved
// directive (a semantic warning, not an error).
func lDirective(c Cursor) Result {
	if c.peek() != '%' {
		return fail(c)
	}
	start := c
	cur := c.advance()

	name, next, res := scanDirectiveName(cur)
	if !res.ok() {
		return res
	}
	cur = next

	var d Directive
	d.Mark = start.mark()

	switch name {
	case "YAML":
		major, minor, after, r := scanYAMLDirectiveValue(cur)
		if !r.ok() {
			return r
		}
		d.Kind = YAMLDirective
		d.Major, d.Minor = major, minor
		cur = after
	case "TAG":
		handle, prefix, after, r := scanTagDirectiveValue(cur)
		if !r.ok() {
			return r
		}
		d.Kind = TagDirective
		d.Handle, d.Prefix = handle, prefix
		cur = after
	default:
		params, after := scanDirectiveParameters(cur)
		d.Kind = ReservedDirective
		d.Name = name
		d.Params = params
		cur = after
	}

	end := sLComments(cur)
	if !end.ok() {
		return end
	}
	r := okNode(end.Next, nil)
	r.directive = &d
	return r
}

// scanDirectiveName matches ns-directive-name: ns-char+.
func scanDirectiveName(c Cursor) (string, Cursor, Result) {
	cur := c
	for isNSChar(cur.peek()) {
		cur = cur.advance()
	}
	if cur.pos == c.pos {
		return "", c, errAt(c, "expected a directive name after '%'")
	}
	return string(c.src[c.pos:cur.pos]), cur, ok(cur)
}

// scanDirectiveParameters matches (s-separate-in-line ns-directive-
// parameter)*.
func scanDirectiveParameters(c Cursor) ([]string, Cursor) {
	var params []string
	cur := c
	for {
		sep := sSeparateInLine(cur)
		if !sep.ok() {
			break
		}
		param, next, ok := scanBareParameter(sep.Next)
		if !ok {
			break
		}
		params = append(params, param)
		cur = next
	}
	return params, cur
}

func scanBareParameter(c Cursor) (string, Cursor, bool) {
	cur := c
	for isNSChar(cur.peek()) {
		cur = cur.advance()
	}
	if cur.pos == c.pos {
		return "", c, false
	}
	return string(c.src[c.pos:cur.pos]), cur, true
}

// scanYAMLDirectiveValue matches ns-yaml-version: an ns-dec-digit+ "."
// ns-dec-digit+ pair, per ns-yaml-directive [86]. A version greater than
// 1.2 is not an error: the declared version is preserved
// verbatim and the caller attaches a warning.
func scanYAMLDirectiveValue(c Cursor) (major, minor int, next Cursor, res Result) {
	sep := sSeparateInLine(c)
	if !sep.ok() {
		return 0, 0, c, errAt(c, "expected a version number after %YAML")
	}
	majorStr, cur, ok := scanDecDigits(sep.Next)
	if !ok {
		return 0, 0, c, errAt(sep.Next, "expected a major version number")
	}
	if cur.peek() != '.' {
		return 0, 0, c, errAt(cur, "expected '.' in YAML version")
	}
	cur = cur.advance()
	minorStr, cur2, ok := scanDecDigits(cur)
	if !ok {
		return 0, 0, c, errAt(cur, "expected a minor version number")
	}
	majorV, _ := strconv.Atoi(majorStr)
	minorV, _ := strconv.Atoi(minorStr)
	return majorV, minorV, cur2, ok2(cur2)
}

func ok2(c Cursor) Result { return ok(c) }

func scanDecDigits(c Cursor) (string, Cursor, bool) {
	cur := c
	for isDecDigit(cur.peek()) {
		cur = cur.advance()
	}
	if cur.pos == c.pos {
		return "", c, false
	}
	return string(c.src[c.pos:cur.pos]), cur, true
}

// scanTagDirectiveValue matches s-separate-in-line c-tag-handle
// s-separate-in-line ns-tag-prefix, per ns-tag-directive [88].
func scanTagDirectiveValue(c Cursor) (handle, prefix string, next Cursor, res Result) {
	lead := sSeparateInLine(c)
	if !lead.ok() {
		return "", "", c, errAt(c, "expected a tag handle after %TAG")
	}
	h, cur, r := scanTagHandle(lead.Next)
	if !r.ok() {
		return "", "", c, r
	}
	sep := sSeparateInLine(cur)
	if !sep.ok() {
		return "", "", c, errAt(cur, "expected whitespace between tag handle and prefix")
	}
	cur = sep.Next
	p, cur2, r2 := scanTagPrefix(cur)
	if !r2.ok() {
		return "", "", c, r2
	}
	return h, p, cur2, ok2(cur2)
}

// scanTagHandle matches c-tag-handle [104]: "!!" | "!" ns-word-char* "!" | "!".
func scanTagHandle(c Cursor) (string, Cursor, Result) {
	if c.peek() != '!' {
		return "", c, fail(c)
	}
	cur := c.advance()
	// Named handle: !name!
	named := cur
	for isWordChar(named.peek()) {
		named = named.advance()
	}
	if named.pos > cur.pos && named.peek() == '!' {
		end := named.advance()
		return string(c.src[c.pos:end.pos]), end, ok(end)
	}
	if cur.peek() == '!' {
		end := cur.advance()
		return "!!", end, ok(end)
	}
	return "!", cur, ok(cur)
}

// scanTagPrefix matches ns-tag-prefix [39']: either a local tag
// ("!" ns-uri-char*) or a global URI, sharing the URI-char scanning with
// scanURI in properties.go.
func scanTagPrefix(c Cursor) (string, Cursor, Result) {
	if c.peek() == '!' {
		cur := c.advance()
		for isURIChar(cur.peek()) || cur.peek() == '!' {
			cur = cur.advance()
		}
		return string(c.src[c.pos:cur.pos]), cur, ok(cur)
	}
	uri, cur, r := scanURI(c)
	if !r.ok() {
		return "", c, r
	}
	if len(uri) == 0 {
		return "", c, errAt(c, "expected a tag prefix")
	}
	return uri, cur, ok(cur)
}
