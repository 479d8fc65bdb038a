// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import "strconv"

// singleCharEscapes maps the character following a backslash to its
// decoded rune, per YAML 1.2 rule ns-esc-char [62] one-character escapes.
// A literal tab is included since "\<TAB>" is a valid (if odd) escape.
var singleCharEscapes = map[rune]rune{
	'0':  0x00,
	'a':  0x07,
	'b':  0x08,
	't':  0x09,
	'\t': 0x09,
	'n':  0x0A,
	'v':  0x0B,
	'f':  0x0C,
	'r':  0x0D,
	'e':  0x1B,
	'"':  0x22,
	'/':  0x2F,
	'\\': 0x5C,
	'N':  0x85,
	'_':  0xA0,
	'L':  0x2028,
	'P':  0x2029,
}

// hexEscapeLength maps the escape letter to the number of following hex
// digits it consumes, per ns-esc-8/16/32-bit [63]-[65].
var hexEscapeLength = map[rune]int{
	'x': 2,
	'u': 4,
	'U': 8,
}

// scanEscape scans one escape sequence starting just after the backslash
// at c (c.peek() is the character following '\'). It returns the decoded
// rune. Malformed hex escapes are a hard Error naming the expected
// length, the escape letter, and the offending span.
func scanEscape(c Cursor) Result {
	letter := c.peek()
	if letter == -1 {
		return errAt(c, "unterminated escape sequence")
	}

	if target, ok := singleCharEscapes[letter]; ok {
		return okText(c.advance(), string(target))
	}

	if n, ok := hexEscapeLength[letter]; ok {
		start := c.advance()
		cur := start
		for i := 0; i < n; i++ {
			if !isHexDigit(cur.peek()) {
				return errAt(cur, "expected "+strconv.Itoa(n)+" hex digits after \\"+string(letter)+" escape")
			}
			cur = cur.advance()
		}
		value := runesToString(start.src[start.pos:cur.pos])
		codepoint := parseHex(value)
		return okText(cur, string(rune(codepoint)))
	}

	return errAt(c, "unknown escape character "+quoteRune(letter))
}

func parseHex(s string) int64 {
	var v int64
	for _, r := range s {
		v <<= 4
		switch {
		case r >= '0' && r <= '9':
			v |= int64(r - '0')
		case r >= 'a' && r <= 'f':
			v |= int64(r-'a') + 10
		case r >= 'A' && r <= 'F':
			v |= int64(r-'A') + 10
		}
	}
	return v
}

func runesToString(rs []rune) string { return string(rs) }

func quoteRune(r rune) string { return "'" + string(r) + "'" }
