// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import "strings"

// Block scalars, per YAML 1.2 rules [162]-[173]. The
// hardest part is indentation auto-detection: when the header omits the
// digit indicator, the base indentation is read off the first non-empty
// content line, and any leading empty line indented further than that
// base is a hard Error.

type blockScalarLine struct {
	indent int
	text   []rune
	blank  bool
}

// cLplusLiteral / cLplusFolded match c-l+literal(n) [170] and
// c-l+folded(n) [174]: the '|'/'>' indicator, header, then content.
func cLplusLiteral(c Cursor, n int, opt *options) Result {
	return scanBlockScalar(c, n, '|', opt)
}

func cLplusFolded(c Cursor, n int, opt *options) Result {
	return scanBlockScalar(c, n, '>', opt)
}

func scanBlockScalar(c Cursor, n int, indicator rune, opt *options) Result {
	if c.peek() != indicator {
		return fail(c)
	}
	start := c
	cur := c.advance()

	digit, chomp, next, r := scanBlockHeader(cur)
	if !r.ok() {
		return r
	}
	cur = next

	end := sBComment(cur)
	if !end.ok() {
		return errAt(end.Next, "invalid characters after block scalar header")
	}
	cur = end.Next

	lines, m, next2, hadFinalBreak, r2 := scanBlockScalarBody(cur, n, digit)
	if !r2.ok() {
		return r2
	}
	cur = next2

	literal := indicator == '|'
	content := renderBlockScalar(lines, m, chomp, literal, hadFinalBreak)

	res := ok(cur)
	style := LiteralStyle
	if !literal {
		style = FoldedStyle
	}
	res.Node = &Node{Kind: ScalarNode, Value: content, Style: style, Mark: start.mark()}
	return res
}

// scanBlockHeader matches c-b-block-header(n) [162]: the indentation and
// chomping indicators in either order, both optional. An explicit "0"
// indentation indicator is a hard Error: the source language
// this was distilled from tolerated it, this implementation does not.
func scanBlockHeader(c Cursor) (digit int, chomp Chomping, next Cursor, res Result) {
	digit = -1
	chomp = ChompClip
	cur := c
	sawChomp := false
	sawDigit := false

	for i := 0; i < 2; i++ {
		switch cur.peek() {
		case '-':
			if sawChomp {
				return 0, 0, c, errAt(cur, "duplicate chomping indicator")
			}
			chomp = ChompStrip
			sawChomp = true
			cur = cur.advance()
		case '+':
			if sawChomp {
				return 0, 0, c, errAt(cur, "duplicate chomping indicator")
			}
			chomp = ChompKeep
			sawChomp = true
			cur = cur.advance()
		case '0':
			return 0, 0, c, errAt(cur, "block scalar indentation indicator must be 1-9, not 0")
		default:
			if isDecDigit(cur.peek()) {
				if sawDigit {
					return 0, 0, c, errAt(cur, "duplicate indentation indicator")
				}
				digit = int(cur.peek() - '0')
				sawDigit = true
				cur = cur.advance()
			}
		}
	}
	return digit, chomp, cur, ok(cur)
}

// scanBlockScalarBody reads the raw content lines of a block scalar and
// determines the effective content indentation m, either from the
// explicit digit indicator or by auto-detecting it from the first
// non-empty line.
// The bool result reports whether the last line collected was itself
// terminated by a consumed line break (as opposed to running into EOF
// with no trailing break at all): the caller needs this to decide
// whether chomping has a final break to strip/clip/keep, since that
// break is never represented in any blockScalarLine entry.
func scanBlockScalarBody(c Cursor, n, digit int) ([]blockScalarLine, int, Cursor, bool, Result) {
	var lines []blockScalarLine
	m := -1
	if digit > 0 {
		m = n + digit
	}
	cur := c
	hadFinalBreak := false

	for {
		if cur.eof() {
			break
		}
		lineStart := cur
		spaces := 0
		probe := cur
		for probe.peek() == ' ' {
			probe = probe.advance()
			spaces++
		}

		atBreakOrEOF := probe.eof() || isBreak(probe.peek())
		if atBreakOrEOF {
			if m >= 0 && spaces > m {
				return nil, 0, c, false, errAt(lineStart, "block scalar empty line more indented than its content")
			}
			lines = append(lines, blockScalarLine{indent: spaces, blank: true})
			if probe.eof() {
				cur = probe
				hadFinalBreak = false
				break
			}
			brk := bBreak(probe)
			cur = brk.Next
			hadFinalBreak = true
			continue
		}

		if m < 0 {
			if spaces <= n {
				break // dedented below the parent: scalar ends here
			}
			m = spaces
			// Retroactively validate any leading blank lines against m.
			for _, l := range lines {
				if l.indent > m {
					return nil, 0, c, false, errAt(lineStart, "block scalar empty line more indented than its content")
				}
			}
		}

		if spaces < m {
			break // dedented below the detected content indentation
		}

		lineCur := cur.advanceN(spaces)
		textStart := lineCur
		for !lineCur.eof() && !isBreak(lineCur.peek()) {
			lineCur = lineCur.advance()
		}
		text := append([]rune(nil), textStart.src[textStart.pos:lineCur.pos]...)
		lines = append(lines, blockScalarLine{indent: spaces, text: text})

		if lineCur.eof() {
			cur = lineCur
			hadFinalBreak = false
			break
		}
		brk := bBreak(lineCur)
		cur = brk.Next
		hadFinalBreak = true
	}

	if m < 0 {
		m = n + 1
	}
	return lines, m, cur, hadFinalBreak, ok(cur)
}

// renderBlockScalar applies folding (if !literal) and chomping to the
// scanned lines, producing the final normalized scalar value.
// More-indented lines (indent > m) are never folded, matching the
// "more-indented lines are not folded" rule for '>' scalars.
func renderBlockScalar(lines []blockScalarLine, m int, chomp Chomping, literal bool, hadFinalBreak bool) string {
	var b strings.Builder
	prevMoreIndented := false
	prevWasContent := false
	afterBlank := false

	for i, l := range lines {
		if l.blank {
			b.WriteByte('\n')
			afterBlank = true
			continue
		}
		extra := l.indent - m
		moreIndented := extra > 0

		if i > 0 && prevWasContent {
			if literal {
				b.WriteByte('\n')
			} else if moreIndented || prevMoreIndented {
				b.WriteByte('\n')
			} else if !afterBlank {
				// Blank lines in between already wrote their line feeds;
				// only two adjacent lines fold to a space.
				b.WriteByte(' ')
			}
		}

		if moreIndented {
			b.WriteString(strings.Repeat(" ", extra))
		}
		b.WriteString(string(l.text))

		prevMoreIndented = moreIndented
		prevWasContent = true
		afterBlank = false
	}

	// The break that terminates the very last line is never represented
	// by a blockScalarLine entry (interior breaks are inserted above,
	// between two entries); chomping needs it counted as a trailing
	// break candidate alongside any literal blank-line breaks already
	// written.
	if hadFinalBreak && len(lines) > 0 {
		b.WriteByte('\n')
	}

	return applyChomping(b.String(), chomp, len(lines) > 0)
}

// applyChomping implements the strip/clip/keep chomping policy.
func applyChomping(content string, chomp Chomping, hadLines bool) string {
	if !hadLines {
		return ""
	}
	trailingBreaks := 0
	for i := len(content) - 1; i >= 0 && content[i] == '\n'; i-- {
		trailingBreaks++
	}
	base := content[:len(content)-trailingBreaks]

	switch chomp {
	case ChompStrip:
		return base
	case ChompKeep:
		if trailingBreaks == 0 {
			return base
		}
		return base + strings.Repeat("\n", trailingBreaks)
	default: // ChompClip
		if trailingBreaks == 0 {
			return base
		}
		return base + "\n"
	}
}
