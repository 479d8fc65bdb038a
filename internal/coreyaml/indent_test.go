// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSIndentConsumesExactSpaces(t *testing.T) {
	c := NewCursor([]rune("   abc"))
	res := sIndent(c, 3)
	require.True(t, res.ok())
	require.Equal(t, 3, res.Next.pos)
}

func TestSIndentFailsOnTab(t *testing.T) {
	c := NewCursor([]rune("\t  abc"))
	res := sIndent(c, 3)
	require.False(t, res.ok())
}

func TestSIndentFailsOnShortRun(t *testing.T) {
	c := NewCursor([]rune("  abc"))
	res := sIndent(c, 3)
	require.False(t, res.ok())
}

func TestAutoDetectIndent(t *testing.T) {
	c := NewCursor([]rune("    x"))
	res := autoDetectIndent(c)
	require.True(t, res.ok())
	require.Equal(t, 4, res.Int)
}

func TestSSeparateInLineAtStartOfLine(t *testing.T) {
	c := NewCursor([]rune("abc"))
	res := sSeparateInLine(c)
	require.True(t, res.ok())
	require.Equal(t, 0, res.Next.pos)
}

func TestSSeparateInLineRequiresWhitespaceMidLine(t *testing.T) {
	c := NewCursor([]rune("a bc")).advance()
	res := sSeparateInLine(c)
	require.True(t, res.ok())
	require.Equal(t, 2, res.Next.pos)
}

func TestSSeparateInLineFailsWithoutWhitespaceMidLine(t *testing.T) {
	c := NewCursor([]rune("ab")).advance()
	res := sSeparateInLine(c)
	require.False(t, res.ok())
}
