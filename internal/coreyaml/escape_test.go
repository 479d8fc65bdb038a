// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanEscapeSingleChar(t *testing.T) {
	c := NewCursor([]rune("n rest"))
	res := scanEscape(c)
	require.True(t, res.ok())
	require.Equal(t, "\n", res.Text)
}

func TestScanEscapeHex(t *testing.T) {
	c := NewCursor([]rune("x41rest"))
	res := scanEscape(c)
	require.True(t, res.ok())
	require.Equal(t, "A", res.Text)
}

func TestScanEscapeUnicodeHex(t *testing.T) {
	c := NewCursor([]rune("u0041rest"))
	res := scanEscape(c)
	require.True(t, res.ok())
	require.Equal(t, "A", res.Text)
}

func TestScanEscapeShortHexIsError(t *testing.T) {
	c := NewCursor([]rune("x4"))
	res := scanEscape(c)
	require.Equal(t, Error, res.Outcome)
}

func TestScanEscapeUnknownLetterIsError(t *testing.T) {
	c := NewCursor([]rune("q"))
	res := scanEscape(c)
	require.Equal(t, Error, res.Outcome)
}

func TestScanEscapeUnterminatedIsError(t *testing.T) {
	c := NewCursor([]rune(""))
	res := scanEscape(c)
	require.Equal(t, Error, res.Outcome)
}
