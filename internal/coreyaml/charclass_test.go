// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrintable(t *testing.T) {
	require.True(t, isPrintable('\t'))
	require.True(t, isPrintable('\n'))
	require.True(t, isPrintable('A'))
	require.True(t, isPrintable(0x85))
	require.True(t, isPrintable(0x10FFFF))
	require.False(t, isPrintable(0x00))
	require.False(t, isPrintable(0xFFFE))
}

func TestIsNBCharExcludesBreaksAndBOM(t *testing.T) {
	require.False(t, isNBChar('\n'))
	require.False(t, isNBChar('\r'))
	require.False(t, isNBChar(0xFEFF))
	require.True(t, isNBChar(' '))
}

func TestIsNSCharExcludesSpaceAndTab(t *testing.T) {
	require.False(t, isNSChar(' '))
	require.False(t, isNSChar('\t'))
	require.True(t, isNSChar('a'))
}

func TestIsIndicator(t *testing.T) {
	for _, r := range []rune{'-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`'} {
		require.Truef(t, isIndicator(r), "expected %q to be an indicator", r)
	}
	require.False(t, isIndicator('a'))
}

func TestIsTagCharExcludesBangAndFlowIndicators(t *testing.T) {
	require.False(t, isTagChar('!'))
	require.False(t, isTagChar(','))
	require.False(t, isTagChar('['))
	require.True(t, isTagChar('a'))
	require.True(t, isTagChar('-'))
}

func TestIsAnchorCharExcludesFlowIndicators(t *testing.T) {
	require.False(t, isAnchorChar(','))
	require.True(t, isAnchorChar('a'))
}

func TestIsPlainSafeRestrictsFlowIndicatorsInFlowContext(t *testing.T) {
	require.True(t, isPlainSafe(',', BlockIn))
	require.False(t, isPlainSafe(',', FlowIn))
	require.False(t, isPlainSafe(' ', FlowIn))
}
