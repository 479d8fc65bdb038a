// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeqSpacesAbsorbsColumnInBlockOut(t *testing.T) {
	require.Equal(t, 1, seqSpaces(2, BlockOut))
	require.Equal(t, 2, seqSpaces(2, BlockIn))
}

func TestMeasureLineIndentStopsAtTab(t *testing.T) {
	n, cur := measureLineIndent(NewCursor([]rune("  \tfoo")))
	require.Equal(t, 2, n)
	require.Equal(t, '\t', cur.peek())
}

func TestBlockSequenceSimple(t *testing.T) {
	res := blockSequence(NewCursor([]rune("- a\n- b\n- c\n")), -1, defaultOptions())
	require.True(t, res.ok())
	require.Len(t, res.Node.Items, 3)
	require.Equal(t, "a", res.Node.Items[0].Value)
	require.Equal(t, "b", res.Node.Items[1].Value)
	require.Equal(t, "c", res.Node.Items[2].Value)
}

func TestBlockSequenceRejectsWhenNotDashed(t *testing.T) {
	res := blockSequence(NewCursor([]rune("key: value\n")), -1, defaultOptions())
	require.False(t, res.ok())
	require.NotEqual(t, Error, res.Outcome)
}

func TestBlockSequenceDashFollowedByNonSpaceIsNotEntry(t *testing.T) {
	res := blockSequence(NewCursor([]rune("-1\n")), -1, defaultOptions())
	require.False(t, res.ok())
}

func TestBlockSequenceStopsAtNonEntryLine(t *testing.T) {
	res := blockSequence(NewCursor([]rune("- a\n- b\nkey: value\n")), -1, defaultOptions())
	require.True(t, res.ok())
	require.Len(t, res.Node.Items, 2)
}

func TestBlockMappingSimple(t *testing.T) {
	res := blockMapping(NewCursor([]rune("key1: value1\nkey2: value2\n")), -1, defaultOptions())
	require.True(t, res.ok())
	require.Len(t, res.Node.Pairs, 2)
	require.Equal(t, "key1", res.Node.Pairs[0].Key.Value)
	require.Equal(t, "value1", res.Node.Pairs[0].Value.Value)
	require.Equal(t, "key2", res.Node.Pairs[1].Key.Value)
	require.Equal(t, "value2", res.Node.Pairs[1].Value.Value)
}

func TestBlockMappingStopsAtIndentMismatch(t *testing.T) {
	res := blockMapping(NewCursor([]rune("key1: value1\n key2: value2\n")), -1, defaultOptions())
	require.True(t, res.ok())
	require.Len(t, res.Node.Pairs, 1)
}

func TestBlockMappingEntryWithEmptyValue(t *testing.T) {
	res := blockMapping(NewCursor([]rune("key:\n")), -1, defaultOptions())
	require.True(t, res.ok())
	require.Len(t, res.Node.Pairs, 1)
	require.Equal(t, "key", res.Node.Pairs[0].Key.Value)
	require.Equal(t, EmptyNode, res.Node.Pairs[0].Value.Kind)
}

func TestBlockMappingExplicitEntry(t *testing.T) {
	res := blockMapping(NewCursor([]rune("? key\n: value\n")), -1, defaultOptions())
	require.True(t, res.ok())
	require.Len(t, res.Node.Pairs, 1)
	require.Equal(t, "key", res.Node.Pairs[0].Key.Value)
	require.Equal(t, "value", res.Node.Pairs[0].Value.Value)
}

func TestBlockMappingImplicitKeyExceedingMaxLengthIsError(t *testing.T) {
	opt := defaultOptions()
	opt.maxImplicitKeyLength = 2
	res := blockMapping(NewCursor([]rune("abc: value\n")), -1, opt)
	require.Equal(t, Error, res.Outcome)
}
