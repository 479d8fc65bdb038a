// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockNodeBarePlainScalar(t *testing.T) {
	res := blockNode(NewCursor([]rune("hello world\n")), -1, BlockIn, defaultOptions())
	require.True(t, res.ok())
	require.Equal(t, ScalarNode, res.Node.Kind)
	require.Equal(t, "hello world", res.Node.Value)
}

func TestBlockNodeDispatchesToMapping(t *testing.T) {
	res := blockNode(NewCursor([]rune("key: value\n")), -1, BlockIn, defaultOptions())
	require.True(t, res.ok())
	require.Equal(t, MappingNode, res.Node.Kind)
}

func TestBlockNodeDispatchesToSequence(t *testing.T) {
	res := blockNode(NewCursor([]rune("- a\n- b\n")), -1, BlockIn, defaultOptions())
	require.True(t, res.ok())
	require.Equal(t, SequenceNode, res.Node.Kind)
}

func TestBlockNodeDispatchesToFlowCollection(t *testing.T) {
	res := blockNode(NewCursor([]rune("[a, b, c]\n")), -1, BlockIn, defaultOptions())
	require.True(t, res.ok())
	require.Equal(t, SequenceNode, res.Node.Kind)
	require.Len(t, res.Node.Items, 3)
}

func TestBlockNodeWithAnchorAndTagOnScalar(t *testing.T) {
	res := blockNode(NewCursor([]rune("&a1 !!str value\n")), -1, BlockIn, defaultOptions())
	require.True(t, res.ok())
	require.Equal(t, ScalarNode, res.Node.Kind)
	require.True(t, res.Node.Property.HasAnchor)
	require.True(t, res.Node.Property.HasTag)
	require.Equal(t, "a1", res.Node.Property.Anchor.Name)
}

func TestBlockNodeLiteralBlockScalarWithTag(t *testing.T) {
	res := blockNode(NewCursor([]rune("!!str |\n  bar\n")), -1, BlockIn, defaultOptions())
	require.True(t, res.ok())
	require.Equal(t, ScalarNode, res.Node.Kind)
	require.Equal(t, LiteralStyle, res.Node.Style)
	require.True(t, res.Node.Property.HasTag)
	require.Equal(t, "bar\n", res.Node.Value)
}
