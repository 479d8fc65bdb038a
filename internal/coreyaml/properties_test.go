// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCVerbatimTagLocal(t *testing.T) {
	res := cVerbatimTag(NewCursor([]rune("!<!foo>rest")))
	require.True(t, res.ok())
	require.Equal(t, VerbatimTag, res.Node.Property.Tag.Kind)
	require.Equal(t, "!foo", res.Node.Property.Tag.URI)
}

func TestCVerbatimTagAbsoluteURI(t *testing.T) {
	res := cVerbatimTag(NewCursor([]rune("!<tag:example.com,2000:app>rest")))
	require.True(t, res.ok())
	require.Equal(t, "tag:example.com,2000:app", res.Node.Property.Tag.URI)
}

func TestCVerbatimTagInvalidIsError(t *testing.T) {
	res := cVerbatimTag(NewCursor([]rune("!<not a valid tag>")))
	require.Equal(t, Error, res.Outcome)
}

func TestCVerbatimTagUnterminatedIsError(t *testing.T) {
	res := cVerbatimTag(NewCursor([]rune("!<foo")))
	require.Equal(t, Error, res.Outcome)
}

func TestCNsShorthandTagPrimary(t *testing.T) {
	res := cNsShorthandTag(NewCursor([]rune("!str rest")))
	require.True(t, res.ok())
	tag := res.Node.Property.Tag
	require.Equal(t, ShorthandTag, tag.Kind)
	require.Equal(t, "!", tag.Handle)
	require.Equal(t, "str", tag.Suffix)
}

func TestCNsShorthandTagNamedHandleRequiresSuffix(t *testing.T) {
	res := cNsShorthandTag(NewCursor([]rune("!e! rest")))
	require.Equal(t, Error, res.Outcome)
}

func TestCNonSpecificTag(t *testing.T) {
	res := cNonSpecificTag(NewCursor([]rune("! rest")))
	require.True(t, res.ok())
	require.Equal(t, NonSpecificTag, res.Node.Property.Tag.Kind)
}

func TestCNsAnchorProperty(t *testing.T) {
	res := cNsAnchorProperty(NewCursor([]rune("&anchor1 rest")))
	require.True(t, res.ok())
	require.Equal(t, "anchor1", res.Node.Property.Anchor.Name)
}

func TestCNsAnchorPropertyEmptyNameIsError(t *testing.T) {
	res := cNsAnchorProperty(NewCursor([]rune("& rest")))
	require.Equal(t, Error, res.Outcome)
}

func TestCNsPropertiesTagThenAnchor(t *testing.T) {
	res := cNsProperties(NewCursor([]rune("!!str &a1 rest")), 0, BlockIn)
	require.True(t, res.ok())
	prop := res.Node.Property
	require.True(t, prop.HasTag)
	require.True(t, prop.HasAnchor)
	require.True(t, prop.TagFirst)
	require.Equal(t, "a1", prop.Anchor.Name)
}

func TestCNsPropertiesAnchorThenTag(t *testing.T) {
	res := cNsProperties(NewCursor([]rune("&a1 !!str rest")), 0, BlockIn)
	require.True(t, res.ok())
	prop := res.Node.Property
	require.True(t, prop.HasTag)
	require.True(t, prop.HasAnchor)
	require.False(t, prop.TagFirst)
}

func TestScanURIKeepsPercentEscapesEncoded(t *testing.T) {
	text, cur, r := scanURI(NewCursor([]rune("foo%20bar rest")))
	require.True(t, r.ok())
	require.Equal(t, "foo%20bar", text)
	require.Equal(t, 9, cur.pos)
}

func TestScanURIRejectsMalformedEscape(t *testing.T) {
	_, _, r := scanURI(NewCursor([]rune("foo%2")))
	require.Equal(t, Error, r.Outcome)
}
