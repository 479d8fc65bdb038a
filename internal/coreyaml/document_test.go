// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDocumentBareMapping(t *testing.T) {
	doc, _, r := parseDocument(NewCursor([]rune("key: value\n")), false, defaultOptions())
	require.True(t, r.ok())
	require.Equal(t, BareDocument, doc.Form)
	require.Equal(t, MappingNode, doc.Root.Kind)
	require.False(t, doc.HasExplicitEnd)
}

func TestParseDocumentExplicitMarker(t *testing.T) {
	doc, _, r := parseDocument(NewCursor([]rune("---\nkey: value\n")), false, defaultOptions())
	require.True(t, r.ok())
	require.Equal(t, ExplicitDocument, doc.Form)
}

func TestParseDocumentWithDirectives(t *testing.T) {
	doc, _, r := parseDocument(NewCursor([]rune("%YAML 1.2\n---\nkey: value\n")), false, defaultOptions())
	require.True(t, r.ok())
	require.Equal(t, DirectiveDocument, doc.Form)
	require.Len(t, doc.Directives, 1)
	require.Equal(t, YAMLDirective, doc.Directives[0].Kind)
	require.Equal(t, 1, doc.Directives[0].Major)
	require.Equal(t, 2, doc.Directives[0].Minor)
	require.Empty(t, doc.Warnings)
}

func TestParseDocumentMissingMarkerAfterDirectivesIsError(t *testing.T) {
	_, _, r := parseDocument(NewCursor([]rune("%YAML 1.2\nkey: value\n")), false, defaultOptions())
	require.Equal(t, Error, r.Outcome)
}

func TestParseDocumentYAMLVersionAbove12EmitsWarningPreservingVersion(t *testing.T) {
	doc, _, r := parseDocument(NewCursor([]rune("%YAML 1.3\n---\nfoo\n")), false, defaultOptions())
	require.True(t, r.ok())
	require.Equal(t, 1, doc.Directives[0].Major)
	require.Equal(t, 3, doc.Directives[0].Minor)
	require.Len(t, doc.Warnings, 1)
	require.Contains(t, doc.Warnings[0].Message, "1.2")
}

func TestParseDocumentDuplicateTagHandleEmitsWarning(t *testing.T) {
	src := "%TAG !e! tag:example.com,2000:\n%TAG !e! tag:example.com,2001:\n---\nfoo\n"
	doc, _, r := parseDocument(NewCursor([]rune(src)), false, defaultOptions())
	require.True(t, r.ok())
	require.Len(t, doc.Warnings, 1)
	require.Contains(t, doc.Warnings[0].Message, "!e!")
	require.Len(t, doc.Directives, 2)
	require.Equal(t, "tag:example.com,2001:", doc.Directives[1].Prefix)
}

func TestParseDocumentDuplicateYAMLDirectiveIsError(t *testing.T) {
	src := "%YAML 1.1\n%YAML 1.2\n---\nfoo\n"
	_, _, r := parseDocument(NewCursor([]rune(src)), false, defaultOptions())
	require.Equal(t, Error, r.Outcome)
	require.Contains(t, r.Err.Message, "duplicate YAML directive")
}

func TestParseDocumentReservedDirectiveEmitsWarning(t *testing.T) {
	doc, _, r := parseDocument(NewCursor([]rune("%FOO bar\n---\nfoo\n")), false, defaultOptions())
	require.True(t, r.ok())
	require.Equal(t, ReservedDirective, doc.Directives[0].Kind)
	require.Len(t, doc.Warnings, 1)
	require.Contains(t, doc.Warnings[0].Message, "%FOO")
}

func TestParseDocumentExplicitEndMarker(t *testing.T) {
	doc, _, r := parseDocument(NewCursor([]rune("key: value\n...\n")), false, defaultOptions())
	require.True(t, r.ok())
	require.True(t, doc.HasExplicitEnd)
}

func TestParseDocumentBareRejectedWhenExplicitOnly(t *testing.T) {
	_, _, r := parseDocument(NewCursor([]rune("key: value\n")), true, defaultOptions())
	require.False(t, r.ok())
	require.NotEqual(t, Error, r.Outcome)
}

func TestParseDocumentEmptyBodyProducesEmptyNode(t *testing.T) {
	doc, _, r := parseDocument(NewCursor([]rune("---\n")), false, defaultOptions())
	require.True(t, r.ok())
	require.Equal(t, EmptyNode, doc.Root.Kind)
}
