// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yamlcore is the public face of the YAML 1.2 core parser: a
// grammar engine that turns a Unicode character stream into a Token Tree
// of directives, nodes, anchors, aliases, tags, and scalar content. It
// does not resolve tags against a schema, construct native Go values, or
// emit YAML (see internal/coreyaml's package doc for the full boundary).
package yamlcore

import (
	"io"

	"go.yamlcore.dev/yamlcore/internal/coreyaml"
)

// Re-exported Token Tree types. See internal/coreyaml for field docs.
type (
	Stream        = coreyaml.Stream
	Document      = coreyaml.Document
	Directive     = coreyaml.Directive
	DirectiveKind = coreyaml.DirectiveKind
	DocumentForm  = coreyaml.DocumentForm
	Node          = coreyaml.Node
	NodeKind      = coreyaml.NodeKind
	NodeProperty  = coreyaml.NodeProperty
	Tag           = coreyaml.Tag
	TagKind       = coreyaml.TagKind
	Anchor        = coreyaml.Anchor
	Pair          = coreyaml.Pair
	ScalarStyle   = coreyaml.ScalarStyle
	Chomping      = coreyaml.Chomping
	Context       = coreyaml.Context
	Mark          = coreyaml.Mark
	Diagnostic    = coreyaml.Diagnostic
	Option        = coreyaml.Option
)

// Re-export NodeKind constants.
const (
	ScalarNode   = coreyaml.ScalarNode
	SequenceNode = coreyaml.SequenceNode
	MappingNode  = coreyaml.MappingNode
	AliasNode    = coreyaml.AliasNode
	EmptyNode    = coreyaml.EmptyNode
)

// Re-export ScalarStyle constants.
const (
	PlainStyle        = coreyaml.PlainStyle
	SingleQuotedStyle = coreyaml.SingleQuotedStyle
	DoubleQuotedStyle = coreyaml.DoubleQuotedStyle
	LiteralStyle      = coreyaml.LiteralStyle
	FoldedStyle       = coreyaml.FoldedStyle
)

// Re-export Chomping constants.
const (
	ChompClip  = coreyaml.ChompClip
	ChompStrip = coreyaml.ChompStrip
	ChompKeep  = coreyaml.ChompKeep
)

// Re-export DirectiveKind constants.
const (
	YAMLDirective     = coreyaml.YAMLDirective
	TagDirective      = coreyaml.TagDirective
	ReservedDirective = coreyaml.ReservedDirective
)

// Re-export DocumentForm constants.
const (
	BareDocument      = coreyaml.BareDocument
	ExplicitDocument  = coreyaml.ExplicitDocument
	DirectiveDocument = coreyaml.DirectiveDocument
)

// Re-export Context constants.
const (
	BlockOut = coreyaml.BlockOut
	BlockIn  = coreyaml.BlockIn
	FlowOut  = coreyaml.FlowOut
	FlowIn   = coreyaml.FlowIn
	BlockKey = coreyaml.BlockKey
	FlowKey  = coreyaml.FlowKey
)

// WithMaxImplicitKeyLength overrides the 1024 code-point implicit-key
// bound.
func WithMaxImplicitKeyLength(n int) Option { return coreyaml.WithMaxImplicitKeyLength(n) }

// WithStrictTabs is documented on coreyaml.WithStrictTabs: it currently
// cannot relax the mandatory tab rejection.
func WithStrictTabs(strict bool) Option { return coreyaml.WithStrictTabs(strict) }

// Parse reads all of r as a Unicode character stream (assumed already
// BOM-stripped and UTF-8 decoded by an outer collaborator)
// and returns its Token Tree.
func Parse(r io.Reader, opts ...Option) (Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Stream{}, err
	}
	return coreyaml.Parse([]rune(string(data)), opts...)
}

// ParseString parses src directly, without an io.Reader round-trip.
func ParseString(src string, opts ...Option) (Stream, error) {
	return coreyaml.ParseString(src, opts...)
}
