// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

// Package coreyaml implements the YAML 1.2 core grammar: the
// serialization-level parser that turns a Unicode character stream into a
// Token Tree of directives, nodes, anchors, aliases, tags, and scalar
// content. It does not resolve tags against a schema, construct native Go
// values, or emit YAML — those are downstream concerns.
package coreyaml

import "fmt"

// Mark identifies a position in the source character stream.
type Mark struct {
	Offset int // code-point offset from the start of the stream
	Line   int // 1-indexed line
	Column int // 0-indexed column, displayed 1-indexed by String
}

func (m Mark) String() string {
	if m.Line == 0 {
		return "<unknown position>"
	}
	return fmt.Sprintf("line %d, column %d", m.Line, m.Column+1)
}

// Context selects which grammar production variant applies: YAML rules
// are parameterized on block/flow style and in/out nesting, and this
// type carries that parameterization through the combinators below.
type Context int

const (
	BlockOut Context = iota
	BlockIn
	FlowOut
	FlowIn
	BlockKey
	FlowKey
)

func (c Context) String() string {
	switch c {
	case BlockOut:
		return "block-out"
	case BlockIn:
		return "block-in"
	case FlowOut:
		return "flow-out"
	case FlowIn:
		return "flow-in"
	case BlockKey:
		return "block-key"
	case FlowKey:
		return "flow-key"
	default:
		return "unknown-context"
	}
}

// inFlow maps a block context to its flow counterpart, used when
// descending from a block collection into a flow node (rule [151] c()).
func inFlow(c Context) Context {
	switch c {
	case FlowOut, FlowIn:
		return FlowIn
	default:
		return FlowKey
	}
}

// Chomping is the final-line-break policy of a block scalar.
type Chomping int

const (
	ChompClip Chomping = iota // default: keep a single trailing line feed
	ChompStrip                // '-': drop the trailing break entirely
	ChompKeep                 // '+': keep the break and all trailing empty lines
)

// ScalarStyle records how a scalar was written in the source.
type ScalarStyle int

const (
	PlainStyle ScalarStyle = iota
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle
)

func (s ScalarStyle) String() string {
	switch s {
	case PlainStyle:
		return "plain"
	case SingleQuotedStyle:
		return "single-quoted"
	case DoubleQuotedStyle:
		return "double-quoted"
	case LiteralStyle:
		return "literal"
	case FoldedStyle:
		return "folded"
	default:
		return "unknown-style"
	}
}

// NodeKind discriminates the Node variant.
type NodeKind int

const (
	ScalarNode NodeKind = iota
	SequenceNode
	MappingNode
	AliasNode
	EmptyNode
)

// TagKind discriminates a Tag variant.
type TagKind int

const (
	NoTag TagKind = iota
	VerbatimTag
	ShorthandTag
	NonSpecificTag
)

// Tag is a node's type annotation. Exactly one of the shapes below is
// meaningful, selected by Kind.
type Tag struct {
	Kind   TagKind
	URI    string // VerbatimTag: the text between "!<" and ">", %-escapes left encoded
	Handle string // ShorthandTag: "!", "!!", or "!name!"
	Suffix string // ShorthandTag: the tag-char run after the handle
	Mark   Mark
}

// Resolved returns the handle+suffix concatenation for a shorthand tag, or
// the verbatim URI, used by callers validating "starts with '!' or is a
// valid absolute URI".
func (t Tag) Resolved() string {
	switch t.Kind {
	case VerbatimTag:
		return t.URI
	case ShorthandTag:
		return t.Handle + t.Suffix
	default:
		return ""
	}
}

// Anchor names a node so a later Alias can refer back to it.
type Anchor struct {
	Name string
	Mark Mark
}

// NodeProperty is the optional (Tag, Anchor) pair attached to a Node.
type NodeProperty struct {
	Tag       *Tag
	Anchor    *Anchor
	TagFirst  bool // declaration order: tag written before anchor
	HasTag    bool
	HasAnchor bool
}

// Node is one member of the Token Tree. Exactly the fields relevant
// to Kind are populated; the rest are zero.
type Node struct {
	Kind     NodeKind
	Property NodeProperty
	Mark     Mark

	// ScalarNode
	Value string
	Style ScalarStyle

	// SequenceNode
	Items []*Node

	// MappingNode
	Pairs []Pair

	// AliasNode
	AliasName string
}

// Pair is one (key, value) entry of a Mapping. Either side may be an
// EmptyNode where the grammar allows an omitted node.
type Pair struct {
	Key   *Node
	Value *Node
}

// Directive is one of the three recognized directive shapes.
type DirectiveKind int

const (
	YAMLDirective DirectiveKind = iota
	TagDirective
	ReservedDirective
)

type Directive struct {
	Kind DirectiveKind
	Mark Mark

	// YAMLDirective
	Major, Minor int

	// TagDirective
	Handle, Prefix string

	// ReservedDirective
	Name   string
	Params []string
}

// DocumentForm records how a document began in the source.
type DocumentForm int

const (
	BareDocument DocumentForm = iota
	ExplicitDocument
	DirectiveDocument
)

// Diagnostic is a non-fatal warning attached to a document.
type Diagnostic struct {
	Mark    Mark
	Message string
}

// Document is one top-level tree in a Stream.
type Document struct {
	Form       DocumentForm
	Directives []Directive
	Root       *Node
	Warnings   []Diagnostic
	StartMark  Mark
	EndMark    Mark
	// HasExplicitEnd records whether the document was closed with "...".
	HasExplicitEnd bool
}

// Stream is the root of the Token Tree: an ordered sequence of documents.
type Stream struct {
	Documents []Document
}
