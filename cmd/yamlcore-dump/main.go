// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary reads YAML from stdin or a file and prints the raw Token
// Tree produced by the core grammar engine: directives, node kinds,
// tags, anchors and scalar content, with no schema resolution applied.
// It exists to exercise and debug the parser, not as a general-purpose
// YAML tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.yamlcore.dev/yamlcore"
)

func main() {
	longMode := flag.Bool("l", false, "Long (multi-line, indented) output")
	maxImplicitKey := flag.Int("max-implicit-key", 1024, "Maximum implicit flow mapping key length")
	flag.BoolVar(longMode, "long", false, "Long (multi-line, indented) output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reads YAML from stdin or the given file and prints its Token Tree.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var input io.Reader = os.Stdin
	args := flag.Args()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("failed to open %s: %v", args[0], err)
		}
		defer f.Close()
		input = f
	} else if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "error: only one file argument is supported")
		os.Exit(1)
	}

	stream, err := yamlcore.Parse(input, yamlcore.WithMaxImplicitKeyLength(*maxImplicitKey))
	if err != nil {
		log.Fatalf("parse failed: %v", err)
	}

	for i, doc := range stream.Documents {
		fmt.Printf("document %d (%s)\n", i, formDescription(doc.Form))
		for _, d := range doc.Directives {
			fmt.Printf("  directive %s\n", directiveDescription(d))
		}
		for _, w := range doc.Warnings {
			fmt.Printf("  warning %s: %s\n", w.Mark, w.Message)
		}
		dumpNode(doc.Root, *longMode, 1)
	}
}

func formDescription(f yamlcore.DocumentForm) string {
	switch f {
	case yamlcore.BareDocument:
		return "bare"
	case yamlcore.ExplicitDocument:
		return "explicit"
	case yamlcore.DirectiveDocument:
		return "directive"
	default:
		return "unknown"
	}
}

func directiveDescription(d yamlcore.Directive) string {
	switch d.Kind {
	case yamlcore.YAMLDirective:
		return fmt.Sprintf("YAML %d.%d", d.Major, d.Minor)
	case yamlcore.TagDirective:
		return fmt.Sprintf("TAG %s %s", d.Handle, d.Prefix)
	default:
		return "%" + d.Name + " " + strings.Join(d.Params, " ")
	}
}

func tagOf(n *yamlcore.Node) string {
	if n.Property.Tag == nil {
		return ""
	}
	return n.Property.Tag.Resolved()
}

func dumpNode(n *yamlcore.Node, long bool, depth int) {
	if n == nil {
		return
	}
	prefix := ""
	if long {
		prefix = strings.Repeat("  ", depth)
	}
	switch n.Kind {
	case yamlcore.ScalarNode:
		fmt.Printf("%sscalar(%s) %q\n", prefix, tagOf(n), n.Value)
	case yamlcore.SequenceNode:
		fmt.Printf("%ssequence(%s) len=%d\n", prefix, tagOf(n), len(n.Items))
		for _, item := range n.Items {
			dumpNode(item, long, depth+1)
		}
	case yamlcore.MappingNode:
		fmt.Printf("%smapping(%s) len=%d\n", prefix, tagOf(n), len(n.Pairs))
		for _, pair := range n.Pairs {
			dumpNode(pair.Key, long, depth+1)
			dumpNode(pair.Value, long, depth+1)
		}
	case yamlcore.AliasNode:
		fmt.Printf("%salias *%s\n", prefix, n.AliasName)
	case yamlcore.EmptyNode:
		fmt.Printf("%sempty\n", prefix)
	}
}
