// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// options holds the parse-time knobs threaded through every rule that
// needs them. Kept small and unexported: the public functional-options
// surface lives on the root package (see yamlcore.go). Marshal-specific
// concerns like indent width and custom tag resolution belong to
// composition/emission and have no home here, since this package never
// constructs native values or emits YAML.
type options struct {
	maxImplicitKeyLength int
	strictTabs           bool
}

func defaultOptions() *options {
	return &options{
		maxImplicitKeyLength: defaultMaxImplicitKeyLength,
		strictTabs:           true,
	}
}

// Option configures a Parse call.
type Option func(*options)

// WithMaxImplicitKeyLength overrides the default 1024 code-point
// implicit-key length bound.
func WithMaxImplicitKeyLength(n int) Option {
	return func(o *options) { o.maxImplicitKeyLength = n }
}

// WithStrictTabs documents, rather than relaxes, the fact that tabs are
// always rejected as structural indentation: the option exists so
// callers can see the behavior named explicitly instead of it being an
// unstated hard-coded default.
func WithStrictTabs(strict bool) Option {
	return func(o *options) { o.strictTabs = strict }
}
