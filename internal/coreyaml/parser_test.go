// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleMapping(t *testing.T) {
	stream, err := Parse([]rune("key: value\n"))
	require.NoError(t, err)
	require.Len(t, stream.Documents, 1)
	require.Equal(t, MappingNode, stream.Documents[0].Root.Kind)
}

func TestParseStringConvenienceWrapper(t *testing.T) {
	stream, err := ParseString("- a\n- b\n")
	require.NoError(t, err)
	require.Equal(t, SequenceNode, stream.Documents[0].Root.Kind)
}

func TestParseReturnsDocumentErrorOnHardFailure(t *testing.T) {
	_, err := ParseString("|0\nfoo\n")
	require.Error(t, err)
	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	require.Equal(t, 0, docErr.DocumentIndex)
	require.Contains(t, docErr.Err.Message, "0")
}

func TestParseWithMaxImplicitKeyLengthOption(t *testing.T) {
	_, err := ParseString("abcdef: value\n", WithMaxImplicitKeyLength(3))
	require.Error(t, err)
}

func TestParseEmptyInputYieldsNoDocuments(t *testing.T) {
	stream, err := ParseString("")
	require.NoError(t, err)
	require.Empty(t, stream.Documents)
}
