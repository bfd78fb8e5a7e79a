/*
 * tokenizer_test.go, part of bioshell.
 *
 * Copyright 2023 Dominik Gront
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPlainWords(Te *testing.T) {
	tokens := SplitIntoStrings("The quick brown fox jumps over the lazy dog", false)
	assert.Len(Te, tokens, 9)
	assert.Equal(Te, "The", tokens[0])
	assert.Equal(Te, "dog", tokens[8])

	assert.Nil(Te, SplitIntoStrings("", false))
	assert.Nil(Te, SplitIntoStrings("   \t  ", true))
}

func TestSplitQuotedStrings(Te *testing.T) {
	tokens := SplitIntoStrings("The 'quick brown fox' jumps over the 'lazy dog'", false)
	assert.Len(Te, tokens, 6)
	assert.Equal(Te, "'quick brown fox'", tokens[1])
	assert.Equal(Te, "'lazy dog'", tokens[5])

	tokens = SplitIntoStrings("The 'quick brown fox' jumps over the 'lazy dog'", true)
	assert.Equal(Te, "quick brown fox", tokens[1])
	assert.Equal(Te, "lazy dog", tokens[5])
}

func TestSplitNestedQuotes(Te *testing.T) {
	//a primed atom name keeps its inner quote because the token is
	//delimited by the outer double quotes
	tokens := SplitIntoStrings(`O "O5'" "O5'"`, false)
	assert.Len(Te, tokens, 3)
	assert.Equal(Te, `"O5'"`, tokens[1])

	tokens = SplitIntoStrings(`O "O5'" "O1"`, true)
	assert.Len(Te, tokens, 3)
	assert.Equal(Te, "O5'", tokens[1])
	assert.Equal(Te, "O1", tokens[2])
}

func TestSplitChemCompLine(Te *testing.T) {
	line := `A   'RNA linking'       y "ADENOSINE-5'-MONOPHOSPHATE" ? 'C10 H14 N5 O7 P' 347.221`
	tokens := SplitIntoStrings(line, false)
	assert.Len(Te, tokens, 7)
	assert.Equal(Te, "'RNA linking'", tokens[1])
	assert.Equal(Te, `"ADENOSINE-5'-MONOPHOSPHATE"`, tokens[3])
	assert.Equal(Te, "'C10 H14 N5 O7 P'", tokens[5])
	assert.Equal(Te, "347.221", tokens[6])
}

func TestSplitResidueDefinitionLine(Te *testing.T) {
	line := "'ALA' prev ' N  ' prev ' CA ' prev ' C  ' this ' N  ' N 1.328685 114.0  180.0 psi"
	tokens := SplitIntoStrings(line, true)
	assert.Len(Te, tokens, 14)
	assert.Equal(Te, "ALA", tokens[0])
	//blank runs inside a quoted name collapse to a single space
	assert.Equal(Te, " N ", tokens[2])
	assert.Equal(Te, " CA ", tokens[4])
	assert.Equal(Te, "N", tokens[9])
	assert.Equal(Te, "1.328685", tokens[10])
	assert.Equal(Te, "psi", tokens[13])
}

func TestRemovePairedQuotes(Te *testing.T) {
	cases := [][2]string{
		{"'hello'", "hello"},
		{`"world"`, "world"},
		{"no_quotes", "no_quotes"},
		{`'mismatched"`, `'mismatched"`},
		{"''", ""},
		{`""`, ""},
		{"single'", "single'"},
	}
	for _, c := range cases {
		assert.Equal(Te, c[1], removePairedQuotes(c[0]), "input: %s", c[0])
	}
}

func TestQuoteStyleDispatch(Te *testing.T) {
	cases := []struct {
		token string
		style quoteStyle
	}{
		{`"Hello"`, quoteBoth},
		{"'World", quoteBegin},
		{"atoms'", quoteEnd},
		{"plain", quoteNone},
		{"'Smart'", quoteBoth},
		{`'Different"`, quoteBegin},
		{"'", quoteBegin},
	}
	for _, c := range cases {
		assert.Equal(Te, c.style, styleOf(c.token), "token: %s", c.token)
	}
}
