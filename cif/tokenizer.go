/*
 * tokenizer.go, part of bioshell.
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

import "strings"

//quoteStyle says where a token carries quotation characters; a token
//that merely opens a quote absorbs the following words.
type quoteStyle uint8

const (
	quoteNone quoteStyle = iota
	quoteBegin
	quoteEnd
	quoteBoth
)

//isQuoteChar recognizes plain and typographic quotation marks.
func isQuoteChar(r rune) bool {
	switch r {
	case '\'', '"', '‘', '’', '“', '”':
		return true
	}
	return false
}

func styleOf(token string) quoteStyle {
	runes := []rune(token)
	if len(runes) == 1 && isQuoteChar(runes[0]) {
		return quoteBegin
	}
	first, last := runes[0], runes[len(runes)-1]
	switch {
	case first == last && isQuoteChar(first):
		return quoteBoth
	case isQuoteChar(first):
		return quoteBegin
	case isQuoteChar(last):
		return quoteEnd
	}
	return quoteNone
}

//SplitIntoStrings splits a text line into white-space separated tokens,
//keeping every quoted string together as a single token even when it
//contains spaces inside. Both single and double quotes are recognized.
//When ifRemoveQuotes is true, the paired quotes surrounding a token are
//stripped from the output:
//
//	SplitIntoStrings("The 'quick brown fox' jumps", true)
//
//gives the three tokens The, quick brown fox and jumps.
func SplitIntoStrings(s string, ifRemoveQuotes bool) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	tokens := []string{words[0]}
	for _, word := range words[1:] {
		if styleOf(tokens[len(tokens)-1]) == quoteBegin {
			tokens[len(tokens)-1] += " " + word
		} else {
			tokens = append(tokens, word)
		}
	}
	if ifRemoveQuotes {
		for i, token := range tokens {
			tokens[i] = removePairedQuotes(token)
		}
	}
	return tokens
}

//removePairedQuotes strips a matching pair of single or double quotes
//from both ends of a token; any other quotation marks are left intact.
func removePairedQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '\'' || first == '"') {
		return s[1 : len(s)-1]
	}
	return s
}

//isQuotedString reports whether a trimmed, non-empty line both starts
//and ends with a quotation character: a semicolon, a single or a double
//quote.
func isQuotedString(input string) bool {
	runes := []rune(input)
	first, last := runes[0], runes[len(runes)-1]
	if first != '\'' && first != '"' && first != ';' {
		return false
	}
	return last == '\'' || last == '"' || last == ';'
}
