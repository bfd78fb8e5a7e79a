/*
 * reader.go, part of bioshell.
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
	"bufio"
	"io"
	"strings"

	"github.com/dgront/bioshell/files"
)

//ReadCifFile reads a CIF-formatted file, possibly compressed; see
//files.OpenReader for the recognized extensions. All data blocks found
//in the file are returned.
func ReadCifFile(inputFname string) ([]*CifData, error) {
	reader, err := files.OpenReader(inputFname)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	blocks, err := ReadCifBuffer(reader)
	if err != nil {
		if cifErr, ok := err.(*Error); ok {
			cifErr.Decorate(inputFname)
		}
		return nil, err
	}
	return blocks, nil
}

//IsCifFile tests whether a given file is in the CIF format, i.e. whether
//its first data line starts with the data_ keyword; empty lines and
//comments are skipped.
func IsCifFile(filePath string) (bool, error) {
	reader, err := files.OpenReader(filePath)
	if err != nil {
		return false, err
	}
	defer reader.Close()
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		ls := strings.TrimSpace(scanner.Text())
		if len(ls) == 0 || strings.HasPrefix(ls, "#") {
			continue
		}
		return strings.HasPrefix(ls, "data_"), nil
	}
	return false, scanner.Err()
}

//ReadCifBuffer reads CIF-formatted data from a reader and returns all
//the data blocks it found. An open loop block is closed by an empty
//line, a comment, another loop_ or data_ keyword, the end of input, or
//a data item following the loop's rows.
func ReadCifBuffer(r io.Reader) ([]*CifData, error) {
	var dataBlocks []*CifData
	var currentLoop *CifLoop

	closeLoop := func() {
		if currentLoop != nil {
			dataBlocks[len(dataBlocks)-1].AddLoop(currentLoop)
			currentLoop = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ls := strings.TrimSpace(scanner.Text())

		//skip empty content and comments; either ends an open loop
		if len(ls) == 0 || strings.HasPrefix(ls, "#") {
			closeLoop()
			continue
		}

		switch {
		case strings.HasPrefix(ls, "data_"):
			closeLoop()
			dataBlocks = append(dataBlocks, NewCifData(strings.TrimPrefix(ls, "data_")))

		case strings.HasPrefix(ls, "_"):
			if currentLoop != nil && currentLoop.CountRows() == 0 {
				//a column declaration of the currently open loop
				currentLoop.AddColumn(ls)
				continue
			}
			//a data item line; it also ends a loop that already has rows
			closeLoop()
			if len(dataBlocks) == 0 {
				return nil, &Error{message: ErrEntryOutsideBlock, line: ls}
			}
			lastBlock := dataBlocks[len(dataBlocks)-1]
			keyVal := SplitIntoStrings(ls, false)
			switch {
			case len(keyVal) == 2:
				lastBlock.AddItem(keyVal[0], keyVal[1])
			case len(keyVal) == 1:
				//the value comes in the next line, possibly as a
				//semicolon-delimited multi-line string
				value, err := readContinuation(scanner)
				if err != nil {
					return nil, err
				}
				lastBlock.AddItem(keyVal[0], value)
			default:
				return nil, &Error{message: ErrSingleItemTokens, line: ls}
			}

		case strings.HasPrefix(ls, "loop_"):
			if len(dataBlocks) == 0 {
				return nil, &Error{message: ErrLoopOutsideBlock, line: ls}
			}
			closeLoop()
			currentLoop = NewCifLoop()

		default:
			//the last possibility: a row of data inside a loop block
			if currentLoop == nil {
				return nil, &Error{message: ErrRowOutsideLoop, line: ls}
			}
			if strings.HasPrefix(ls, ";") {
				value, err := readMultiline(ls, scanner)
				if err != nil {
					return nil, err
				}
				if err := currentLoop.AddDataRow([]string{value}); err != nil {
					return nil, err
				}
			} else if err := currentLoop.AddDataRow(SplitIntoStrings(ls, false)); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	closeLoop()
	return dataBlocks, nil
}

//readContinuation provides the value for a data item whose key was the
//only token in its line: the next non-empty line holds the value, either
//as a single token, a quoted string or a semicolon-delimited multi-line
//string.
func readContinuation(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := scanner.Text()
		ls := strings.TrimSpace(line)
		if len(ls) == 0 {
			continue
		}
		if strings.HasPrefix(ls, ";") {
			return readMultiline(ls, scanner)
		}
		if !isQuotedString(ls) && strings.ContainsRune(ls, ' ') {
			return "", &Error{message: ErrSingleItemTokens, line: ls}
		}
		return ls, nil
	}
	return "", &Error{message: ErrMissingItemValue}
}

//readMultiline accumulates a semicolon-delimited string: firstLine opens
//it and any text following the opening semicolon becomes its first
//fragment. Lines are taken verbatim until one starting with ';' closes
//the string; the fragments are joined with newlines.
func readMultiline(firstLine string, scanner *bufio.Scanner) (string, error) {
	var fragments []string
	if rest := strings.TrimSpace(firstLine[1:]); len(rest) > 0 {
		fragments = append(fragments, rest)
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), ";") {
			return strings.Join(fragments, "\n"), nil
		}
		fragments = append(fragments, line)
	}
	return "", &Error{message: ErrUnterminatedMultiline, line: firstLine}
}
