/*
 * cif.go, part of bioshell.
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

//Package cif reads and writes data in the CIF format. A CIF document
//stores data blocks; each block holds name-value data items and loop
//blocks with tabulated data, and a single file may carry more than one
//block. The builder package takes its residue definitions from this
//format. The official specification of the format can be found at
//https://www.iucr.org/resources/cif/spec/version1.1/cifsyntax
package cif

import (
	"fmt"
	"sort"
	"strings"
)

//CifLoop is a single loop_ block of a CIF file: a table with named
//columns and rows of string values.
type CifLoop struct {
	columnNames        []string
	dataRows           [][]string
	previousIncomplete bool
}

//NewCifLoop creates an empty loop block with the given columns, a table
//with named columns but no data rows yet.
func NewCifLoop(dataItemNames ...string) *CifLoop {
	cols := make([]string, len(dataItemNames))
	copy(cols, dataItemNames)
	return &CifLoop{columnNames: cols}
}

//AddColumn adds a new column to this loop block. Columns may be added
//only before any data is inserted; once a row is in, this method panics.
func (l *CifLoop) AddColumn(columnName string) {
	if len(l.dataRows) > 0 {
		panic("cif: attempted column insertion into a loop block that already holds data")
	}
	l.columnNames = append(l.columnNames, columnName)
}

//AddDataRow adds a new row of data. A row shorter than the number of
//columns is kept as incomplete and extended by the next call; a row that
//ends up longer than the number of columns is an error.
func (l *CifLoop) AddDataRow(row []string) error {
	nColumns := len(l.columnNames)
	if l.previousIncomplete {
		last := append(l.dataRows[len(l.dataRows)-1], row...)
		l.dataRows[len(l.dataRows)-1] = last
		if len(last) == nColumns {
			l.previousIncomplete = false
		} else if len(last) > nColumns {
			return &Error{message: ErrRowTooLong, line: strings.Join(last, " ")}
		}
		return nil
	}
	if len(row) > nColumns {
		return &Error{message: ErrRowTooLong, line: strings.Join(row, " ")}
	}
	l.previousIncomplete = len(row) != nColumns
	l.dataRows = append(l.dataRows, row)
	return nil
}

//Rows returns the rows of this loop block. The slice is owned by the
//loop; callers may edit cell values but must not reshape the table.
func (l *CifLoop) Rows() [][]string { return l.dataRows }

//ColumnNames returns the names assigned to the columns of this loop.
func (l *CifLoop) ColumnNames() []string { return l.columnNames }

//CountRows counts the rows of data stored by this loop.
func (l *CifLoop) CountRows() int { return len(l.dataRows) }

//CountColumns counts the columns, i.e. the data items, of this loop.
func (l *CifLoop) CountColumns() int { return len(l.columnNames) }

//ColumnIndex finds the index of the column holding values of a given
//data item; the flag says whether the column exists at all.
func (l *CifLoop) ColumnIndex(dataName string) (int, bool) {
	for i, name := range l.columnNames {
		if name == dataName {
			return i, true
		}
	}
	return 0, false
}

//ColumnIndexes resolves several column names at once, in the given
//order. When any of the names is missing from this loop, the error
//message starts with ErrMissingLoopKey and points at the absent column.
func (l *CifLoop) ColumnIndexes(dataNames ...string) ([]int, error) {
	indexes := make([]int, len(dataNames))
	for i, name := range dataNames {
		idx, ok := l.ColumnIndex(name)
		if !ok {
			return nil, &Error{message: ErrMissingLoopKey, line: name}
		}
		indexes[i] = idx
	}
	return indexes, nil
}

//ColumnNameContains says whether any column name contains the substring.
func (l *CifLoop) ColumnNameContains(substring string) bool {
	for _, name := range l.columnNames {
		if strings.Contains(name, substring) {
			return true
		}
	}
	return false
}

//Entry returns a single value of this table, addressed by a row index
//and a column name.
func (l *CifLoop) Entry(rowIndex int, dataName string) (string, bool) {
	idx, ok := l.ColumnIndex(dataName)
	if !ok {
		return "", false
	}
	return l.dataRows[rowIndex][idx], true
}

//SetEntry changes a single value of this table and reports whether the
//named column exists.
func (l *CifLoop) SetEntry(rowIndex int, dataName, value string) bool {
	idx, ok := l.ColumnIndex(dataName)
	if !ok {
		return false
	}
	l.dataRows[rowIndex][idx] = value
	return true
}

//String writes this loop block in the CIF format: the loop_ keyword,
//one column name per line, then space-separated rows, closed by an
//empty line.
func (l *CifLoop) String() string {
	var sb strings.Builder
	sb.WriteString("loop_\n")
	for _, name := range l.columnNames {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	for _, row := range l.dataRows {
		for i, val := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(val)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

//CifData is a single data_ block of a CIF file: key-value data items
//plus any number of loop blocks.
type CifData struct {
	name      string
	dataItems map[string]string
	loops     []*CifLoop
}

//NewCifData creates an empty data block with the given name; the
//mandatory data_ prefix is not a part of that name.
func NewCifData(name string) *CifData {
	return &CifData{name: name, dataItems: make(map[string]string)}
}

//Name returns the name of this data block.
func (d *CifData) Name() string { return d.name }

//AddLoop appends a loop block to this data block.
func (d *CifData) AddLoop(aLoop *CifLoop) { d.loops = append(d.loops, aLoop) }

//AddItem inserts a data item, replacing any previous value of the key.
func (d *CifData) AddItem(key, value string) { d.dataItems[key] = value }

//Item returns the value assigned to a given key and whether the key is
//present in this block at all.
func (d *CifData) Item(key string) (string, bool) {
	value, ok := d.dataItems[key]
	return value, ok
}

//DataItems exposes the key-value items of this block. The map is live:
//inserting into it has the same effect as AddItem.
func (d *CifData) DataItems() map[string]string { return d.dataItems }

//LoopBlocks returns the loop blocks of this data block, in file order.
func (d *CifData) LoopBlocks() []*CifLoop { return d.loops }

//FirstLoop finds the first loop block that contains a column whose name
//includes the given substring, or nil when there is none. Intended for
//blocks that hold a single loop of a kind.
func (d *CifData) FirstLoop(column string) *CifLoop {
	for _, l := range d.loops {
		if l.ColumnNameContains(column) {
			return l
		}
	}
	return nil
}

//String writes the whole data block in the CIF format. Items come first,
//alphabetically, with their values aligned in a column; loop blocks
//follow. The alphabetic order keeps the output stable between runs.
func (d *CifData) String() string {
	keys := make([]string, 0, len(d.dataItems))
	maxKeyLength := 0
	for key := range d.dataItems {
		keys = append(keys, key)
		if len(key) > maxKeyLength {
			maxKeyLength = len(key)
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "data_%s\n", d.name)
	for _, key := range keys {
		fmt.Fprintf(&sb, "%-*s %s\n", maxKeyLength, key, d.dataItems[key])
	}
	sb.WriteByte('\n')
	for _, aLoop := range d.loops {
		sb.WriteString(aLoop.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

//EntryHasValue reports whether a data entry bears a meaningful value.
//The CIF format defines the special values '.' and '?' for data that are
//inapplicable or unknown, respectively; both give false here.
func EntryHasValue(dataEntry string) bool {
	return dataEntry != "?" && dataEntry != "."
}

//Errors

//Messages discriminating the failure classes of this package; each
//Error carries one of them verbatim.
const (
	ErrEntryOutsideBlock     = "found a data entry outside any data block"
	ErrLoopOutsideBlock      = "found a data loop outside any data block"
	ErrRowOutsideLoop        = "attempt to add a loop row with no loop open"
	ErrSingleItemTokens      = "a single data item line should hold exactly two tokens: a key and its value"
	ErrMissingItemValue      = "CIF input ended before the value of a data item"
	ErrUnterminatedMultiline = "CIF input ended while searching for the ';' closing a multi-line value"
	ErrRowTooLong            = "a row of data doesn't match the number of columns of its loop block"
	ErrMissingLoopKey        = "data key of a loop block not found in CIF input"
)

//Error describes a problem found in CIF-formatted data.
type Error struct {
	message string
	line    string
	deco    []string
}

//Error returns the error message together with the offending line, when
//one is known.
func (err *Error) Error() string {
	if err.line == "" {
		return err.message
	}
	return fmt.Sprintf("%s, in line: %s", err.message, err.line)
}

//Message returns the bare message constant carried by this error, so
//callers can discriminate failure classes without parsing the text.
func (err *Error) Message() string { return err.message }

//Decorate adds the dec string to the decoration slice of the error, for
//instance the name of the file being read, and returns the resulting
//slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
