/*
 * pdb_atom.go, part of bioshell.
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

//Package pdb reads and writes macromolecular structures in the PDB
//format. The package provides the PdbAtom record with its fixed-column
//parsing and formatting, a Structure that groups atoms into chains and
//residues, and a Deposit that combines a structure with per-chain
//sequence information taken from SEQRES records.
package pdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dgront/bioshell/vec3"
)

//PdbAtom holds the data parsed from a single ATOM or HETATM record.
//
//Atom and residue names are stored trimmed; the fixed-column padding
//required by the format is restored when an atom is printed.
type PdbAtom struct {
	Serial     int
	Name       string
	AltLoc     byte
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      byte
	Pos        vec3.Vec3
	Occupancy  float64
	TempFactor float64
	//Element is the chemical element symbol; empty when the record did not provide one.
	Element  string
	IsHetero bool
}

//NewPdbAtom returns a default atom: an alpha carbon of the ALA1 residue
//in chain "A", located at the origin.
func NewPdbAtom() *PdbAtom {
	return &PdbAtom{
		Serial:    1,
		Name:      "CA",
		AltLoc:    ' ',
		ResName:   "ALA",
		ChainID:   "A",
		ResSeq:    1,
		ICode:     ' ',
		Occupancy: 1.0,
		Element:   "C",
	}
}

//AtomFromPdbLine parses an ATOM or HETATM record of a PDB file.
//
//The IsHetero flag is set from the record type. The element symbol is
//read from columns 77-78 when the line is long enough; the charge
//columns are ignored. Numeric fields that cannot be parsed yield an
//*Error carrying the offending line.
func AtomFromPdbLine(pdbLine string) (*PdbAtom, error) {
	if len(pdbLine) < 66 {
		return nil, &Error{message: ErrAtomLineTooShort, line: pdbLine}
	}
	a := PdbAtom{
		Name:     strings.TrimSpace(pdbLine[12:16]),
		AltLoc:   pdbLine[16],
		ResName:  strings.TrimSpace(pdbLine[17:20]),
		ChainID:  pdbLine[21:22],
		ICode:    pdbLine[26],
		IsHetero: strings.HasPrefix(pdbLine, "H"),
	}
	var err error
	if a.Serial, err = strconv.Atoi(strings.TrimSpace(pdbLine[6:11])); err != nil {
		return nil, &Error{message: ErrAtomLineBadNumber, line: pdbLine}
	}
	if a.ResSeq, err = strconv.Atoi(strings.TrimSpace(pdbLine[22:26])); err != nil {
		return nil, &Error{message: ErrAtomLineBadNumber, line: pdbLine}
	}
	coords := [3]float64{}
	for k, span := range [3][2]int{{30, 38}, {38, 46}, {46, 54}} {
		if coords[k], err = strconv.ParseFloat(strings.TrimSpace(pdbLine[span[0]:span[1]]), 64); err != nil {
			return nil, &Error{message: ErrAtomLineBadNumber, line: pdbLine}
		}
	}
	a.Pos.Set3(coords[0], coords[1], coords[2])
	if a.Occupancy, err = strconv.ParseFloat(strings.TrimSpace(pdbLine[54:60]), 64); err != nil {
		return nil, &Error{message: ErrAtomLineBadNumber, line: pdbLine}
	}
	if a.TempFactor, err = strconv.ParseFloat(strings.TrimSpace(pdbLine[60:66]), 64); err != nil {
		return nil, &Error{message: ErrAtomLineBadNumber, line: pdbLine}
	}
	if len(pdbLine) > 76 {
		element := pdbLine[76:]
		if len(element) > 2 {
			element = element[:2]
		}
		a.Element = strings.TrimSpace(element)
	}
	return &a, nil
}

//String formats this atom as an 80-column ATOM or HETATM record.
func (a *PdbAtom) String() string {
	record := "ATOM  "
	if a.IsHetero {
		record = "HETATM"
	}
	altLoc := a.AltLoc
	if altLoc == 0 {
		altLoc = ' '
	}
	iCode := a.ICode
	if iCode == 0 {
		iCode = ' '
	}
	return fmt.Sprintf("%s%5d %s%c%3s %1s%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		record, a.Serial, formatAtomName(a.Name), altLoc, a.ResName, a.ChainID, a.ResSeq, iCode,
		a.Pos.X, a.Pos.Y, a.Pos.Z, a.Occupancy, a.TempFactor, a.Element)
}

//formatAtomName pads a trimmed atom name back to the four columns the
//PDB format reserves for it: names shorter than four characters start
//in the second column, which places a one-letter element symbol where
//the format expects it.
func formatAtomName(name string) string {
	switch {
	case len(name) >= 4:
		return name[:4]
	case len(name) == 0:
		return "    "
	default:
		return fmt.Sprintf(" %-3s", name)
	}
}

//SameResidueAtoms returns true if both atoms belong to the very same residue.
func SameResidueAtoms(ai, aj *PdbAtom) bool {
	return ai.ResSeq == aj.ResSeq && ai.ICode == aj.ICode && ai.ChainID == aj.ChainID
}

//Errors

//Messages discriminating the failure classes of this package; each
//Error carries one of them verbatim.
const (
	ErrAtomLineTooShort  = "the ATOM record line is too short"
	ErrAtomLineBadNumber = "can't parse a numeric field of an ATOM record"
)

//Error describes a problem found in PDB-formatted data.
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
