/*
 * definitions.go, part of bioshell.
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

package builder

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgront/bioshell/cif"
)

//ResidueLocator selects the residue an atom reference points into,
//relative to the residue currently being defined; the numeric value of a
//locator is the residue offset it denotes.
type ResidueLocator int8

const (
	//Previous denotes the residue preceding the one being defined.
	Previous ResidueLocator = -1
	//This denotes the residue being defined itself.
	This ResidueLocator = 0
	//Next denotes the residue following the one being defined.
	Next ResidueLocator = 1
)

//LocatorFromString parses a residue locator token; the accepted tokens
//are "prev", "this" and "next", matched case-insensitively.
func LocatorFromString(token string) (ResidueLocator, error) {
	switch strings.ToLower(token) {
	case "prev":
		return Previous, nil
	case "this":
		return This, nil
	case "next":
		return Next, nil
	}
	return This, &Error{message: ErrUnknownLocator, detail: token}
}

//String returns the token this locator is parsed from.
func (l ResidueLocator) String() string {
	switch l {
	case Previous:
		return "prev"
	case Next:
		return "next"
	}
	return "this"
}

//InternalAtomDefinition locates a single atom, referred to as d, by its
//internal coordinates: the c-d bond length, the b-c-d planar angle and
//the a-b-c-d dihedral angle, all measured against three reference atoms
//a, b and c. Every atom of the quadruple is identified by its name and a
//locator of the residue it belongs to, so a definition may reach into
//the preceding or the following residue of a polymer. Both angles are
//kept in radians.
type InternalAtomDefinition struct {
	//ResName names the residue type this definition belongs to
	ResName string
	//Name of the atom being defined, i.e. the d atom of its quadruple
	Name string
	//Element is the chemical element symbol of the defined atom
	Element string
	//DihedralName optionally names the a-b-c-d dihedral angle, e.g. "phi"
	DihedralName string
	//AName, BName and CName give the names of the reference atoms
	AName, BName, CName string
	//AResidue through DResidue locate the residues of the four atoms
	AResidue, BResidue, CResidue, DResidue ResidueLocator
	//R is the c-d bond length
	R float64
	//Planar is the b-c-d angle, in radians
	Planar float64
	//Dihedral is the a-b-c-d angle, in radians
	Dihedral float64
}

//DefinitionFromStrings creates an atom definition from tokens of a data
//row, given in the order used by the residue definition CIF files:
//
//	res_name
//	a_residue_locator a_name
//	b_residue_locator b_name
//	c_residue_locator c_name
//	d_residue_locator d_name
//	d_element
//	bond_length planar_angle dihedral_angle
//	dihedral_angle_name
//
//The angles are given in degrees and converted to radians. Atom and
//residue names may be quoted to protect their spaces; a quotation mark
//is removed from either end of a token and the remainder is trimmed.
func DefinitionFromStrings(tokens []string) (InternalAtomDefinition, error) {
	var def InternalAtomDefinition
	if len(tokens) < 14 {
		return def, &Error{message: ErrDefinitionTooShort, detail: strings.Join(tokens, " ")}
	}
	var err error
	if def.AResidue, err = LocatorFromString(tokens[1]); err != nil {
		return def, err
	}
	if def.BResidue, err = LocatorFromString(tokens[3]); err != nil {
		return def, err
	}
	if def.CResidue, err = LocatorFromString(tokens[5]); err != nil {
		return def, err
	}
	if def.DResidue, err = LocatorFromString(tokens[7]); err != nil {
		return def, err
	}
	def.ResName = unquoted(tokens[0])
	def.AName = unquoted(tokens[2])
	def.BName = unquoted(tokens[4])
	def.CName = unquoted(tokens[6])
	def.Name = unquoted(tokens[8])
	def.Element = unquoted(tokens[9])
	if def.R, err = parseMeasure(tokens[10], ErrBadBondLength); err != nil {
		return def, err
	}
	if def.Planar, err = parseMeasure(tokens[11], ErrBadPlanarAngle); err != nil {
		return def, err
	}
	if def.Dihedral, err = parseMeasure(tokens[12], ErrBadDihedralAngle); err != nil {
		return def, err
	}
	def.Planar *= math.Pi / 180.0
	def.Dihedral *= math.Pi / 180.0
	def.DihedralName = unquoted(tokens[13])
	return def, nil
}

//DefinitionFromCifLine creates an atom definition from a single row of a
//CIF loop block, e.g.:
//
//	'bb ' prev ' CA ' prev ' C  ' this ' N  ' this ' CA ' C 1.458001 123.0 180.0 omega
func DefinitionFromCifLine(line string) (InternalAtomDefinition, error) {
	return DefinitionFromStrings(cif.SplitIntoStrings(line, true))
}

func parseMeasure(token, message string) (float64, error) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &Error{message: message, detail: token}
	}
	return value, nil
}

//unquoted removes at most one quotation mark from either end of a token
//and trims the surrounding whitespace, so that a name quoted for its
//PDB-style padding, like ' CA ', can be looked up by its bare text.
func unquoted(token string) string {
	if len(token) > 0 && (token[0] == '\'' || token[0] == '"') {
		token = token[1:]
	}
	if len(token) > 0 && (token[len(token)-1] == '\'' || token[len(token)-1] == '"') {
		token = token[:len(token)-1]
	}
	return strings.TrimSpace(token)
}

//InternalCoordinatesDatabase holds internal coordinate definitions of
//residue types, keyed by the name of the CIF data block each residue
//type was loaded from.
type InternalCoordinatesDatabase struct {
	definitions map[string][]InternalAtomDefinition
}

//NewInternalCoordinatesDatabase creates an empty database.
func NewInternalCoordinatesDatabase() *InternalCoordinatesDatabase {
	return &InternalCoordinatesDatabase{definitions: map[string][]InternalAtomDefinition{}}
}

//LoadFromCifData parses atom definitions from rows of the given CIF
//blocks; only the first loop of every block is read. Definitions of a
//block named like an already known one are appended to it, so a residue
//type may be spread over several files.
func (db *InternalCoordinatesDatabase) LoadFromCifData(blocks []*cif.CifData) error {
	for _, block := range blocks {
		loops := block.LoopBlocks()
		if len(loops) == 0 {
			continue
		}
		for _, row := range loops[0].Rows() {
			def, err := DefinitionFromStrings(row)
			if err != nil {
				return err
			}
			db.definitions[block.Name()] = append(db.definitions[block.Name()], def)
		}
	}
	return nil
}

//LoadFromCifFile reads a CIF file, possibly compressed, and loads all
//the residue definitions it holds.
func (db *InternalCoordinatesDatabase) LoadFromCifFile(fname string) error {
	blocks, err := cif.ReadCifFile(fname)
	if err != nil {
		return err
	}
	return db.LoadFromCifData(blocks)
}

//DatabaseFromCifDirectory creates a database loaded with definitions
//from all the CIF files found in a given directory; files in any other
//format are skipped.
func DatabaseFromCifDirectory(dirPath string) (*InternalCoordinatesDatabase, error) {
	db := NewInternalCoordinatesDatabase()
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fname := filepath.Join(dirPath, entry.Name())
		isCif, err := cif.IsCifFile(fname)
		if err != nil {
			return nil, err
		}
		if !isCif {
			continue
		}
		if err := db.LoadFromCifFile(fname); err != nil {
			return nil, err
		}
	}
	return db, nil
}

//DefaultDatabase creates a database loaded with the built-in definitions
//of BackboneDefinitionsCif.
func DefaultDatabase() (*InternalCoordinatesDatabase, error) {
	db := NewInternalCoordinatesDatabase()
	blocks, err := cif.ReadCifBuffer(strings.NewReader(BackboneDefinitionsCif))
	if err != nil {
		return nil, err
	}
	if err := db.LoadFromCifData(blocks); err != nil {
		return nil, err
	}
	return db, nil
}

//Definition returns the atom definitions registered under a given name.
func (db *InternalCoordinatesDatabase) Definition(name string) ([]InternalAtomDefinition, bool) {
	defs, ok := db.definitions[name]
	return defs, ok
}

//CountDefinitions returns the number of residue types held by this
//database.
func (db *InternalCoordinatesDatabase) CountDefinitions() int { return len(db.definitions) }

//BackboneDefinitionsCif provides the built-in internal coordinates of a
//protein backbone: a repetitive "bb_" residue of N, CA, C and O atoms in
//the trans conformation, and the "patch_CTerm" patch which closes the
//C-terminal residue of a chain with an OXT atom. The backbone oxygen is
//defined by a reference to the N atom of the next residue, so the last
//residue of every chain must be patched to become buildable.
const BackboneDefinitionsCif = `data_bb_
loop_
_res_name
_atom_a_residue_locator
_atom_a_name
_atom_b_residue_locator
_atom_b_name
_atom_c_residue_locator
_atom_c_name
_atom_d_residue_locator
_atom_d_name
_atom_d_element
_c_d_bond_length
_b_c_d_planar_angle
_a_b_c_d_dihedral_angle
_dihedral_angle_name
'bb ' prev ' N  ' prev ' CA ' prev ' C  ' this ' N  ' N  1.328685 114.0  180.0 psi
'bb ' prev ' CA ' prev ' C  ' this ' N  ' this ' CA ' C  1.458001 123.0  180.0 omega
'bb ' prev ' C  ' this ' N  ' this ' CA ' this ' C  ' C  1.523258 110.0 -180.0 phi
'bb ' next ' N  ' this ' CA ' this ' C  ' this ' O  ' O  1.231015 120.0  180.0 -
#

data_patch_CTerm
loop_
_res_name
_atom_a_residue_locator
_atom_a_name
_atom_b_residue_locator
_atom_b_name
_atom_c_residue_locator
_atom_c_name
_atom_d_residue_locator
_atom_d_name
_atom_d_element
_c_d_bond_length
_b_c_d_planar_angle
_a_b_c_d_dihedral_angle
_dihedral_angle_name
'CTerm' this ' N  ' this ' CA ' this ' C  ' this ' OXT' O  1.2      116.5  180.0 psi
'CTerm' this ' OXT' this ' CA ' this ' C  ' this ' O  ' O  1.231015 121.0  180.0 -
#
`

//Errors

//Messages discriminating the failure classes of this package; each
//Error carries one of them verbatim.
const (
	ErrDefinitionTooShort = "too few tokens to define an atom in internal coordinates"
	ErrUnknownLocator     = "can't parse a residue locator token"
	ErrBadBondLength      = "can't parse a bond length"
	ErrBadPlanarAngle     = "can't parse a planar angle"
	ErrBadDihedralAngle   = "can't parse a dihedral angle"
	ErrAtomNotDefined     = "can't find an atom of the requested name"
	ErrResidueNotDefined  = "can't find a residue of the requested index"
	ErrDihedralNotFound   = "can't find a dihedral angle of the requested name"
)

//Error describes a problem found while defining a molecule in internal
//coordinates or assembling it into Cartesian space.
type Error struct {
	message string
	detail  string
	deco    []string
}

//Error returns the error message together with the offending token,
//name or index, when one is known.
func (err *Error) Error() string {
	if err.detail == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.message, err.detail)
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
