/*
 * residues.go, part of bioshell.
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

//Package chem registers the chemistry of monomers: amino acids,
//nucleotides and anything else that may show up as a residue in a
//biomolecular structure. Every residue type maps to its canonical parent
//(say, a modified alanine maps back to ALA) and to a coarse chemical
//class. A process-wide manager assigns stable integer indexes to the
//registered types; the standard set is preloaded.
package chem

import (
	"fmt"
	"strings"
	"sync"
)

//MonomerType is a coarse chemical class of a residue, a shortened
//version of the full list of monomer types found in PDB files.
type MonomerType uint8

const (
	//PeptideLinking marks a standard or modified amino acid, code 'P'.
	PeptideLinking MonomerType = iota
	//DNALinking marks a deoxy-nucleotide, code 'D'.
	DNALinking
	//RNALinking marks a nucleotide, code 'R'.
	RNALinking
	//Sacharide marks a sugar residue, code 'S'.
	Sacharide
	//NonPolymer marks a free-standing molecule, most likely a ligand, code 'N'.
	NonPolymer
	//Other covers anything else, code 'O'.
	Other
)

//MonomerTypeFromChar returns the MonomerType for its one-letter code.
func MonomerTypeFromChar(c byte) (MonomerType, error) {
	switch c {
	case 'P':
		return PeptideLinking, nil
	case 'D':
		return DNALinking, nil
	case 'R':
		return RNALinking, nil
	case 'S':
		return Sacharide, nil
	case 'N':
		return NonPolymer, nil
	case 'O':
		return Other, nil
	}
	return Other, fmt.Errorf("can't find a MonomerType for the one-letter code: %c", c)
}

//Char returns the one-letter code of a monomer type.
func (m MonomerType) Char() byte {
	return [...]byte{'P', 'D', 'R', 'S', 'N', 'O'}[m]
}

//StandardResidueType enumerates the 20 standard amino acids, the five
//standard DNA/RNA building blocks and a few special markers (unknown
//residue, gap symbols, unknown ligand).
type StandardResidueType int16

const (
	ALA StandardResidueType = iota
	ARG
	ASN
	ASP
	CYS
	GLN
	GLU
	GLY
	HIS
	ILE
	LEU
	LYS
	MET
	PHE
	PRO
	SER
	THR
	TRP
	TYR
	VAL
	UNK
	DA
	DC
	DG
	DT
	RU
	GAP
	GPE
	UNL
)

//standardData keeps one row per StandardResidueType, indexed by the enum value.
var standardData = [...]struct {
	code1 byte
	code3 string
	chem  MonomerType
}{
	{'A', "ALA", PeptideLinking},
	{'R', "ARG", PeptideLinking},
	{'N', "ASN", PeptideLinking},
	{'D', "ASP", PeptideLinking},
	{'C', "CYS", PeptideLinking},
	{'Q', "GLN", PeptideLinking},
	{'E', "GLU", PeptideLinking},
	{'G', "GLY", PeptideLinking},
	{'H', "HIS", PeptideLinking},
	{'I', "ILE", PeptideLinking},
	{'L', "LEU", PeptideLinking},
	{'K', "LYS", PeptideLinking},
	{'M', "MET", PeptideLinking},
	{'F', "PHE", PeptideLinking},
	{'P', "PRO", PeptideLinking},
	{'S', "SER", PeptideLinking},
	{'T', "THR", PeptideLinking},
	{'W', "TRP", PeptideLinking},
	{'Y', "TYR", PeptideLinking},
	{'V', "VAL", PeptideLinking},
	{'X', "UNK", PeptideLinking},
	{'a', "A", DNALinking},
	{'c', "C", DNALinking},
	{'g', "G", DNALinking},
	{'t', "T", DNALinking},
	{'u', "U", RNALinking},
	{'-', "GAP", Other},
	{'_', "GPE", Other},
	{'Z', "UNL", Other},
}

//StandardTypes lists every standard residue type, in registration order.
var StandardTypes = [...]StandardResidueType{
	ALA, ARG, ASN, ASP, CYS, GLN, GLU, GLY, HIS, ILE, LEU, LYS, MET, PHE,
	PRO, SER, THR, TRP, TYR, VAL, UNK, DA, DC, DG, DT, RU, GAP, GPE, UNL,
}

//Code1 returns the one-letter code of a standard residue type.
func (s StandardResidueType) Code1() byte { return standardData[s].code1 }

//Code3 returns the three-letter code of a standard residue type.
func (s StandardResidueType) Code3() string { return standardData[s].code3 }

//ChemCompoundType returns the chemical class of a standard residue type.
func (s StandardResidueType) ChemCompoundType() MonomerType { return standardData[s].chem }

//Id returns the integer identifier of a standard residue type.
func (s StandardResidueType) Id() uint16 { return uint16(s) }

//StandardResidueTypeFromCode1 finds the standard type for a one-letter code.
func StandardResidueTypeFromCode1(c byte) (StandardResidueType, error) {
	for _, srt := range StandardTypes {
		if standardData[srt].code1 == c {
			return srt, nil
		}
	}
	return UNK, fmt.Errorf("can't find an amino acid for the one-letter code: %c", c)
}

//ResidueType defines a small molecule or its fragment that can be found
//in biomolecular data. A non-standard type carries the standard type it
//is a variant of; for most of the nearly 39 thousand monomers listed in
//the PDB chemical component dictionary no such conversion is possible
//and UNK is used as the canonical variant.
type ResidueType struct {
	//Code3 is the three-letter code of this residue type, such as "ALA".
	Code3 string
	//ParentType is the standard residue this type is a variant of.
	ParentType StandardResidueType
	//ChemCompoundType says whether a monomer can form a protein or a nucleic acid.
	ChemCompoundType MonomerType
}

//ParseResidueType parses the one-line form "ALN A P": a three-letter
//code, the one-letter code of the parent standard residue and the
//one-letter monomer type.
func ParseResidueType(line string) (ResidueType, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return ResidueType{}, fmt.Errorf("expected three fields in a residue type definition, got %q", line)
	}
	parent, err := StandardResidueTypeFromCode1(tokens[1][0])
	if err != nil {
		return ResidueType{}, err
	}
	chem, err := MonomerTypeFromChar(tokens[2][0])
	if err != nil {
		return ResidueType{}, err
	}
	return ResidueType{Code3: tokens[0], ParentType: parent, ChemCompoundType: chem}, nil
}

//ResidueTypeManager assigns a unique integer index to every registered
//residue type. The standard types are registered by the constructor;
//extra, non-standard ones may be added later. The manager is safe for
//concurrent readers; registrations should happen before a simulation
//starts.
type ResidueTypeManager struct {
	mu      sync.Mutex
	types   []ResidueType
	byCode3 map[string]int
}

//NewResidueTypeManager creates a manager preloaded with the standard residue types.
func NewResidueTypeManager() *ResidueTypeManager {
	m := &ResidueTypeManager{byCode3: make(map[string]int)}
	for _, srt := range StandardTypes {
		m.Register(ResidueType{
			Code3:            srt.Code3(),
			ParentType:       srt,
			ChemCompoundType: srt.ChemCompoundType(),
		})
	}
	return m
}

//Count returns the number of registered residue types.
func (m *ResidueTypeManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.types)
}

//Register adds a residue type unless its three-letter code is already
//known; the first registration wins. Reports whether the type was added.
func (m *ResidueTypeManager) Register(rt ResidueType) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byCode3[rt.Code3]; ok {
		return false
	}
	m.byCode3[rt.Code3] = len(m.types)
	m.types = append(m.types, rt)
	return true
}

//ByCode3 returns a copy of the residue type registered under the given
//three-letter code, and whether it was found.
func (m *ResidueTypeManager) ByCode3(code3 string) (ResidueType, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.byCode3[code3]
	if !ok {
		return ResidueType{}, false
	}
	return m.types[i], true
}

//Index returns the integer index of a residue type, or false when the
//code has not been registered.
func (m *ResidueTypeManager) Index(code3 string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.byCode3[code3]
	return i, ok
}

//the process-wide registry; writers must register before sampling starts
var defaultManager = NewResidueTypeManager()

//Manager returns the process-wide residue type registry.
func Manager() *ResidueTypeManager { return defaultManager }
