/*
 * kinematic_tree.go, part of bioshell.
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

//Package builder computes Cartesian coordinates of molecules defined in
//internal coordinates. Every atom is located by a bond length, a planar
//angle and a dihedral angle measured against three reference atoms,
//which in a polymer may belong to a neighboring residue; such residue
//definitions are loaded from CIF files into an
//InternalCoordinatesDatabase. A KinematicAtomTree collects the
//definitions of consecutive residues, resolves the atom references,
//works out the order in which the atoms can be placed and finally
//rebuilds the molecule with the natural extension reference frame (NeRF)
//algorithm.
package builder

import (
	"fmt"
	"strconv"

	"github.com/dgront/bioshell/pdb"
	"github.com/dgront/bioshell/vec3"
)

//residueDefinition collects the atom definitions of a single residue, in
//the order they were added.
type residueDefinition struct {
	atoms []InternalAtomDefinition
}

//resName returns the name of the residue this definition describes.
func (rd *residueDefinition) resName() string { return rd.atoms[0].ResName }

//atomIndex returns the local index of a named atom within this residue.
func (rd *residueDefinition) atomIndex(atomName string) (int, bool) {
	for i := range rd.atoms {
		if rd.atoms[i].Name == atomName {
			return i, true
		}
	}
	return 0, false
}

//KinematicAtomTree computes Cartesian coordinates of atoms from their
//internal definitions. Residues are appended with AddResidue and may be
//specialized with PatchResidue; the tree compiles itself on the first
//query or build, resolving every atom reference into an absolute index
//and scheduling the restoration order. An atom defined by a reference to
//the following residue, like the carbonyl oxygen of a protein backbone,
//is simply built after the atom it requires.
type KinematicAtomTree struct {
	residues       []residueDefinition
	r              []float64
	planar         []float64
	dihedral       []float64
	names          []string
	elements       []string
	dihedralNames  []string
	referenceAtoms [][4]int
	buildingOrder  []int
	residueAtoms   [][2]int
	compiled       bool
}

//NewKinematicAtomTree creates an empty tree.
func NewKinematicAtomTree() *KinematicAtomTree {
	return &KinematicAtomTree{}
}

//CountAtoms returns the total number of atoms defined for this polymer.
func (t *KinematicAtomTree) CountAtoms() int {
	n := 0
	for i := range t.residues {
		n += len(t.residues[i].atoms)
	}
	return n
}

//CountResidues returns the number of residues of this polymer.
func (t *KinematicAtomTree) CountResidues() int { return len(t.residues) }

//ResidueName returns the name of a residue given its index.
func (t *KinematicAtomTree) ResidueName(residueIndex int) string {
	return t.residues[residueIndex].resName()
}

//AtomsForResidue returns the half-open range of atom indexes that belong
//to the residue of a given index.
func (t *KinematicAtomTree) AtomsForResidue(residueIndex int) (int, int, error) {
	if err := t.ensureCompiled(); err != nil {
		return 0, 0, err
	}
	if residueIndex < 0 || residueIndex >= len(t.residueAtoms) {
		return 0, 0, &Error{message: ErrResidueNotDefined, detail: strconv.Itoa(residueIndex)}
	}
	rng := t.residueAtoms[residueIndex]
	return rng[0], rng[1], nil
}

//ResidueForAtom returns the index of the residue a given atom belongs to.
func (t *KinematicAtomTree) ResidueForAtom(atomIndex int) (int, error) {
	if err := t.ensureCompiled(); err != nil {
		return 0, err
	}
	return t.residueForAtom(atomIndex), nil
}

func (t *KinematicAtomTree) residueForAtom(atomIndex int) int {
	for i, rng := range t.residueAtoms {
		if atomIndex >= rng[0] && atomIndex < rng[1] {
			return i
		}
	}
	panic("builder: atom index out of bounds")
}

//AtomName returns the name of an atom given its index in this tree.
func (t *KinematicAtomTree) AtomName(atomIndex int) (string, error) {
	if err := t.ensureCompiled(); err != nil {
		return "", err
	}
	return t.names[atomIndex], nil
}

//AtomElement returns the chemical element symbol of an atom given its
//index in this tree.
func (t *KinematicAtomTree) AtomElement(atomIndex int) (string, error) {
	if err := t.ensureCompiled(); err != nil {
		return "", err
	}
	return t.elements[atomIndex], nil
}

//NamedDihedral returns the current value of a named dihedral angle, in
//radians. The name must match a dihedral angle name used by an atom
//definition of the pointed residue, e.g. "phi" or "psi" for a protein
//backbone; the first matching atom decides when a name repeats within
//one residue.
func (t *KinematicAtomTree) NamedDihedral(residueIndex int, dihedralName string) (float64, error) {
	if err := t.ensureCompiled(); err != nil {
		return 0, err
	}
	if residueIndex < 0 || residueIndex >= len(t.residueAtoms) {
		return 0, &Error{message: ErrResidueNotDefined, detail: strconv.Itoa(residueIndex)}
	}
	rng := t.residueAtoms[residueIndex]
	for i := rng[0]; i < rng[1]; i++ {
		if t.dihedralNames[i] == dihedralName {
			return t.dihedral[i], nil
		}
	}
	return 0, &Error{message: ErrDihedralNotFound, detail: fmt.Sprintf("%s in residue %d", dihedralName, residueIndex)}
}

//SetNamedDihedral assigns a new value, in radians, to a named dihedral
//angle. The assignment holds until the definitions of this tree are
//modified, which recompiles the tree and brings all the angles back to
//their defined values.
func (t *KinematicAtomTree) SetNamedDihedral(residueIndex int, dihedralName string, value float64) error {
	if err := t.ensureCompiled(); err != nil {
		return err
	}
	if residueIndex < 0 || residueIndex >= len(t.residueAtoms) {
		return &Error{message: ErrResidueNotDefined, detail: strconv.Itoa(residueIndex)}
	}
	rng := t.residueAtoms[residueIndex]
	for i := rng[0]; i < rng[1]; i++ {
		if t.dihedralNames[i] == dihedralName {
			t.dihedral[i] = value
			return nil
		}
	}
	return &Error{message: ErrDihedralNotFound, detail: fmt.Sprintf("%s in residue %d", dihedralName, residueIndex)}
}

//AddAtom appends an atom definition to the residue of a given index;
//empty residues are created up to that index when necessary.
func (t *KinematicAtomTree) AddAtom(def InternalAtomDefinition, residueIndex int) {
	for len(t.residues) <= residueIndex {
		t.residues = append(t.residues, residueDefinition{})
	}
	t.residues[residueIndex].atoms = append(t.residues[residueIndex].atoms, def)
	t.compiled = false
}

//AddResidue appends a residue defined by the given atoms at the end of
//this polymer.
func (t *KinematicAtomTree) AddResidue(defs []InternalAtomDefinition) {
	residueIndex := len(t.residues)
	for _, def := range defs {
		t.AddAtom(def, residueIndex)
	}
}

//PatchResidue modifies a residue that has already been added: every
//given definition either overrides the atom of the same name or appends
//a new atom to the residue. This is how a generic monomer definition is
//specialized, e.g. into the C-terminal variant of an amino acid.
func (t *KinematicAtomTree) PatchResidue(residueIndex int, defs []InternalAtomDefinition) error {
	if residueIndex < 0 || residueIndex >= len(t.residues) {
		return &Error{message: ErrResidueNotDefined, detail: strconv.Itoa(residueIndex)}
	}
	residue := &t.residues[residueIndex]
	for _, def := range defs {
		if i, ok := residue.atomIndex(def.Name); ok {
			residue.atoms[i] = def
		} else {
			residue.atoms = append(residue.atoms, def)
		}
	}
	t.compiled = false
	return nil
}

//Compile resolves all the atom references of this tree into absolute
//atom indexes and schedules the order of restoration. Queries and build
//methods call it automatically; compiling an already compiled tree is a
//no-op.
func (t *KinematicAtomTree) Compile() error { return t.ensureCompiled() }

//BuildingOrder returns the order in which the atoms of this tree are
//restored, which may differ from their storage order when a definition
//refers to an atom of the following residue. The returned slice is owned
//by the tree and valid until its next modification.
func (t *KinematicAtomTree) BuildingOrder() ([]int, error) {
	if err := t.ensureCompiled(); err != nil {
		return nil, err
	}
	return t.buildingOrder, nil
}

//ReferenceAtoms returns, for every atom of this tree, the absolute
//indexes of its a, b and c reference atoms followed by the index of the
//atom itself. The first three atoms form the stub of the molecule and
//always refer to themselves. The returned slice is owned by the tree and
//valid until its next modification.
func (t *KinematicAtomTree) ReferenceAtoms() ([][4]int, error) {
	if err := t.ensureCompiled(); err != nil {
		return nil, err
	}
	return t.referenceAtoms, nil
}

//BuildCoordinates restores the Cartesian coordinates of all the atoms of
//this tree; the first atom is placed at the origin.
func (t *KinematicAtomTree) BuildCoordinates() ([]vec3.Vec3, error) {
	if err := t.ensureCompiled(); err != nil {
		return nil, err
	}
	chain := make([]vec3.Vec3, len(t.referenceAtoms))
	RestoreBranchedChainInOrder(t.r, t.planar, t.dihedral, t.referenceAtoms, t.buildingOrder, chain)
	return chain, nil
}

//BuildAtoms restores the Cartesian coordinates of this tree and wraps
//them into PDB atoms of a given chain; atoms are numbered from 1 and
//residues from 1, in the storage order.
func (t *KinematicAtomTree) BuildAtoms(chainID string) ([]*pdb.PdbAtom, error) {
	chain, err := t.BuildCoordinates()
	if err != nil {
		return nil, err
	}
	atoms := make([]*pdb.PdbAtom, len(chain))
	for i := range chain {
		iResidue := t.residueForAtom(i)
		a := pdb.NewPdbAtom()
		a.Serial = i + 1
		a.Name = t.names[i]
		a.ResName = t.residues[iResidue].resName()
		a.ChainID = chainID
		a.ResSeq = iResidue + 1
		a.Pos = chain[i]
		a.Element = t.elements[i]
		atoms[i] = a
	}
	return atoms, nil
}

func (t *KinematicAtomTree) ensureCompiled() error {
	if t.compiled {
		return nil
	}
	return t.compile()
}

//compile fills the flat per-atom arrays from the residue definitions,
//resolves the reference atoms and schedules the building order.
func (t *KinematicAtomTree) compile() error {
	nAtoms := t.CountAtoms()
	t.r = make([]float64, nAtoms)
	t.planar = make([]float64, nAtoms)
	t.dihedral = make([]float64, nAtoms)
	t.names = make([]string, nAtoms)
	t.elements = make([]string, nAtoms)
	t.dihedralNames = make([]string, nAtoms)
	t.referenceAtoms = make([][4]int, nAtoms)
	iAtom := 0
	for iResidue := range t.residues {
		for i := range t.residues[iResidue].atoms {
			atom := &t.residues[iResidue].atoms[i]
			t.r[iAtom] = atom.R
			t.planar[iAtom] = atom.Planar
			t.dihedral[iAtom] = atom.Dihedral
			t.names[iAtom] = atom.Name
			t.elements[iAtom] = atom.Element
			t.dihedralNames[iAtom] = atom.DihedralName
			//the first three atoms of a molecule form its stub and get fixed references
			switch iAtom {
			case 0:
				t.referenceAtoms[0] = [4]int{0, 0, 0, 0}
			case 1:
				t.referenceAtoms[1] = [4]int{0, 0, 0, 1}
			case 2:
				t.referenceAtoms[2] = [4]int{0, 0, 1, 2}
			default:
				a, err := t.atomIndex(iResidue, atom.AResidue, atom.AName)
				if err != nil {
					return err
				}
				b, err := t.atomIndex(iResidue, atom.BResidue, atom.BName)
				if err != nil {
					return err
				}
				c, err := t.atomIndex(iResidue, atom.CResidue, atom.CName)
				if err != nil {
					return err
				}
				d, err := t.atomIndex(iResidue, atom.DResidue, atom.Name)
				if err != nil {
					return err
				}
				t.referenceAtoms[iAtom] = [4]int{a, b, c, d}
			}
			iAtom++
		}
	}
	t.orderAtoms()
	t.setupResidueRanges()
	t.compiled = true
	return nil
}

//atomIndex resolves a locator and an atom name into the absolute index
//of that atom within this tree.
func (t *KinematicAtomTree) atomIndex(currentResidue int, locator ResidueLocator, atomName string) (int, error) {
	theResidue := currentResidue + int(locator)
	if theResidue < 0 || theResidue >= len(t.residues) {
		return 0, &Error{message: ErrResidueNotDefined, detail: strconv.Itoa(theResidue)}
	}
	local, ok := t.residues[theResidue].atomIndex(atomName)
	if !ok {
		return 0, &Error{message: ErrAtomNotDefined, detail: fmt.Sprintf("%s in residue %d", atomName, theResidue)}
	}
	atomsTotal := 0
	for i := 0; i < theResidue; i++ {
		atomsTotal += len(t.residues[i].atoms)
	}
	return local + atomsTotal, nil
}

//orderAtoms schedules the restoration so that every atom is placed after
//the three atoms it is defined upon. An atom that requires an atom of a
//higher index waits until the required one has been built; the waiting
//entries are kept sorted by the required index to make the resulting
//order reproducible.
func (t *KinematicAtomTree) orderAtoms() {
	t.buildingOrder = t.buildingOrder[:0]
	maxAtomBuilt := 0
	var waiting [][2]int
	for _, ref := range t.referenceAtoms {
		kept := waiting[:0]
		for _, w := range waiting {
			if w[0] <= maxAtomBuilt {
				t.buildingOrder = append(t.buildingOrder, w[1])
				if w[1] > maxAtomBuilt {
					maxAtomBuilt = w[1]
				}
			} else {
				kept = append(kept, w)
			}
		}
		waiting = kept
		maxRequired := ref[0]
		if ref[1] > maxRequired {
			maxRequired = ref[1]
		}
		if ref[2] > maxRequired {
			maxRequired = ref[2]
		}
		if maxRequired <= ref[3] {
			t.buildingOrder = append(t.buildingOrder, ref[3])
			if ref[3] > maxAtomBuilt {
				maxAtomBuilt = ref[3]
			}
		} else {
			waiting = insertWaiting(waiting, [2]int{maxRequired, ref[3]})
		}
	}
	for _, w := range waiting {
		t.buildingOrder = append(t.buildingOrder, w[1])
	}
}

//insertWaiting keeps the waiting list sorted by (required index, atom index).
func insertWaiting(waiting [][2]int, entry [2]int) [][2]int {
	pos := len(waiting)
	for i, w := range waiting {
		if entry[0] < w[0] || (entry[0] == w[0] && entry[1] < w[1]) {
			pos = i
			break
		}
	}
	waiting = append(waiting, [2]int{})
	copy(waiting[pos+1:], waiting[pos:])
	waiting[pos] = entry
	return waiting
}

func (t *KinematicAtomTree) setupResidueRanges() {
	t.residueAtoms = make([][2]int, len(t.residues))
	from := 0
	for k := range t.residues {
		to := from + len(t.residues[k].atoms)
		t.residueAtoms[k] = [2]int{from, to}
		from = to
	}
}
