/*
 * nblist.go, part of bioshell.
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

package cartesian

import (
	"log"

	"github.com/dgront/bioshell/vec3"
)

//NbListRules defines which atoms and which atom pairs are excluded from
//neighbor list hashing.
//
//By default a neighbor list provides all spatial neighbors of a given atom
//for efficient evaluation of pairwise interactions. An NbListRules
//implementation asks the list to omit some of them, e.g. atoms that are
//directly connected with a covalent bond and therefore handled by a bonded
//energy term. Implementations must be cloneable so a sampler can snapshot
//a neighbor list together with its rules.
type NbListRules interface {
	//SkipAtom says if an atom is excluded from any interactions.
	SkipAtom(coordinates *Coordinates, iAtom int) bool
	//SkipPair says if a given pair of atoms is excluded from any interactions.
	SkipPair(coordinates *Coordinates, iAtom, jAtom int) bool
	//Clone returns a deep copy of this rule set.
	Clone() NbListRules
}

//ArgonRules implements interaction rules for a monoatomic fluid simulation,
//such as argon gas: all atoms always interact with each other, so all pairs
//are included in the neighbor list hashing.
type ArgonRules struct{}

//SkipAtom always returns false, because all atoms interact.
func (ArgonRules) SkipAtom(_ *Coordinates, _ int) bool { return false }

//SkipPair returns true only when iAtom == jAtom, because an atom can't
//interact with itself; every other pair is included.
func (ArgonRules) SkipPair(_ *Coordinates, iAtom, jAtom int) bool { return iAtom == jAtom }

func (r ArgonRules) Clone() NbListRules { return r }

//PolymerRules implements simple polymer style interaction rules:
//
//	- every atom is included
//	- direct neighbors in a chain do not interact, as it is assumed they are
//	  connected with a pseudo-bond, e.g. a harmonic spring. More precisely,
//	  SkipPair(i, j) returns true if |i-j| < 2 and the two atoms belong to
//	  the same chain.
type PolymerRules struct{}

//SkipAtom always returns false, because all atoms of a polymer interact.
func (PolymerRules) SkipAtom(_ *Coordinates, _ int) bool { return false }

//SkipPair excludes direct neighbors in a chain, i.e. returns true if
//|i-j| < 2 and the two atoms belong to the same chain. This prevents a
//contact (non-bonded) interaction between beads that are already connected
//with bonds. Atoms of different chains always interact.
func (PolymerRules) SkipPair(coordinates *Coordinates, iAtom, jAtom int) bool {
	if coordinates.ChainId(iAtom) != coordinates.ChainId(jAtom) {
		return false
	}
	if iAtom > jAtom {
		return iAtom-jAtom < 2
	}
	return jAtom-iAtom < 2
}

func (r PolymerRules) Clone() NbListRules { return r }

//NbList is a Verlet-style neighbor list: for every atom it maintains the set
//of atoms found within cutoff + bufferWidth, modulo the exclusion rules.
//
//Energy evaluators must treat the list as a superset of the true neighbors
//and re-check the distance against the cutoff themselves: the buffer zone
//admits atoms beyond the interaction range so the list can survive small
//moves without a rebuild. An atom triggers a local rebuild only once its
//accumulated displacement exceeds half of the buffer width.
type NbList struct {
	cutoff        float64
	bufferWidth   float64
	totalCutoffSq float64
	maxMovedSq    float64
	rules         NbListRules
	recentPos     []vec3.Vec3
	travelled     []vec3.Vec3
	neighbors     [][]int
}

//NewNbList creates an empty neighbor list for a given interaction cutoff,
//buffer zone thickness and exclusion rules. The list grows lazily as it
//sees systems of increasing size; call UpdateAll() to populate it.
func NewNbList(cutoff, bufferThickness float64, rules NbListRules) *NbList {
	total := cutoff + bufferThickness
	maxMoved := bufferThickness / 2.0
	return &NbList{
		cutoff:        cutoff,
		bufferWidth:   bufferThickness,
		totalCutoffSq: total * total,
		maxMovedSq:    maxMoved * maxMoved,
		rules:         rules,
	}
}

//Neighbors provides read-only access to all the neighbor lists; the i-th
//entry lists the current neighbors of atom i in no particular order.
func (n *NbList) Neighbors() [][]int { return n.neighbors }

//NeighborsOf provides read-only access to the neighbors of a given atom.
func (n *NbList) NeighborsOf(pos int) []int { return n.neighbors[pos] }

//Travelled returns the displacement accumulated by atom i since its last
//rebuild.
func (n *NbList) Travelled(i int) vec3.Vec3 { return n.travelled[i] }

//RecentPos returns the position of atom i recorded at its most recent
//Update() or UpdateAll() call.
func (n *NbList) RecentPos(i int) vec3.Vec3 { return n.recentPos[i] }

//Cutoff provides the interaction cutoff radius.
func (n *NbList) Cutoff() float64 { return n.cutoff }

//SetCutoff modifies the interaction cutoff radius.
func (n *NbList) SetCutoff(d0 float64) {
	n.cutoff = d0
	total := n.cutoff + n.bufferWidth
	n.totalCutoffSq = total * total
}

//BufferWidth provides the thickness of the buffer zone.
func (n *NbList) BufferWidth() float64 { return n.bufferWidth }

//SetBufferWidth modifies the thickness of the buffer zone.
func (n *NbList) SetBufferWidth(width float64) {
	n.bufferWidth = width
	total := n.cutoff + n.bufferWidth
	n.totalCutoffSq = total * total
	maxMoved := width / 2.0
	n.maxMovedSq = maxMoved * maxMoved
}

//SetRules sets new rules that define which atoms and atom pairs can be
//neighbors. Remember to update this neighbor list after the call; note
//also that entries hashed under the old rules stay on the lists until the
//next rebuild of their atoms.
func (n *NbList) SetRules(rules NbListRules) { n.rules = rules }

//insertPair stores atoms i and j on each other's list when the pair is not
//excluded and the two atoms lie within the total cutoff.
func (n *NbList) insertPair(system *Coordinates, i, j int) {
	if n.rules.SkipPair(system, i, j) {
		return
	}
	if system.ClosestDistanceSquare(j, i) < n.totalCutoffSq {
		n.neighbors[j] = append(n.neighbors[j], i)
		n.neighbors[i] = append(n.neighbors[i], j)
	}
}

//Update updates the list of neighbors after a given atom was moved.
//
//The displacement since the last rebuild is accumulated first; when it stays
//below half of the buffer width the old list for the atom remains valid and
//the method returns right away. Otherwise the atom is removed from the lists
//of all its partners and its neighborhood is detected from scratch. The
//accumulated displacement is a plain coordinate difference, so a caller must
//not teleport an atom by a whole box length in a single move.
func (n *NbList) Update(system *Coordinates, atomIndex int) {
	if n.rules.SkipAtom(system, atomIndex) {
		return
	}
	n.extend(system)

	a := system.Atom(atomIndex)
	n.travelled[atomIndex].X += a.X - n.recentPos[atomIndex].X
	n.travelled[atomIndex].Y += a.Y - n.recentPos[atomIndex].Y
	n.travelled[atomIndex].Z += a.Z - n.recentPos[atomIndex].Z

	//record the position after the move even if the list is not updated
	n.recentPos[atomIndex].X = a.X
	n.recentPos[atomIndex].Y = a.Y
	n.recentPos[atomIndex].Z = a.Z

	if n.travelled[atomIndex].LengthSquared() < n.maxMovedSq {
		return
	}
	n.travelled[atomIndex].X = 0.0
	n.travelled[atomIndex].Y = 0.0
	n.travelled[atomIndex].Z = 0.0

	//first remove atomIndex from the lists of all its partners
	for _, j := range n.neighbors[atomIndex] {
		found := false
		lst := n.neighbors[j]
		for k := range lst {
			if lst[k] == atomIndex {
				lst[k] = lst[len(lst)-1]
				n.neighbors[j] = lst[:len(lst)-1]
				found = true
				break
			}
		}
		if !found {
			log.Printf("INCONSISTENT NBL: atom %d missing from the list of its neighbor %d", atomIndex, j)
		}
	}
	//...then clear the neighbors of atomIndex itself
	n.neighbors[atomIndex] = n.neighbors[atomIndex][:0]

	//detect neighbors anew
	for i := 0; i < atomIndex; i++ {
		n.insertPair(system, atomIndex, i)
	}
	for i := atomIndex + 1; i < system.Size(); i++ {
		n.insertPair(system, atomIndex, i)
	}
}

//UpdateAll creates the list of neighbors for every atom of the system; the
//previous content is wiped out.
func (n *NbList) UpdateAll(system *Coordinates) {
	n.extend(system)
	for i := range n.neighbors {
		n.neighbors[i] = n.neighbors[i][:0]
	}
	for i := 0; i < system.Size(); i++ {
		if n.rules.SkipAtom(system, i) {
			continue
		}
		a := system.Atom(i)
		n.recentPos[i].X = a.X
		n.recentPos[i].Y = a.Y
		n.recentPos[i].Z = a.Z
		n.travelled[i].X = 0.0
		n.travelled[i].Y = 0.0
		n.travelled[i].Z = 0.0
		for j := 0; j < i; j++ {
			n.insertPair(system, j, i)
		}
	}
}

//extend adds inner lists so this structure has at least as many rows as the
//number of atoms in the given system.
func (n *NbList) extend(system *Coordinates) {
	for len(n.neighbors) < system.Size() {
		n.neighbors = append(n.neighbors, nil)
		n.recentPos = append(n.recentPos, vec3.Vec3{})
		n.travelled = append(n.travelled, vec3.Vec3{})
	}
}

//Clone returns a deep copy of this neighbor list, including a deep copy of
//its rules.
func (n *NbList) Clone() *NbList {
	out := NewNbList(n.cutoff, n.bufferWidth, n.rules.Clone())
	out.neighbors = make([][]int, len(n.neighbors))
	for i := range n.neighbors {
		out.neighbors[i] = append([]int(nil), n.neighbors[i]...)
	}
	out.recentPos = append([]vec3.Vec3(nil), n.recentPos...)
	out.travelled = append([]vec3.Vec3(nil), n.travelled...)
	return out
}
