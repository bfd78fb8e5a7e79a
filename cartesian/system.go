/*
 * system.go, part of bioshell.
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

import "github.com/dgront/bioshell/vec3"

//System bundles Coordinates with the NbList that tracks its neighbors.
//
//Mutators that by contract keep atoms within one buffer width of their last
//hashed position (Set, Add) leave the neighbor list alone; the caller
//decides when to call UpdateNbl(). Mutators that may teleport an atom
//(CopyFromVec, CopyFrom) refresh the list themselves.
type System struct {
	coordinates *Coordinates
	nbList      *NbList
}

//NewSystem wraps the given coordinates and neighbor list into a system.
//The list is fully rebuilt so the two start consistent.
func NewSystem(coordinates *Coordinates, nbList *NbList) *System {
	s := &System{coordinates: coordinates, nbList: nbList}
	s.nbList.UpdateAll(s.coordinates)
	return s
}

//Coordinates provides access to the atoms of this system.
func (s *System) Coordinates() *Coordinates { return s.coordinates }

//NbList provides access to the neighbor list of this system.
func (s *System) NbList() *NbList { return s.nbList }

//BoxLen returns the length of the cubic simulation box.
func (s *System) BoxLen() float64 { return s.coordinates.BoxLen() }

//Volume returns the volume of the cubic simulation box.
func (s *System) Volume() float64 {
	l := s.coordinates.BoxLen()
	return l * l * l
}

//SetBoxLen rescales the simulation box to a new edge length. Every atom
//position is multiplied by the same ratio newBoxLen/oldBoxLen, so the
//reduced coordinates of the system stay intact.
func (s *System) SetBoxLen(newBoxLen float64) {
	f := newBoxLen / s.coordinates.BoxLen()
	s.coordinates.SetBoxLen(newBoxLen)
	for i := 0; i < s.coordinates.Size(); i++ {
		s.coordinates.Set(i, s.coordinates.X(i)*f, s.coordinates.Y(i)*f, s.coordinates.Z(i)*f)
	}
}

//UpdateNbl updates the neighbor list after atom i was moved.
func (s *System) UpdateNbl(i int) { s.nbList.Update(s.coordinates, i) }

//Set assigns the position of atom i, wrapped into the box. The neighbor
//list is not touched; call UpdateNbl() once the move is final.
func (s *System) Set(i int, x, y, z float64) { s.coordinates.Set(i, x, y, z) }

//Add translates atom i by a given vector, wrapping as Set() does. The
//neighbor list is not touched; call UpdateNbl() once the move is final.
func (s *System) Add(i int, x, y, z float64) { s.coordinates.Add(i, x, y, z) }

//CopyFromVec copies the position of atom i from a given vector without
//wrapping and refreshes the neighborhood of the atom.
func (s *System) CopyFromVec(i int, v *vec3.Vec3) {
	s.coordinates.CopyFromVec(i, v)
	s.nbList.Update(s.coordinates, i)
}

//SetChains assigns each atom of this system to a chain; see
//Coordinates.SetChains for the partition contract.
func (s *System) SetChains(chainRanges []Span) { s.coordinates.SetChains(chainRanges) }

//SetResType assigns the residue type of atom i.
func (s *System) SetResType(i int, t uint8) { s.coordinates.SetResType(i, t) }

//SetAtomType assigns the type of atom i.
func (s *System) SetAtomType(i int, t uint8) { s.coordinates.SetAtomType(i, t) }

//Cutoff provides the interaction cutoff radius of the neighbor list.
func (s *System) Cutoff() float64 { return s.nbList.Cutoff() }

//SetCutoff modifies the interaction cutoff radius of the neighbor list.
func (s *System) SetCutoff(d0 float64) { s.nbList.SetCutoff(d0) }

//BufferWidth provides the buffer zone thickness of the neighbor list.
func (s *System) BufferWidth() float64 { return s.nbList.BufferWidth() }

//SetBufferWidth modifies the buffer zone thickness of the neighbor list.
func (s *System) SetBufferWidth(width float64) { s.nbList.SetBufferWidth(width) }

//SetRules replaces the exclusion rules of the neighbor list and rebuilds
//it from scratch.
func (s *System) SetRules(rules NbListRules) {
	s.nbList.SetRules(rules)
	s.nbList.UpdateAll(s.coordinates)
}

//Size returns the current number of atoms of this system.
func (s *System) Size() int { return s.coordinates.Size() }

//CopyFrom copies the position of atom i from another system without
//wrapping, then refreshes the neighborhood of the atom. Both systems must
//share the same simulation box geometry.
func (s *System) CopyFrom(i int, rhs *System) {
	s.coordinates.CopyFrom(i, rhs.coordinates)
	s.nbList.Update(s.coordinates, i)
}

//SetSize changes the number of atoms of this system.
func (s *System) SetSize(newSize int) { s.coordinates.SetSize(newSize) }

//Capacity returns the maximum number of atoms this system can hold.
func (s *System) Capacity() int { return s.coordinates.Capacity() }

//Clone returns a deep copy of this system, neighbor list included. Growth
//samplers use it to pause a partially built chain and resume it later.
func (s *System) Clone() *System {
	return &System{
		coordinates: s.coordinates.Clone(),
		nbList:      s.nbList.Clone(),
	}
}
