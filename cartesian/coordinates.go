/*
 * coordinates.go, part of bioshell.
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

//Package cartesian holds a simulated system in the Cartesian space: a fixed
//capacity container of atoms under cubic periodic boundary conditions, a
//Verlet-style neighbor list with pluggable exclusion rules and a System type
//that keeps the two consistent. The package also provides deterministic
//starting conformations (atoms on a grid), per-chain measures and plain PDB
//input/output for coarse-grained models.
package cartesian

import (
	"fmt"

	"github.com/dgront/bioshell/vec3"
)

//Span is a half-open range of atom indices: it covers every index i
//such that Start <= i < End. Chains of a system are stored as spans.
type Span struct {
	Start, End int
}

//Len returns the number of atoms covered by the span.
func (s Span) Len() int { return s.End - s.Start }

//Coordinates represents a system of atoms in a simulation.
//
//The container imposes simple cubic periodic boundary conditions: the Set(),
//SetVec() and Add() mutators wrap every coordinate back into [0, boxLen).
//The capacity is fixed at construction; the current size may grow up to the
//capacity, e.g. while a chain is being built atom by atom.
type Coordinates struct {
	boxLen      float64
	boxLenHalf  float64
	currentSize int
	atoms       []vec3.Vec3
	chains      []Span
}

//wrapToBox folds val back into the box by a single add or subtract of the
//box length. The input must stay within (-boxLen, 2*boxLen); the wrapped
//result is undefined otherwise.
func wrapToBox(val, boxLen float64) float64 {
	if val > boxLen {
		return val - boxLen
	}
	if val < 0.0 {
		return boxLen + val
	}
	return val
}

//closestImage returns the shortest difference c1-c2 under periodic boundary
//conditions. Both inputs must already be wrapped into the box.
func closestImage(c1, c2, boxLen, boxLenHalf float64) float64 {
	d := c1 - c2
	if d > 0.0 {
		if d > boxLenHalf {
			d -= boxLen
		}
	} else if d < -boxLenHalf {
		d += boxLen
	}
	return d
}

//NewCoordinates creates a system that can hold up to n atoms. All the
//positions are initialized to zero and the current size is zero; the box
//length is set to a permissive default of 100000.0 so that a freshly made
//system imposes no periodicity in practice. Initially all the atoms belong
//to a single chain.
func NewCoordinates(n int) *Coordinates {
	l := 100000.0
	return &Coordinates{
		boxLen:      l,
		boxLenHalf:  l / 2.0,
		currentSize: 0,
		atoms:       make([]vec3.Vec3, n),
		chains:      []Span{{0, n}},
	}
}

//BoxLen returns the length of the cubic simulation box.
func (c *Coordinates) BoxLen() float64 { return c.boxLen }

//SetBoxLen changes the length of the cubic simulation box. Atoms are not
//re-wrapped; the caller must rescale or reset them when needed.
func (c *Coordinates) SetBoxLen(newBoxLen float64) {
	c.boxLen = newBoxLen
	c.boxLenHalf = newBoxLen / 2.0
}

//CountChains returns the number of chains of this system.
func (c *Coordinates) CountChains() int { return len(c.chains) }

//ChainRange provides the half-open range of atoms that belong to a given chain.
func (c *Coordinates) ChainRange(idx int) Span { return c.chains[idx] }

//Atom provides direct access to the i-th atom of this system. Mutating the
//position through the returned pointer bypasses periodic wrapping; use Set()
//or Add() unless that is what you want.
func (c *Coordinates) Atom(i int) *vec3.Vec3 { return &c.atoms[i] }

//DistanceSquare calculates the square of the true distance between atoms
//i and j, ignoring periodicity. Use it only when the caller knows both
//atoms sit within one box image.
func (c *Coordinates) DistanceSquare(i, j int) float64 {
	d := c.atoms[i].X - c.atoms[j].X
	d2 := d * d
	d = c.atoms[i].Y - c.atoms[j].Y
	d2 += d * d
	d = c.atoms[i].Z - c.atoms[j].Z
	return d2 + d*d
}

//ClosestDistanceSquare calculates the square of the shortest distance
//between atom i and the closest periodic image of atom j.
func (c *Coordinates) ClosestDistanceSquare(i, j int) float64 {
	d := closestImage(c.atoms[i].X, c.atoms[j].X, c.boxLen, c.boxLenHalf)
	d2 := d * d
	d = closestImage(c.atoms[i].Y, c.atoms[j].Y, c.boxLen, c.boxLenHalf)
	d2 += d * d
	d = closestImage(c.atoms[i].Z, c.atoms[j].Z, c.boxLen, c.boxLenHalf)
	return d2 + d*d
}

//ClosestDistanceSquareToVec calculates the square of the shortest distance
//between atom i and the closest periodic image of a given point.
func (c *Coordinates) ClosestDistanceSquareToVec(i int, v *vec3.Vec3) float64 {
	d := closestImage(c.atoms[i].X, v.X, c.boxLen, c.boxLenHalf)
	d2 := d * d
	d = closestImage(c.atoms[i].Y, v.Y, c.boxLen, c.boxLenHalf)
	d2 += d * d
	d = closestImage(c.atoms[i].Z, v.Z, c.boxLen, c.boxLenHalf)
	return d2 + d*d
}

//CloneClosestImage returns the periodic image of atom theAtom that lies the
//closest to atom refAtom. The returned position is not necessarily inside
//the canonical box; the tags are copied from theAtom.
func (c *Coordinates) CloneClosestImage(refAtom, theAtom int) vec3.Vec3 {
	out := c.atoms[theAtom]
	out.X = c.atoms[refAtom].X + closestImage(c.atoms[theAtom].X, c.atoms[refAtom].X, c.boxLen, c.boxLenHalf)
	out.Y = c.atoms[refAtom].Y + closestImage(c.atoms[theAtom].Y, c.atoms[refAtom].Y, c.boxLen, c.boxLenHalf)
	out.Z = c.atoms[refAtom].Z + closestImage(c.atoms[theAtom].Z, c.atoms[refAtom].Z, c.boxLen, c.boxLenHalf)
	return out
}

//DeltaX calculates the difference in the x coordinate between the i-th atom
//and a given x value, obeying periodic boundary conditions.
func (c *Coordinates) DeltaX(i int, x float64) float64 {
	return closestImage(c.atoms[i].X, x, c.boxLen, c.boxLenHalf)
}

//DeltaY calculates the difference in the y coordinate between the i-th atom
//and a given y value, obeying periodic boundary conditions.
func (c *Coordinates) DeltaY(i int, y float64) float64 {
	return closestImage(c.atoms[i].Y, y, c.boxLen, c.boxLenHalf)
}

//DeltaZ calculates the difference in the z coordinate between the i-th atom
//and a given z value, obeying periodic boundary conditions.
func (c *Coordinates) DeltaZ(i int, z float64) float64 {
	return closestImage(c.atoms[i].Z, z, c.boxLen, c.boxLenHalf)
}

//ChainId provides the chain index of the i-th atom of this system.
func (c *Coordinates) ChainId(i int) uint16 { return c.atoms[i].ChainId }

//ResType provides the residue type of the i-th atom of this system.
func (c *Coordinates) ResType(i int) uint8 { return c.atoms[i].ResType }

//AtomType provides the type of the i-th atom of this system.
func (c *Coordinates) AtomType(i int) uint8 { return c.atoms[i].AtomType }

//SetResType assigns the residue type of atom i.
func (c *Coordinates) SetResType(i int, t uint8) { c.atoms[i].ResType = t }

//SetAtomType assigns the type of atom i.
func (c *Coordinates) SetAtomType(i int, t uint8) { c.atoms[i].AtomType = t }

//SetChains assigns each atom of this system to a chain.
//
//The given spans atomically replace the chain partition of the system and the
//ChainId tag of every atom is rewritten to match; the k-th span becomes chain
//k. The spans must be contiguous, start at atom zero and the last one must
//end exactly at the current size; SetChains panics otherwise since a bad
//partition would silently corrupt every chain-wise computation downstream.
func (c *Coordinates) SetChains(chainRanges []Span) {
	if len(chainRanges) == 0 {
		panic("cartesian: empty chain partition")
	}
	if chainRanges[len(chainRanges)-1].End != c.currentSize {
		panic(fmt.Sprintf("cartesian: chain ranges do not match the size of the coordinates: %d vs %d",
			chainRanges[len(chainRanges)-1].End, c.currentSize))
	}
	next := 0
	for _, r := range chainRanges {
		if r.Start != next || r.End < r.Start {
			panic(fmt.Sprintf("cartesian: chain ranges do not form a partition at atom %d", next))
		}
		next = r.End
	}
	var id uint16
	for _, r := range chainRanges {
		for i := r.Start; i < r.End; i++ {
			c.atoms[i].ChainId = id
		}
		id++
	}
	c.chains = append(c.chains[:0], chainRanges...)
}

//X provides the x coordinate of the i-th atom of this system.
func (c *Coordinates) X(i int) float64 { return c.atoms[i].X }

//Y provides the y coordinate of the i-th atom of this system.
func (c *Coordinates) Y(i int) float64 { return c.atoms[i].Y }

//Z provides the z coordinate of the i-th atom of this system.
func (c *Coordinates) Z(i int) float64 { return c.atoms[i].Z }

//SetX assigns the x coordinate of atom i, wrapped into the box.
func (c *Coordinates) SetX(i int, x float64) { c.atoms[i].X = wrapToBox(x, c.boxLen) }

//SetY assigns the y coordinate of atom i, wrapped into the box.
func (c *Coordinates) SetY(i int, y float64) { c.atoms[i].Y = wrapToBox(y, c.boxLen) }

//SetZ assigns the z coordinate of atom i, wrapped into the box.
func (c *Coordinates) SetZ(i int, z float64) { c.atoms[i].Z = wrapToBox(z, c.boxLen) }

//Set assigns the position of atom i. Each coordinate is wrapped back into
//[0, boxLen) by a single add or subtract of the box length, so the input
//must stay within (-boxLen, 2*boxLen).
func (c *Coordinates) Set(i int, x, y, z float64) {
	c.atoms[i].X = wrapToBox(x, c.boxLen)
	c.atoms[i].Y = wrapToBox(y, c.boxLen)
	c.atoms[i].Z = wrapToBox(z, c.boxLen)
}

//SetVec assigns the position of atom i from a vector, wrapping as Set() does.
//Tags carried by the vector are ignored.
func (c *Coordinates) SetVec(i int, v *vec3.Vec3) {
	c.Set(i, v.X, v.Y, v.Z)
}

//Add translates atom i by a given vector; the result is wrapped as in Set().
func (c *Coordinates) Add(i int, x, y, z float64) {
	c.atoms[i].X = wrapToBox(c.atoms[i].X+x, c.boxLen)
	c.atoms[i].Y = wrapToBox(c.atoms[i].Y+y, c.boxLen)
	c.atoms[i].Z = wrapToBox(c.atoms[i].Z+z, c.boxLen)
}

//CopyFromVec copies the position of the i-th atom from a given vector.
//
//Unlike Set(), this method does not apply periodic boundary conditions: it
//assumes the vector is already placed correctly within the box of this system.
func (c *Coordinates) CopyFromVec(i int, rhs *vec3.Vec3) {
	c.atoms[i].X = rhs.X
	c.atoms[i].Y = rhs.Y
	c.atoms[i].Z = rhs.Z
}

//Size returns the current number of atoms of this system.
func (c *Coordinates) Size() int { return c.currentSize }

//CopyFrom copies the position of the i-th atom from another system.
//
//Unlike Set(), this method does not apply periodic boundary conditions: it
//assumes the two systems have exactly the same simulation box geometry.
func (c *Coordinates) CopyFrom(i int, rhs *Coordinates) {
	c.atoms[i].X = rhs.atoms[i].X
	c.atoms[i].Y = rhs.atoms[i].Y
	c.atoms[i].Z = rhs.atoms[i].Z
}

//SetSize changes the number of atoms of this system; the new size must not
//exceed the capacity. Atom data beyond the new size stays allocated.
func (c *Coordinates) SetSize(newSize int) { c.currentSize = newSize }

//Capacity returns the maximum number of atoms this system can hold.
func (c *Coordinates) Capacity() int { return len(c.atoms) }

//Clone returns a deep copy of this system.
func (c *Coordinates) Clone() *Coordinates {
	out := &Coordinates{
		boxLen:      c.boxLen,
		boxLenHalf:  c.boxLenHalf,
		currentSize: c.currentSize,
		atoms:       make([]vec3.Vec3, len(c.atoms)),
		chains:      make([]Span, len(c.chains)),
	}
	copy(out.atoms, c.atoms)
	copy(out.chains, c.chains)
	return out
}
