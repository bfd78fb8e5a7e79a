/*
 * nerf.go, part of bioshell.
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

	"github.com/dgront/bioshell/vec3"
)

//CreateStub places the first three atoms of a molecule so that the
//following ones may be restored within their reference frame. Atom b
//lands on the X axis of atom a, at the rAB distance; atom c is placed in
//the XY plane at the rBC distance from b, closing the a-b-c planar angle
//of planarABC radians.
func CreateStub(a *vec3.Vec3, rAB, rBC, planarABC float64, b, c *vec3.Vec3) {
	b.Set3(a.X+rAB, a.Y, a.Z)
	angle := math.Pi - planarABC
	c.Set3(rBC*math.Cos(angle)+b.X, rBC*math.Sin(angle)+b.Y, b.Z)
}

//RestoreAtom computes the Cartesian position of an atom d from its
//internal coordinates: the c-d bond length r, the b-c-d planar angle and
//the a-b-c-d dihedral angle, both angles in radians. The reference atoms
//a, b and c must have been restored before; the result is stored in
//output.
func RestoreAtom(a, b, c *vec3.Vec3, r, planar, dihedral float64, output *vec3.Vec3) {
	bc := vec3.SubS(c, b)
	bc.Normalize()
	n := vec3.SubS(b, a)
	n.Normalize()
	n = vec3.Cross(n, bc)
	n.Normalize()
	cross := vec3.Cross(n, bc)

	angle := math.Pi - planar
	lx := r * math.Cos(angle)
	ly := r * math.Sin(angle) * math.Cos(dihedral)
	lz := r * math.Sin(angle) * math.Sin(dihedral)
	//the local position rotated to the laboratory frame spanned by the bc, cross and n versors
	output.Set3(bc.X*lx+cross.X*ly+n.X*lz, bc.Y*lx+cross.Y*ly+n.Y*lz, bc.Z*lx+cross.Z*ly+n.Z*lz)
	output.Add(c)
}

//RestoreLinearChain computes Cartesian coordinates of a linear chain
//given internal coordinates of its atoms: every i-th atom is restored
//from the positions of the (i-3), (i-2) and (i-1) atoms, the r[i] bond
//length, the planar[i] and the dihedral[i] angles given in radians.
//Coordinates are written to outputChain, whose first element provides
//the starting point of the chain; the stub of the first three atoms
//consumes r[1], r[2] and planar[2].
func RestoreLinearChain(r, planar, dihedral []float64, outputChain []vec3.Vec3) {
	checkChainSizes(r, planar, dihedral, outputChain)
	CreateStub(&outputChain[0], r[1], r[2], planar[2], &outputChain[1], &outputChain[2])
	for i := 3; i < len(r); i++ {
		RestoreAtom(&outputChain[i-3], &outputChain[i-2], &outputChain[i-1],
			r[i], planar[i], dihedral[i], &outputChain[i])
	}
}

//RestoreBranchedChain computes Cartesian coordinates of a molecule of
//any topology. The topology argument holds, for every atom, the indexes
//of its a, b and c reference atoms followed by the index of the restored
//atom itself; topology[2] names the three atoms of the starting stub.
//Atoms are restored in their storage order, so every atom may refer only
//to atoms of lower indexes.
func RestoreBranchedChain(r, planar, dihedral []float64, topology [][4]int, outputChain []vec3.Vec3) {
	checkChainSizes(r, planar, dihedral, outputChain)
	restoreStub(r, planar, topology, outputChain)
	var v vec3.Vec3
	for iAtom := 3; iAtom < len(outputChain); iAtom++ {
		ref := topology[iAtom]
		RestoreAtom(&outputChain[ref[0]], &outputChain[ref[1]], &outputChain[ref[2]],
			r[iAtom], planar[iAtom], dihedral[iAtom], &v)
		outputChain[ref[3]].Set(&v)
	}
}

//RestoreBranchedChainInOrder works as RestoreBranchedChain but restores
//atoms in a user-defined order, which allows an atom to be defined by a
//reference to an atom stored after it. The first three entries of
//restoringOrder are assumed to be the stub atoms and are skipped.
func RestoreBranchedChainInOrder(r, planar, dihedral []float64, topology [][4]int,
	restoringOrder []int, outputChain []vec3.Vec3) {

	checkChainSizes(r, planar, dihedral, outputChain)
	restoreStub(r, planar, topology, outputChain)
	var v vec3.Vec3
	for index := 3; index < len(outputChain); index++ {
		iAtom := restoringOrder[index]
		ref := topology[iAtom]
		RestoreAtom(&outputChain[ref[0]], &outputChain[ref[1]], &outputChain[ref[2]],
			r[iAtom], planar[iAtom], dihedral[iAtom], &v)
		outputChain[ref[3]].Set(&v)
	}
}

//restoreStub rebuilds the three stub atoms named by topology[2].
func restoreStub(r, planar []float64, topology [][4]int, outputChain []vec3.Vec3) {
	var b, c vec3.Vec3
	k, l, m := topology[2][1], topology[2][2], topology[2][3]
	CreateStub(&outputChain[k], r[1], r[2], planar[2], &b, &c)
	outputChain[l].Set(&b)
	outputChain[m].Set(&c)
}

func checkChainSizes(r, planar, dihedral []float64, outputChain []vec3.Vec3) {
	if len(r) != len(planar) || len(r) != len(dihedral) || len(r) != len(outputChain) {
		panic(fmt.Sprintf("inconsistent sizes of r (%d), planar (%d), dihedral (%d) and the output chain (%d)",
			len(r), len(planar), len(dihedral), len(outputChain)))
	}
	if len(outputChain) < 3 {
		panic("at least three atoms are needed to form a reference frame stub")
	}
}
