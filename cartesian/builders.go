/*
 * builders.go, part of bioshell.
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

import "math"

//BoxWidth finds the length of a cubic simulation box that realizes an
//assumed density. Every atom of the system is taken as a ball of the same
//radius; density is the fraction of the box volume occupied by the balls.
func BoxWidth(atomRadius float64, nAtoms int, density float64) float64 {
	v := 4.0 / 3.0 * math.Pi * atomRadius * atomRadius * atomRadius
	return math.Pow(float64(nAtoms)*v/density, 1.0/3.0)
}

//CubicGridAtoms places all the atoms of a system on a cubic grid that fills
//the simulation box, a standard starting conformation for a fluid. The
//system size is set to its full capacity.
func CubicGridAtoms(system *Coordinates) {
	nAtoms := system.Capacity()
	system.SetSize(nAtoms)

	pointsOneSide := int(math.Ceil(math.Pow(float64(nAtoms), 1.0/3.0)))
	dw := system.BoxLen() / float64(pointsOneSide)
	cellMargin := dw / 2.0

	for i := 0; i < nAtoms; i++ {
		k := i % pointsOneSide
		l := (i / pointsOneSide) % pointsOneSide
		m := (i / (pointsOneSide * pointsOneSide)) % pointsOneSide
		system.Set(i,
			dw*float64(k)+cellMargin,
			dw*float64(l)+cellMargin,
			dw*float64(m)+cellMargin)
	}
}

//SquareGridAtoms places all the atoms of a system on a square grid in the
//z = 0 plane. The system size is set to its full capacity.
func SquareGridAtoms(system *Coordinates) {
	nAtoms := system.Capacity()
	system.SetSize(nAtoms)

	pointsOneSide := int(math.Ceil(math.Sqrt(float64(nAtoms))))
	dw := system.BoxLen() / float64(pointsOneSide)
	cellMargin := dw / 2.0

	for i := 0; i < nAtoms; i++ {
		k := i % pointsOneSide
		l := i / pointsOneSide
		system.Set(i,
			dw*float64(k)+cellMargin,
			dw*float64(l)+cellMargin,
			0.0)
	}
}
