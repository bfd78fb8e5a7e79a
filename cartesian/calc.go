/*
 * calc.go, part of bioshell.
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

//CenterOfMass computes the center of mass of the atoms covered by a given
//span, all masses assumed equal.
//
//The calculation obeys periodic boundary conditions: every position enters
//as the image closest to the first atom of the span, so a chain that wraps
//around the box boundary still yields the center of its connected body. The
//returned point is not wrapped back into the box.
func CenterOfMass(system *Coordinates, chain Span) vec3.Vec3 {
	n := float64(chain.Len())
	first := system.Atom(chain.Start)
	x0, y0, z0 := first.X, first.Y, first.Z

	var cx, cy, cz float64
	for i := chain.Start; i < chain.End; i++ {
		cx += system.DeltaX(i, x0)
		cy += system.DeltaY(i, y0)
		cz += system.DeltaZ(i, z0)
	}
	return vec3.Vec3{X: cx/n + x0, Y: cy/n + y0, Z: cz/n + z0}
}

//REndSquared computes the square of the end-to-end distance of the chain
//covered by a given span, using the minimum image convention.
func REndSquared(system *Coordinates, chain Span) float64 {
	return system.ClosestDistanceSquare(chain.Start, chain.End-1)
}

//GyrationSquared computes the square of the radius of gyration of the chain
//covered by a given span, using the minimum image convention.
func GyrationSquared(system *Coordinates, chain Span) float64 {
	cm := CenterOfMass(system, chain)
	var s2 float64
	for i := chain.Start; i < chain.End; i++ {
		s2 += system.ClosestDistanceSquareToVec(i, &cm)
	}
	return s2 / float64(chain.Len())
}
