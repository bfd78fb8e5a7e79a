/*
 * geometry.go, part of bioshell.
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

package vec3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//PlanarAngle2 returns the angle between two vectors, in radians.
func PlanarAngle2(a, b *Vec3) float64 {
	va, vb := a.R3(), b.R3()
	cosine := r3.Dot(va, vb) / (r3.Norm(va) * r3.Norm(vb))
	//numerical noise may push the cosine just outside [-1, 1]
	cosine = math.Max(-1.0, math.Min(1.0, cosine))
	return math.Acos(cosine)
}

//PlanarAngle3 returns the a-b-c angle centered at b, in radians.
func PlanarAngle3(a, b, c *Vec3) float64 {
	ab := r3.Sub(a.R3(), b.R3())
	cb := r3.Sub(c.R3(), b.R3())
	return PlanarAngle2(FromR3(ab), FromR3(cb))
}

//DihedralAngle4 returns the a-b-c-d torsion angle in radians, with the
//sign convention of the Newman projection: looking down the b-c bond,
//a positive angle rotates d clockwise from a.
func DihedralAngle4(a, b, c, d *Vec3) float64 {
	bma := r3.Sub(b.R3(), a.R3())
	cmb := r3.Sub(c.R3(), b.R3())
	dmc := r3.Sub(d.R3(), c.R3())
	first := r3.Dot(r3.Scale(r3.Norm(cmb), bma), r3.Cross(cmb, dmc))
	second := r3.Dot(r3.Cross(bma, cmb), r3.Cross(cmb, dmc))
	return math.Atan2(first, second)
}
