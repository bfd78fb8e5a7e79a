/*
 * random.go, part of bioshell.
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
	"math/rand"
)

//RandomUnitVersor draws a vector uniformly distributed on the unit
//sphere. Three normal deviates normalized to unit length avoid any
//corner bias a cube-rejection scheme would need to handle.
func RandomUnitVersor(rng *rand.Rand) *Vec3 {
	v := Vec3{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
	v.Normalize()
	return &v
}

//RandomPointNearby draws a point uniformly on a sphere of the given
//radius centered at center.
func RandomPointNearby(rng *rand.Rand, center *Vec3, radius float64) *Vec3 {
	v := RandomUnitVersor(rng)
	v.Scale(radius)
	v.Add(center)
	return v
}
