/*
 * rototranslation.go, part of bioshell.
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
	"gonum.org/v1/gonum/spatial/r3"
)

//Rototranslation rotates points about an axis that does not need to pass
//through the origin of the coordinate system. Points are shifted so the
//axis origin lands at zero, rotated and shifted back.
type Rototranslation struct {
	origin  r3.Vec
	forward r3.Rotation
	inverse r3.Rotation
}

//AroundAxis creates a rotation by angleRad about the axis that starts at
//start and passes through end. The two points must not coincide.
func AroundAxis(start, end *Vec3, angleRad float64) *Rototranslation {
	axis := r3.Unit(r3.Sub(end.R3(), start.R3()))
	return &Rototranslation{
		origin:  start.R3(),
		forward: r3.NewRotation(angleRad, axis),
		inverse: r3.NewRotation(-angleRad, axis),
	}
}

//Apply rotates v in place.
func (r *Rototranslation) Apply(v *Vec3) {
	rotated := r3.Add(r.forward.Rotate(r3.Sub(v.R3(), r.origin)), r.origin)
	v.Set3(rotated.X, rotated.Y, rotated.Z)
}

//ApplyInverse undoes Apply on v in place.
func (r *Rototranslation) ApplyInverse(v *Vec3) {
	rotated := r3.Add(r.inverse.Rotate(r3.Sub(v.R3(), r.origin)), r.origin)
	v.Set3(rotated.X, rotated.Y, rotated.Z)
}

//ApplyCopy returns a rotated copy of v.
func (r *Rototranslation) ApplyCopy(v *Vec3) *Vec3 {
	n := *v
	r.Apply(&n)
	return &n
}
