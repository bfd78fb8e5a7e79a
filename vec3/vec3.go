/*
 * vec3.go, part of bioshell.
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

//Package vec3 provides a 3D vector type used throughout bioshell to hold
//atomic positions, together with basic geometry calculations on points in
//a Cartesian space: planar and dihedral angles, rotations about an
//arbitrary axis and random versors. The type carries also small integer
//tags (chain, residue type, atom type) so a plain slice of Vec3 can
//describe a full coarse-grained system without a parallel array of
//metadata.
package vec3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Vec3 is a point in 3D space. Besides the three coordinates it holds
//tags identifying the chain, the residue type and the atom type of the
//atom it describes; the tags travel with the position on copy.
type Vec3 struct {
	X, Y, Z  float64
	ResType  uint8
	AtomType uint8
	ChainId  uint16
}

//New returns a vector initialized with the given coordinates; tags are zeroed.
func New(x, y, z float64) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

//FromFloat returns a vector with all three coordinates set to value.
func FromFloat(value float64) *Vec3 {
	return &Vec3{X: value, Y: value, Z: value}
}

//FromR3 converts a gonum r3 vector; tags are zeroed.
func FromR3(v r3.Vec) *Vec3 {
	return &Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

//R3 returns the coordinates as a gonum r3 vector, dropping the tags.
func (v *Vec3) R3() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

//Set copies coordinates and tags from o.
func (v *Vec3) Set(o *Vec3) { *v = *o }

//Set3 assigns the three coordinates, leaving the tags untouched.
func (v *Vec3) Set3(x, y, z float64) {
	v.X = x
	v.Y = y
	v.Z = z
}

//Add accumulates o into v.
func (v *Vec3) Add(o *Vec3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

//Sub subtracts o from v.
func (v *Vec3) Sub(o *Vec3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

//Scale multiplies every coordinate by f.
func (v *Vec3) Scale(f float64) {
	v.X *= f
	v.Y *= f
	v.Z *= f
}

//Opposite flips the vector in place.
func (v *Vec3) Opposite() { v.Scale(-1.0) }

//Length returns the Euclidean norm of v.
func (v *Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

//LengthSquared returns the squared norm of v.
func (v *Vec3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

//Normalize scales v to unit length.
func (v *Vec3) Normalize() {
	l := v.Length()
	v.X /= l
	v.Y /= l
	v.Z /= l
}

//Normalized returns a unit-length copy of v.
func (v *Vec3) Normalized() *Vec3 {
	n := *v
	n.Normalize()
	return &n
}

//DistanceSquareTo returns the squared distance between v and p.
func (v *Vec3) DistanceSquareTo(p *Vec3) float64 {
	d := v.X - p.X
	d2 := d * d
	d = v.Y - p.Y
	d2 += d * d
	d = v.Z - p.Z
	return d2 + d*d
}

//DistanceTo returns the distance between v and p.
func (v *Vec3) DistanceTo(p *Vec3) float64 {
	return math.Sqrt(v.DistanceSquareTo(p))
}

//AddS returns the sum a+b as a new vector; tags are taken from a.
func AddS(a, b *Vec3) *Vec3 {
	s := *a
	s.Add(b)
	return &s
}

//SubS returns the difference a-b as a new vector; tags are taken from a.
func SubS(a, b *Vec3) *Vec3 {
	s := *a
	s.Sub(b)
	return &s
}

//Dot returns the inner product of a and b.
func Dot(a, b *Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

//Cross returns the cross product a x b as a new vector.
func Cross(a, b *Vec3) *Vec3 {
	return &Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

//String formats the three coordinates; tags are not printed.
func (v *Vec3) String() string {
	return fmt.Sprintf("[%8.3f %8.3f %8.3f]", v.X, v.Y, v.Z)
}
