/*
 * superposition.go, part of bioshell.
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

//Package calc provides rigid-body comparison of conformations: the Kabsch
//optimal rotation between two sets of points and the coordinate RMSD after
//such a superposition. Both point sets must list corresponding atoms in the
//same order.
package calc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dgront/bioshell/vec3"
)

//Centroid returns the geometric center of a set of points.
func Centroid(points []vec3.Vec3) vec3.Vec3 {
	var c vec3.Vec3
	for i := range points {
		c.X += points[i].X
		c.Y += points[i].Y
		c.Z += points[i].Z
	}
	n := float64(len(points))
	c.X /= n
	c.Y /= n
	c.Z /= n
	return c
}

//CovarianceMatrix computes the 3x3 covariance between two centered point
//sets: C = sum over atoms of (mobile_i - cm) (reference_i - cr)^T. This is
//the matrix whose singular vectors define the Kabsch rotation.
func CovarianceMatrix(mobile, reference []vec3.Vec3) *mat.Dense {
	cm := Centroid(mobile)
	cr := Centroid(reference)
	c := mat.NewDense(3, 3, nil)
	for i := range mobile {
		p := [3]float64{mobile[i].X - cm.X, mobile[i].Y - cm.Y, mobile[i].Z - cm.Z}
		q := [3]float64{reference[i].X - cr.X, reference[i].Y - cr.Y, reference[i].Z - cr.Z}
		for r := 0; r < 3; r++ {
			for s := 0; s < 3; s++ {
				c.Set(r, s, c.At(r, s)+p[r]*q[s])
			}
		}
	}
	return c
}

//OptimalRotation returns the 3x3 rotation matrix that, applied to the
//centered mobile set, best superimposes it onto the centered reference set
//in the least-squares sense (the Kabsch algorithm). When the covariance
//matrix is degenerate to a reflection, the last singular direction is
//flipped so a proper rotation is always returned. The two sets must be of
//equal, nonzero length.
func OptimalRotation(mobile, reference []vec3.Vec3) (*mat.Dense, error) {
	if len(mobile) != len(reference) {
		return nil, fmt.Errorf("calc: superposed sets differ in size: %d vs %d", len(mobile), len(reference))
	}
	if len(mobile) == 0 {
		return nil, fmt.Errorf("calc: can't superpose empty point sets")
	}

	c := CovarianceMatrix(mobile, reference)
	var svd mat.SVD
	if ok := svd.Factorize(c, mat.SVDFull); !ok {
		return nil, fmt.Errorf("calc: SVD of the covariance matrix failed")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// R = V D U^T with D = diag(1, 1, sign(det(V U^T))) guards against
	// turning a specular image into a rotation.
	rot := mat.NewDense(3, 3, nil)
	rot.Mul(&v, u.T())
	if mat.Det(rot) < 0 {
		for r := 0; r < 3; r++ {
			v.Set(r, 2, -v.At(r, 2))
		}
		rot.Mul(&v, u.T())
	}
	return rot, nil
}

//rotated applies a rotation matrix to a single centered point.
func rotated(rot *mat.Dense, x, y, z float64) (float64, float64, float64) {
	rx := rot.At(0, 0)*x + rot.At(0, 1)*y + rot.At(0, 2)*z
	ry := rot.At(1, 0)*x + rot.At(1, 1)*y + rot.At(1, 2)*z
	rz := rot.At(2, 0)*x + rot.At(2, 1)*y + rot.At(2, 2)*z
	return rx, ry, rz
}

//Superimpose rotates and translates the mobile set in place so it is
//optimally superimposed on the reference set, and returns the resulting
//coordinate RMSD. Tags carried by the mobile vectors are preserved.
func Superimpose(mobile, reference []vec3.Vec3) (float64, error) {
	rot, err := OptimalRotation(mobile, reference)
	if err != nil {
		return 0.0, err
	}
	cm := Centroid(mobile)
	cr := Centroid(reference)
	sum := 0.0
	for i := range mobile {
		x, y, z := rotated(rot, mobile[i].X-cm.X, mobile[i].Y-cm.Y, mobile[i].Z-cm.Z)
		mobile[i].X = x + cr.X
		mobile[i].Y = y + cr.Y
		mobile[i].Z = z + cr.Z
		dx := mobile[i].X - reference[i].X
		dy := mobile[i].Y - reference[i].Y
		dz := mobile[i].Z - reference[i].Z
		sum += dx*dx + dy*dy + dz*dz
	}
	return math.Sqrt(sum / float64(len(mobile))), nil
}

//Crmsd returns the coordinate RMSD between two point sets after an optimal
//superposition; neither input is modified.
func Crmsd(mobile, reference []vec3.Vec3) (float64, error) {
	work := make([]vec3.Vec3, len(mobile))
	copy(work, mobile)
	return Superimpose(work, reference)
}

//Rmsd returns the plain coordinate RMSD between two equally sized point
//sets, without any superposition.
func Rmsd(a, b []vec3.Vec3) (float64, error) {
	if len(a) != len(b) {
		return 0.0, fmt.Errorf("calc: compared sets differ in size: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0.0, fmt.Errorf("calc: can't compare empty point sets")
	}
	sum := 0.0
	for i := range a {
		sum += a[i].DistanceSquareTo(&b[i])
	}
	return math.Sqrt(sum / float64(len(a))), nil
}
