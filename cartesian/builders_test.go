/*
 * builders_test.go, part of bioshell.
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

import (
	"math"
	"testing"
)

func TestBoxWidth(Te *testing.T) {
	radius, nAtoms, density := 1.7, 216, 0.4
	l := BoxWidth(radius, nAtoms, density)

	v := 4.0 / 3.0 * math.Pi * radius * radius * radius
	got := float64(nAtoms) * v / (l * l * l)
	if !almostEqual(got, density, 1e-12) {
		Te.Errorf("box of side %f realizes density %f, want %f", l, got, density)
	}
}

func TestCubicGridAtoms(Te *testing.T) {
	coords := NewCoordinates(8)
	coords.SetBoxLen(10.0)
	CubicGridAtoms(coords)

	if coords.Size() != 8 {
		Te.Fatalf("grid builder set size %d, want the full capacity 8", coords.Size())
	}
	want := [8][3]float64{
		{2.5, 2.5, 2.5}, {7.5, 2.5, 2.5}, {2.5, 7.5, 2.5}, {7.5, 7.5, 2.5},
		{2.5, 2.5, 7.5}, {7.5, 2.5, 7.5}, {2.5, 7.5, 7.5}, {7.5, 7.5, 7.5},
	}
	for i := 0; i < 8; i++ {
		if !almostEqual(coords.X(i), want[i][0], 1e-12) ||
			!almostEqual(coords.Y(i), want[i][1], 1e-12) ||
			!almostEqual(coords.Z(i), want[i][2], 1e-12) {
			Te.Errorf("atom %d sits at (%f %f %f), want %v", i, coords.X(i), coords.Y(i), coords.Z(i), want[i])
		}
	}

	//no two atoms closer than the grid spacing
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if coords.ClosestDistanceSquare(i, j) < 25.0-1e-9 {
				Te.Errorf("grid atoms %d and %d are closer than the cell width", i, j)
			}
		}
	}
}

func TestSquareGridAtoms(Te *testing.T) {
	coords := NewCoordinates(4)
	coords.SetBoxLen(8.0)
	SquareGridAtoms(coords)

	want := [4][3]float64{{2, 2, 0}, {6, 2, 0}, {2, 6, 0}, {6, 6, 0}}
	for i := 0; i < 4; i++ {
		if !almostEqual(coords.X(i), want[i][0], 1e-12) ||
			!almostEqual(coords.Y(i), want[i][1], 1e-12) ||
			coords.Z(i) != 0.0 {
			Te.Errorf("atom %d sits at (%f %f %f), want %v", i, coords.X(i), coords.Y(i), coords.Z(i), want[i])
		}
	}
}

func TestChainMeasuresAcrossBoundary(Te *testing.T) {
	coords := NewCoordinates(3)
	coords.SetSize(3)
	coords.SetBoxLen(10.0)
	//a chain crossing the box boundary: images at x = 9, 10, 11
	coords.Set(0, 9.0, 5.0, 5.0)
	coords.Set(1, 0.0, 5.0, 5.0)
	coords.Set(2, 1.0, 5.0, 5.0)
	chain := Span{0, 3}

	cm := CenterOfMass(coords, chain)
	if !almostEqual(cm.X, 10.0, 1e-12) || !almostEqual(cm.Y, 5.0, 1e-12) || !almostEqual(cm.Z, 5.0, 1e-12) {
		Te.Errorf("center of mass is (%f %f %f), want (10 5 5)", cm.X, cm.Y, cm.Z)
	}

	if r2 := REndSquared(coords, chain); !almostEqual(r2, 4.0, 1e-12) {
		Te.Errorf("end-to-end distance square is %f, want 4", r2)
	}

	if s2 := GyrationSquared(coords, chain); !almostEqual(s2, 2.0/3.0, 1e-12) {
		Te.Errorf("gyration radius square is %f, want %f", s2, 2.0/3.0)
	}
}

func TestMeasuresPerChain(Te *testing.T) {
	coords := NewCoordinates(6)
	coords.SetSize(6)
	coords.SetBoxLen(100.0)
	for i := 0; i < 3; i++ {
		coords.Set(i, float64(i)*2.0, 0.0, 0.0)
		coords.Set(i+3, float64(i), 50.0, 0.0)
	}
	coords.SetChains([]Span{{0, 3}, {3, 6}})

	if r2 := REndSquared(coords, coords.ChainRange(0)); !almostEqual(r2, 16.0, 1e-12) {
		Te.Errorf("chain 0 end-to-end square is %f, want 16", r2)
	}
	if r2 := REndSquared(coords, coords.ChainRange(1)); !almostEqual(r2, 4.0, 1e-12) {
		Te.Errorf("chain 1 end-to-end square is %f, want 4", r2)
	}
}
