/*
 * bonded.go, part of bioshell.
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

package ff

import (
	"math"

	"github.com/dgront/bioshell/cartesian"
)

//SimpleHarmonic restrains every bond of a polymer chain with a harmonic
//spring: k*(d-d0)^2 summed over pairs of consecutive atoms that belong to
//the same chain. Distances are measured to the closest periodic image.
type SimpleHarmonic struct {
	d0 float64
	k  float64
}

//NewSimpleHarmonic creates springs of equilibrium length d0 and force
//constant k.
func NewSimpleHarmonic(d0, k float64) *SimpleHarmonic {
	return &SimpleHarmonic{d0: d0, k: k}
}

//Energy returns the total energy of all springs of a system.
func (h *SimpleHarmonic) Energy(system *cartesian.System) float64 {
	coords := system.Coordinates()
	en := 0.0
	for i := 0; i < system.Size()-1; i++ {
		if coords.ChainId(i) != coords.ChainId(i+1) {
			continue
		}
		d := math.Sqrt(coords.ClosestDistanceSquare(i, i+1)) - h.d0
		en += d * d
	}
	return en * h.k
}

//EnergyByPos returns the energy of the two springs atom pos is attached to;
//terminal atoms have just one spring.
func (h *SimpleHarmonic) EnergyByPos(system *cartesian.System, pos int) float64 {
	coords := system.Coordinates()
	en := 0.0
	if pos > 0 && coords.ChainId(pos-1) == coords.ChainId(pos) {
		d := math.Sqrt(coords.ClosestDistanceSquare(pos-1, pos)) - h.d0
		en += d * d
	}
	if pos+1 < system.Size() && coords.ChainId(pos) == coords.ChainId(pos+1) {
		d := math.Sqrt(coords.ClosestDistanceSquare(pos, pos+1)) - h.d0
		en += d * d
	}
	return en * h.k
}

//Name returns the name of this energy function.
func (h *SimpleHarmonic) Name() string { return "SimpleHarmonic" }
