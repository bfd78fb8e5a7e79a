/*
 * terminal.go, part of bioshell.
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

package mc

import (
	"math/rand"

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/ff"
	"github.com/dgront/bioshell/vec3"
)

//TerminalMove rotates a few atoms at a randomly picked end of a chain about
//the axis defined by the two innermost atoms of the rotated fragment. Any
//rotation and its inverse are drawn with equal probability, which keeps the
//proposal symmetric.
type TerminalMove struct {
	fragSize int
	maxAngle float64
	succRate AcceptanceStatistics
}

//NewTerminalMove creates the mover; maxAngle is the rotation amplitude in
//radians. The rotated fragment is 5 atoms long.
func NewTerminalMove(maxAngle float64) *TerminalMove {
	return &TerminalMove{maxAngle: maxAngle, fragSize: 5}
}

//Perturb rotates one of the termini by a random angle and applies the
//acceptance criterion to the total energy change. A fragment that would
//cross a chain boundary is rejected outright; so is a fragment that does
//not fit in the system.
func (m *TerminalMove) Perturb(system *cartesian.System, energy ff.Energy, acc AcceptanceCriterion, rng *rand.Rand) (cartesian.Span, bool) {
	size := system.Size()
	if size < m.fragSize+1 {
		m.succRate.NFailed++
		return cartesian.Span{}, false
	}

	coords := system.Coordinates()
	var iStart, iEnd, iAxisA, iAxisB int
	if rng.Intn(2) == 0 {
		iStart, iEnd = 0, m.fragSize
		iAxisA, iAxisB = iEnd, iEnd-1
	} else {
		iStart, iEnd = size-m.fragSize, size
		iAxisA, iAxisB = iStart, iStart+1
	}
	if coords.ChainId(iStart) != coords.ChainId(iEnd-1) || coords.ChainId(iAxisA) != coords.ChainId(iStart) {
		m.succRate.NFailed++
		return cartesian.Span{}, false
	}

	angle := (rng.Float64()*2.0 - 1.0) * m.maxAngle
	axisStart := *coords.Atom(iAxisA)
	//the periodic image of the second axis atom closest to the first one
	axisEnd := coords.CloneClosestImage(iAxisA, iAxisB)
	rt := vec3.AroundAxis(&axisStart, &axisEnd, angle)

	enBefore := energy.Energy(system)
	for i := iStart; i < iEnd; i++ {
		tmp := *coords.Atom(i)
		rt.Apply(&tmp)
		system.Set(i, tmp.X, tmp.Y, tmp.Z)
	}
	enAfter := energy.Energy(system)

	if acc.Check(enBefore, enAfter) {
		for i := iStart; i < iEnd; i++ {
			system.UpdateNbl(i)
		}
		m.succRate.NSucc++
		return cartesian.Span{Start: iStart, End: iEnd}, true
	}
	m.succRate.NFailed++
	for i := iStart; i < iEnd; i++ {
		tmp := *coords.Atom(i)
		rt.ApplyInverse(&tmp)
		system.Set(i, tmp.X, tmp.Y, tmp.Z)
	}
	return cartesian.Span{}, false
}

//Statistics returns a snapshot of the acceptance counters.
func (m *TerminalMove) Statistics() AcceptanceStatistics { return m.succRate }

//MaxRange returns the rotation amplitude in radians.
func (m *TerminalMove) MaxRange() float64 { return m.maxAngle }

//SetMaxRange sets the rotation amplitude in radians.
func (m *TerminalMove) SetMaxRange(newVal float64) { m.maxAngle = newVal }
