/*
 * crankshaft.go, part of bioshell.
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

//CrankshaftMove rotates a short fragment of a chain about the axis that
//connects the two atoms flanking the fragment. The flanking atoms and both
//chain ends stay put, so the move preserves all bond lengths.
type CrankshaftMove struct {
	fragSize int
	maxAngle float64
	succRate AcceptanceStatistics
}

//NewCrankshaftMove creates the mover; maxAngle is the rotation amplitude in
//radians. The rotated fragment is 5 atoms long.
func NewCrankshaftMove(maxAngle float64) *CrankshaftMove {
	return &CrankshaftMove{maxAngle: maxAngle, fragSize: 5}
}

//Perturb rotates a random fragment by a random angle and applies the
//acceptance criterion to the total energy change. A fragment that would
//cross a chain boundary is rejected outright; so is a fragment that does
//not fit in the system.
func (m *CrankshaftMove) Perturb(system *cartesian.System, energy ff.Energy, acc AcceptanceCriterion, rng *rand.Rand) (cartesian.Span, bool) {
	size := system.Size()
	if size < m.fragSize+2 {
		m.succRate.NFailed++
		return cartesian.Span{}, false
	}
	iStart := rng.Intn(size - m.fragSize - 1)
	iEnd := iStart + m.fragSize + 1

	coords := system.Coordinates()
	if coords.ChainId(iStart) != coords.ChainId(iEnd) {
		m.succRate.NFailed++
		return cartesian.Span{}, false
	}

	angle := (rng.Float64()*2.0 - 1.0) * m.maxAngle
	start := *coords.Atom(iStart)
	//the periodic image of the axis end closest to its start
	periodicEnd := coords.CloneClosestImage(iStart, iEnd)
	rt := vec3.AroundAxis(&start, &periodicEnd, angle)

	enBefore := energy.Energy(system)
	for i := iStart + 1; i < iEnd; i++ {
		tmp := *coords.Atom(i)
		rt.Apply(&tmp)
		system.Set(i, tmp.X, tmp.Y, tmp.Z)
	}
	enAfter := energy.Energy(system)

	if acc.Check(enBefore, enAfter) {
		for i := iStart + 1; i < iEnd; i++ {
			system.UpdateNbl(i)
		}
		m.succRate.NSucc++
		return cartesian.Span{Start: iStart + 1, End: iEnd}, true
	}
	m.succRate.NFailed++
	for i := iStart + 1; i < iEnd; i++ {
		tmp := *coords.Atom(i)
		rt.ApplyInverse(&tmp)
		system.Set(i, tmp.X, tmp.Y, tmp.Z)
	}
	return cartesian.Span{}, false
}

//Statistics returns a snapshot of the acceptance counters.
func (m *CrankshaftMove) Statistics() AcceptanceStatistics { return m.succRate }

//MaxRange returns the rotation amplitude in radians.
func (m *CrankshaftMove) MaxRange() float64 { return m.maxAngle }

//SetMaxRange sets the rotation amplitude in radians.
func (m *CrankshaftMove) SetMaxRange(newVal float64) { m.maxAngle = newVal }
