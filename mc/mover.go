/*
 * mover.go, part of bioshell.
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
)

//Mover proposes a random perturbation of a conformation, scores it and
//either keeps it or rolls it back according to an acceptance criterion.
//
//A mover records the outcome of every attempt in its own acceptance
//counters. MaxRange is the amplitude of the proposals (a distance, an angle
//or a logarithmic volume step, depending on the mover); an adaptive
//protocol tunes it on the fly through SetMaxRange.
type Mover interface {
	//Perturb attempts a single move. The returned span covers the atoms
	//modified by an accepted move; ok is false when the move was rejected
	//and the system was restored.
	Perturb(system *cartesian.System, energy ff.Energy, acc AcceptanceCriterion, rng *rand.Rand) (moved cartesian.Span, ok bool)
	//Statistics returns a snapshot of the acceptance counters.
	Statistics() AcceptanceStatistics
	MaxRange() float64
	SetMaxRange(newVal float64)
}

//SingleAtomMove displaces one randomly selected atom by a random vector
//drawn uniformly from a cube of side 2*MaxRange().
type SingleAtomMove struct {
	maxStep  float64
	succRate AcceptanceStatistics
}

//NewSingleAtomMove creates the mover; maxRange caps every Cartesian
//component of the displacement.
func NewSingleAtomMove(maxRange float64) *SingleAtomMove {
	return &SingleAtomMove{maxStep: maxRange}
}

//Perturb shifts a random atom and applies the acceptance criterion to the
//energy change of that atom. The neighbor list is refreshed only when the
//move is accepted; a rejected move restores the stored position, which
//leaves the list untouched and valid.
func (m *SingleAtomMove) Perturb(system *cartesian.System, energy ff.Energy, acc AcceptanceCriterion, rng *rand.Rand) (cartesian.Span, bool) {
	iMoved := rng.Intn(system.Size())
	coords := system.Coordinates()
	oldX, oldY, oldZ := coords.X(iMoved), coords.Y(iMoved), coords.Z(iMoved)
	enBefore := energy.EnergyByPos(system, iMoved)

	system.Add(iMoved,
		(rng.Float64()*2.0-1.0)*m.maxStep,
		(rng.Float64()*2.0-1.0)*m.maxStep,
		(rng.Float64()*2.0-1.0)*m.maxStep)

	enAfter := energy.EnergyByPos(system, iMoved)
	if acc.Check(enBefore, enAfter) {
		system.UpdateNbl(iMoved)
		m.succRate.NSucc++
		return cartesian.Span{Start: iMoved, End: iMoved + 1}, true
	}
	m.succRate.NFailed++
	system.Set(iMoved, oldX, oldY, oldZ)
	return cartesian.Span{}, false
}

//Statistics returns a snapshot of the acceptance counters.
func (m *SingleAtomMove) Statistics() AcceptanceStatistics { return m.succRate }

//MaxRange returns the maximum displacement along each axis.
func (m *SingleAtomMove) MaxRange() float64 { return m.maxStep }

//SetMaxRange sets the maximum displacement along each axis.
func (m *SingleAtomMove) SetMaxRange(newVal float64) { m.maxStep = newVal }
