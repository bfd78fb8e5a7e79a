/*
 * criterion.go, part of bioshell.
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
	"math"
	"math/rand"
)

//AcceptanceCriterion decides whether a move that changed the energy of a
//system from energyBefore to energyAfter should be accepted.
type AcceptanceCriterion interface {
	Check(energyBefore, energyAfter float64) bool
}

//MetropolisCriterion accepts a move with the probability
//min(1, exp(-deltaE/T)), which samples the canonical ensemble at the
//temperature T.
type MetropolisCriterion struct {
	temperature float64
	rng         *rand.Rand
}

//NewMetropolisCriterion creates the criterion for a given temperature. The
//random stream is shared with the sampler that owns the criterion so a
//seeded simulation stays reproducible.
func NewMetropolisCriterion(temperature float64, rng *rand.Rand) *MetropolisCriterion {
	return &MetropolisCriterion{temperature: temperature, rng: rng}
}

//Temperature returns the temperature this criterion samples at.
func (m *MetropolisCriterion) Temperature() float64 { return m.temperature }

//SetTemperature changes the temperature this criterion samples at.
func (m *MetropolisCriterion) SetTemperature(t float64) { m.temperature = t }

//Check accepts every move that lowers the energy; a move uphill is accepted
//with the Boltzmann probability.
func (m *MetropolisCriterion) Check(energyBefore, energyAfter float64) bool {
	if energyAfter <= energyBefore {
		return true
	}
	return m.rng.Float64() < math.Exp((energyBefore-energyAfter)/m.temperature)
}
