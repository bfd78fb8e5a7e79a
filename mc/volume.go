/*
 * volume.go, part of bioshell.
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

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/ff"
)

//PVToKelvins converts a pressure * volume product given in Pa * A^3 into
//temperature units: 10^-30 divided by the Boltzmann constant.
const PVToKelvins = 1.0e-30 / 1.380649e-23

//ChangeVolume rescales the simulation box together with all atom positions,
//which turns a canonical simulation into an isothermal-isobaric (NPT) one.
//Pressure is given in pascals, temperature in kelvins.
type ChangeVolume struct {
	Pressure    float64
	Temperature float64
	maxStep     float64
	succRate    AcceptanceStatistics
}

//NewChangeVolume creates the mover for a given pressure and temperature.
//The default amplitude of a ln(V) step is 0.01.
func NewChangeVolume(pressure, temperature float64) *ChangeVolume {
	return &ChangeVolume{Pressure: pressure, Temperature: temperature, maxStep: 0.01}
}

//Perturb draws a random step in ln(V), rescales the box and accepts the new
//volume with the probability exp(-omega/T) where
//
//	omega = deltaE + p*(V'-V)*PVToKelvins - (N+1)*T*ln(V'/V)
//
//The mover draws its own acceptance coin; the criterion argument is ignored.
//The neighbor list is not refreshed: volume steps this small stay well
//within the list buffer.
func (m *ChangeVolume) Perturb(system *cartesian.System, energy ff.Energy, _ AcceptanceCriterion, rng *rand.Rand) (cartesian.Span, bool) {
	enBefore := energy.Energy(system)
	v0 := system.Volume()
	oldLen := system.BoxLen()
	lnV := math.Log(v0) + (rng.Float64()*2.0-1.0)*m.maxStep
	newV := math.Exp(lnV)

	system.SetBoxLen(math.Cbrt(newV))
	enAfter := energy.Energy(system)

	omega := (enAfter - enBefore) + m.Pressure*(newV-v0)*PVToKelvins -
		float64(system.Size()+1)*m.Temperature*math.Log(newV/v0)

	if rng.Float64() < math.Exp(-omega/m.Temperature) {
		m.succRate.NSucc++
		return cartesian.Span{Start: 0, End: system.Size()}, true
	}
	m.succRate.NFailed++
	system.SetBoxLen(oldLen)
	return cartesian.Span{}, false
}

//Statistics returns a snapshot of the acceptance counters.
func (m *ChangeVolume) Statistics() AcceptanceStatistics { return m.succRate }

//MaxRange returns the amplitude of a single step in ln(V).
func (m *ChangeVolume) MaxRange() float64 { return m.maxStep }

//SetMaxRange sets the amplitude of a single step in ln(V).
func (m *ChangeVolume) SetMaxRange(newVal float64) { m.maxStep = newVal }
