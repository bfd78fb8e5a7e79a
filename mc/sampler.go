/*
 * sampler.go, part of bioshell.
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

//Package mc implements Markov chain Monte Carlo sampling of Cartesian
//systems: the Metropolis criterion, movers that perturb a conformation
//(single-atom displacements, crankshaft and terminal rotations, volume
//changes), an isothermal sampler with an adaptive variant that tunes move
//amplitudes on the fly, chain-growth samplers (Rosenbluth and PERM) and
//observers that record a running simulation.
//
//Every source of randomness is an explicit *rand.Rand, so a simulation run
//with a fixed seed is reproducible.
package mc

import (
	"fmt"
	"time"

	"math/rand"

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/ff"
)

//Sampler is a Monte Carlo sampling scheme built around a set of movers.
//
//During a single sweep each mover attempts system.Size() perturbations, so
//on average every atom is touched once by every mover.
type Sampler interface {
	//MakeSweeps performs n Monte Carlo sweeps on a system.
	MakeSweeps(n int, system *cartesian.System, energy ff.Energy)
	//AddMover includes a mover in every subsequent sweep.
	AddMover(mover Mover)
	//Mover provides access to the i-th mover of this sampler.
	Mover(i int) Mover
	//CountMovers returns the number of movers added so far.
	CountMovers() int
}

//RunSimulation runs n_outer rounds of n_inner sweeps each. After every
//round it prints a progress line (round index, energy per atom, the recent
//acceptance rate of every mover and the wall time since the start) and
//triggers the observers.
func RunSimulation(sampler Sampler, nInner, nOuter int, system *cartesian.System, energy ff.Energy, observers *ObserversSet) {
	start := time.Now()
	recent := make([]AcceptanceStatistics, sampler.CountMovers())
	for i := 0; i < nOuter; i++ {
		sampler.MakeSweeps(nInner, system, energy)
		fmt.Printf("%6d %9.3f  ", i, energy.Energy(system)/float64(system.Size()))
		for iMover := 0; iMover < sampler.CountMovers(); iMover++ {
			stats := sampler.Mover(iMover).Statistics()
			fmt.Printf("%5.3f ", stats.RecentSuccessRate(recent[iMover]))
			recent[iMover] = stats
		}
		fmt.Printf(" %s\n", time.Since(start).Round(10*time.Millisecond))
		observers.Observe(system)
	}
}

//IsothermalMC samples the canonical ensemble at a constant temperature with
//the Metropolis criterion.
type IsothermalMC struct {
	acceptanceCrit *MetropolisCriterion
	movers         []Mover
	rng            *rand.Rand
}

//NewIsothermalMC creates a sampler for a given temperature. The random
//stream drives both the movers and the acceptance criterion.
func NewIsothermalMC(temperature float64, rng *rand.Rand) *IsothermalMC {
	return &IsothermalMC{acceptanceCrit: NewMetropolisCriterion(temperature, rng), rng: rng}
}

//Temperature returns the temperature of this simulation.
func (mc *IsothermalMC) Temperature() float64 { return mc.acceptanceCrit.Temperature() }

//MakeSweeps performs n sweeps; during each sweep every mover attempts
//system.Size() perturbations.
func (mc *IsothermalMC) MakeSweeps(n int, system *cartesian.System, energy ff.Energy) {
	for sweep := 0; sweep < n; sweep++ {
		for _, mover := range mc.movers {
			for k := 0; k < system.Size(); k++ {
				mover.Perturb(system, energy, mc.acceptanceCrit, mc.rng)
			}
		}
	}
}

//AddMover includes a mover in every subsequent sweep.
func (mc *IsothermalMC) AddMover(mover Mover) { mc.movers = append(mc.movers, mover) }

//Mover provides access to the i-th mover of this sampler.
func (mc *IsothermalMC) Mover(i int) Mover { return mc.movers[i] }

//CountMovers returns the number of movers added so far.
func (mc *IsothermalMC) CountMovers() int { return len(mc.movers) }
