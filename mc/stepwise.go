/*
 * stepwise.go, part of bioshell.
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
	"github.com/dgront/bioshell/vec3"
)

//StepwiseMover grows a system one atom at a time. Start resets the system
//to its smallest buildable state; every GrowByOne call appends one atom.
//Both return the statistical weight of the step: 1.0 for an unbiased step,
//the Rosenbluth weight for a biased one and 0.0 for a dead end that cannot
//be extended.
type StepwiseMover interface {
	Start(system *cartesian.System, energy ff.Energy, rng *rand.Rand) float64
	GrowByOne(system *cartesian.System, energy ff.Energy, rng *rand.Rand) float64
}

//StepwiseBuilder creates a complete conformation; the returned value is its
//statistical weight, 0.0 when the construction failed.
type StepwiseBuilder interface {
	Build(system *cartesian.System, energy ff.Energy) float64
}

//RandomChain grows a self-avoiding random walk: every new bead is placed at
//the bond length from the previous one in a random direction, re-drawn
//until its energy drops below EnergyCutoff. A bead that cannot be placed
//within NAttempts tries makes the chain a dead end.
type RandomChain struct {
	BondLength   float64
	EnergyCutoff float64
	NAttempts    int
	rng          *rand.Rand
}

//NewRandomChain creates a builder with the bond length of 3.8, the energy
//cutoff of 0.00001 and 100 placement attempts per bead.
func NewRandomChain(rng *rand.Rand) *RandomChain {
	return &RandomChain{BondLength: 3.8, EnergyCutoff: 0.00001, NAttempts: 100, rng: rng}
}

//Start places the first bead in the center of the box and the second one a
//bond length away in a random direction. The two-bead chain always carries
//the weight 1.0.
func (r *RandomChain) Start(system *cartesian.System, _ ff.Energy, rng *rand.Rand) float64 {
	c := system.BoxLen() / 2.0
	system.SetSize(2)
	system.Set(0, c, c, c)
	system.UpdateNbl(0)
	v := vec3.RandomPointNearby(rng, system.Coordinates().Atom(0), r.BondLength)
	system.CopyFromVec(1, v)
	return 1.0
}

//GrowByOne appends one bead, re-drawing its direction until the bead energy
//falls below the cutoff. Returns 1.0 on success and 0.0 when every attempt
//clashed; the last attempted position is left in place.
func (r *RandomChain) GrowByOne(system *cartesian.System, energy ff.Energy, rng *rand.Rand) float64 {
	i := system.Size()
	system.SetSize(i + 1)
	for nTry := 0; nTry < r.NAttempts; nTry++ {
		v := vec3.RandomPointNearby(rng, system.Coordinates().Atom(i-1), r.BondLength)
		system.Set(i, v.X, v.Y, v.Z)
		system.UpdateNbl(i)
		if energy.EnergyByPos(system, i) <= r.EnergyCutoff {
			return 1.0
		}
	}
	return 0.0
}

//Build grows a chain from scratch until the system reaches its capacity.
func (r *RandomChain) Build(system *cartesian.System, energy ff.Energy) float64 {
	r.Start(system, energy, r.rng)
	for system.Size() < system.Capacity() {
		r.GrowByOne(system, energy, r.rng)
	}
	return 1.0
}

//PERMChainStep grows a chain with Rosenbluth sampling: for every new bead it
//draws NTrials candidate positions at the bond length from the last bead,
//scores each with the Boltzmann factor of its energy and picks one with a
//probability proportional to its score.
type PERMChainStep struct {
	Temperature float64
	BondLength  float64
	NTrials     int
}

//NewPERMChainStep creates a step generator with the bond length of 3.8.
func NewPERMChainStep(temperature float64, nTrials int) *PERMChainStep {
	return &PERMChainStep{Temperature: temperature, BondLength: 3.8, NTrials: nTrials}
}

//Start places the first bead in the center of the simulation box.
//
//A single bead has nothing to interact with, so the weight of the freshly
//started chain is always 1.0 and the energy argument is not used.
func (p *PERMChainStep) Start(system *cartesian.System, _ ff.Energy, _ *rand.Rand) float64 {
	c := system.BoxLen() / 2.0
	system.SetSize(1)
	system.Set(0, c, c, c)
	system.UpdateNbl(0)
	return 1.0
}

//GrowByOne appends one bead picked from NTrials scored candidates and
//returns the sum of the candidate scores, i.e. the Rosenbluth weight of the
//step. A total weight below 1e-100 means no viable extension was found and
//the chain is a dead end.
func (p *PERMChainStep) GrowByOne(system *cartesian.System, energy ff.Energy, rng *rand.Rand) float64 {
	i := system.Size()
	system.SetSize(i + 1)

	weights := make([]float64, 0, p.NTrials)
	vn := make([]*vec3.Vec3, 0, p.NTrials)
	center := *system.Coordinates().Atom(i - 1)
	total := 0.0
	for k := 0; k < p.NTrials; k++ {
		vK := vec3.RandomPointNearby(rng, &center, p.BondLength)
		system.CopyFromVec(i, vK)
		en := energy.EnergyByPos(system, i)
		w := math.Exp(-en / p.Temperature)
		weights = append(weights, w)
		vn = append(vn, vK)
		total += w
	}
	if total < 1e-100 {
		return 0.0
	}

	//importance sampling among the candidates
	r := rng.Float64() * total
	whichV := 0
	s := weights[0]
	for s <= r {
		whichV++
		s += weights[whichV]
	}
	system.Set(i, vn[whichV].X, vn[whichV].Y, vn[whichV].Z)
	system.UpdateNbl(i)

	return total
}
