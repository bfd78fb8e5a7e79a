/*
 * perm.go, part of bioshell.
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
	"fmt"
	"math"
	"math/rand"

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/ff"
)

//growthPoint is a partially grown chain parked on the PERM stack together
//with its statistical weight; enrichment resumes it later.
type growthPoint struct {
	system *cartesian.System
	weight float64
}

//PERM grows chains with the pruned-enriched Rosenbluth method. A chain is
//extended bead by bead with a StepwiseMover while its accumulated weight is
//compared against two running thresholds: a chain too light is pruned with
//the probability 0.5 (survivors double their weight), a chain too heavy is
//split in two halves of equal weight, one of which is parked on a stack and
//finished by a later Build call.
//
//The thresholds derive from the running partition function estimates Z[i]:
//W_low[i] = cLow*Z[i]/Z[0] and W_hi[i] = cHi*Z[i]/Z[0], recomputed every
//UpdateAfterN completed chains. Pruning and enrichment stay disabled until
//2*UpdateAfterN chains have been completed, so the first estimates are
//unbiased.
type PERM struct {
	//ZDivStep divides the weight of every growth step to keep the chain
	//weight within the floating point range; 10 by default.
	ZDivStep float64
	//UpdateAfterN is the number of completed chains between two refreshes
	//of the pruning thresholds; 100 by default.
	UpdateAfterN int

	cLow, cHi  float64
	maxSize    int
	mover      StepwiseMover
	rng        *rand.Rand
	z          []float64
	wLow       []float64
	wHi        []float64
	stack      []growthPoint
	nChains    int
	pruneStats []AcceptanceStatistics
}

//NewPERM creates a sampler for chains of at most maxSize beads. cLow and
//cHi scale the pruning and the enrichment threshold, respectively; sensible
//values are cLow well below 1 and cHi well above it.
func NewPERM(maxSize int, cLow, cHi float64, mover StepwiseMover, rng *rand.Rand) *PERM {
	out := &PERM{
		ZDivStep:     10.0,
		UpdateAfterN: 100,
		cLow:         cLow,
		cHi:          cHi,
		maxSize:      maxSize,
		mover:        mover,
		rng:          rng,
		z:            make([]float64, maxSize),
		wLow:         make([]float64, maxSize),
		wHi:          make([]float64, maxSize),
		pruneStats:   make([]AcceptanceStatistics, maxSize),
	}
	for i := range out.wHi {
		out.wHi[i] = math.Inf(1)
	}
	return out
}

//CountChains returns the number of chains completed so far.
func (p *PERM) CountChains() int { return p.nChains }

//PruneStatistics returns the pruning counters for one bead position:
//a success is a chain that survived the pruning coin, a failure is a chain
//that was pruned there.
func (p *PERM) PruneStatistics(pos int) AcceptanceStatistics { return p.pruneStats[pos] }

//Build grows one chain to the full capacity of the system and returns its
//statistical weight. The returned weight is 0.0 when the chain was pruned
//or ran into a dead end; the caller should simply call Build again. Build
//panics when the system can hold more beads than this sampler was sized
//for.
func (p *PERM) Build(system *cartesian.System, energy ff.Energy) float64 {
	if system.Capacity() > p.maxSize {
		panic(fmt.Sprintf("PERM sized for %d beads cannot build a chain of %d", p.maxSize, system.Capacity()))
	}

	var wTot float64
	if n := len(p.stack); n > 0 {
		point := p.stack[n-1]
		p.stack = p.stack[:n-1]
		restoreSnapshot(system, point.system)
		wTot = point.weight
	} else {
		wTot = p.mover.Start(system, energy, p.rng)
		p.z[0] += wTot
	}

	guarded := p.nChains > 2*p.UpdateAfterN
	for system.Size() < system.Capacity() {
		i := system.Size()
		p.z[i] += wTot
		w := p.mover.GrowByOne(system, energy, p.rng)
		if w == 0.0 {
			return 0.0
		}
		wTot *= w / p.ZDivStep

		if !guarded {
			continue
		}
		if wTot < p.wLow[i] {
			if p.rng.Float64() < 0.5 {
				p.pruneStats[i].NFailed++
				return 0.0
			}
			p.pruneStats[i].NSucc++
			wTot *= 2.0
		} else if wTot > p.wHi[i] {
			wTot /= 2.0
			p.stack = append(p.stack, growthPoint{system: system.Clone(), weight: wTot})
		}
	}

	p.nChains++
	if p.nChains%p.UpdateAfterN == 0 && p.z[0] > 0.0 {
		for i := range p.z {
			p.wLow[i] = p.cLow * p.z[i] / p.z[0]
			p.wHi[i] = p.cHi * p.z[i] / p.z[0]
		}
	}
	return wTot
}

//restoreSnapshot copies the conformation stored in a snapshot back into the
//working system and rebuilds its neighbor list.
func restoreSnapshot(system *cartesian.System, snapshot *cartesian.System) {
	system.SetSize(snapshot.Size())
	coords := system.Coordinates()
	for i := 0; i < snapshot.Size(); i++ {
		coords.CopyFrom(i, snapshot.Coordinates())
	}
	system.NbList().UpdateAll(coords)
}
