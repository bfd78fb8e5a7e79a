/*
 * adaptive.go, part of bioshell.
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
	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/ff"
)

//AdaptiveMC adds to a sampler the ability to adapt its movers' ranges on
//the fly. After every batch of sweeps the protocol compares the recent
//acceptance rate of every mover against TargetRate: a too cold mover (rate
//below the target) has its range multiplied by Factor, a too eager one has
//it divided by Factor. The range never leaves [r*0.5, r*4.0], where r is
//the range the mover was registered with.
type AdaptiveMC struct {
	TargetRate float64
	Factor     float64
	sampler    Sampler
	allowedLo  []float64
	allowedHi  []float64
}

//NewAdaptiveMC wraps a sampler; all movers already added to it are put
//under the protocol. The default target rate is 0.4 and the default factor
//is 0.95.
func NewAdaptiveMC(sampler Sampler) *AdaptiveMC {
	out := &AdaptiveMC{TargetRate: 0.4, Factor: 0.95, sampler: sampler}
	for i := 0; i < sampler.CountMovers(); i++ {
		r := sampler.Mover(i).MaxRange()
		out.allowedLo = append(out.allowedLo, r*0.5)
		out.allowedHi = append(out.allowedHi, r*4.0)
	}
	return out
}

//MakeSweeps delegates the sweeps to the wrapped sampler, then nudges the
//range of every mover whose recent acceptance rate strays from the target
//band by more than 0.05.
func (a *AdaptiveMC) MakeSweeps(n int, system *cartesian.System, energy ff.Energy) {
	before := make([]AcceptanceStatistics, a.sampler.CountMovers())
	for i := range before {
		before[i] = a.sampler.Mover(i).Statistics()
	}
	a.sampler.MakeSweeps(n, system, energy)
	for i := 0; i < a.sampler.CountMovers(); i++ {
		mover := a.sampler.Mover(i)
		rate := mover.Statistics().RecentSuccessRate(before[i])
		moveRange := mover.MaxRange()
		if rate < a.TargetRate-0.05 {
			moveRange *= a.Factor
		}
		if rate > a.TargetRate+0.05 {
			moveRange /= a.Factor
		}
		if moveRange > a.allowedHi[i] {
			moveRange = a.allowedHi[i]
		}
		if moveRange < a.allowedLo[i] {
			moveRange = a.allowedLo[i]
		}
		mover.SetMaxRange(moveRange)
	}
}

//AddMover includes a mover in the wrapped sampler and records its allowed
//range of ranges.
func (a *AdaptiveMC) AddMover(mover Mover) {
	r := mover.MaxRange()
	a.sampler.AddMover(mover)
	a.allowedLo = append(a.allowedLo, r*0.5)
	a.allowedHi = append(a.allowedHi, r*4.0)
}

//Mover provides access to the i-th mover of the wrapped sampler.
func (a *AdaptiveMC) Mover(i int) Mover { return a.sampler.Mover(i) }

//CountMovers returns the number of movers of the wrapped sampler.
func (a *AdaptiveMC) CountMovers() int { return a.sampler.CountMovers() }
