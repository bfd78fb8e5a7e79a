/*
 * statistics.go, part of bioshell.
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

//AcceptanceStatistics counts the accepted and the rejected outcomes of a
//Monte Carlo mover. Every mover keeps its own counters; a sampler or an
//adaptive protocol reads them through Mover.Statistics().
type AcceptanceStatistics struct {
	NSucc   int
	NFailed int
}

//SuccessRate returns the fraction of accepted moves recorded since the
//counters were created, or 0.0 when nothing was attempted yet.
func (a AcceptanceStatistics) SuccessRate() float64 {
	total := a.NSucc + a.NFailed
	if total == 0 {
		return 0.0
	}
	return float64(a.NSucc) / float64(total)
}

//RecentSuccessRate returns the fraction of accepted moves recorded since an
//earlier snapshot of the same counters, or 0.0 when nothing was attempted
//in between.
func (a AcceptanceStatistics) RecentSuccessRate(previous AcceptanceStatistics) float64 {
	succ := a.NSucc - previous.NSucc
	total := succ + a.NFailed - previous.NFailed
	if total == 0 {
		return 0.0
	}
	return float64(succ) / float64(total)
}
