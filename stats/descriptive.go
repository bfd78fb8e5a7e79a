/*
 * descriptive.go, part of bioshell.
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

//Package stats provides descriptive statistics of simulation outcomes:
//an on-line accumulator for N-dimensional samples, a bin-width histogram
//and an FFT-based autocorrelation of vector trajectories.
package stats

import (
	"fmt"
	"math"
)

//OnlineMultivariateStatistics accumulates N-dimensional observations without
//storing them and provides basic descriptive parameters of the sample on the
//fly, using Welford's updating formulas.
type OnlineMultivariateStatistics struct {
	dim   int
	count int
	m1    []float64
	m2    []float64
	min   []float64
	max   []float64
	cov   [][]float64
}

//NewOnlineMultivariateStatistics creates an accumulator for points of a
//given dimensionality.
func NewOnlineMultivariateStatistics(dim int) *OnlineMultivariateStatistics {
	cov := make([][]float64, dim)
	for i := range cov {
		cov[i] = make([]float64, dim)
	}
	return &OnlineMultivariateStatistics{
		dim: dim,
		m1:  make([]float64, dim),
		m2:  make([]float64, dim),
		min: make([]float64, dim),
		max: make([]float64, dim),
		cov: cov,
	}
}

//Dim returns the dimensionality of the observed points.
func (o *OnlineMultivariateStatistics) Dim() int { return o.dim }

//Count returns the number of observed samples.
func (o *OnlineMultivariateStatistics) Count() int { return o.count }

//Accumulate records a single point. It panics when the point has a wrong
//dimension; that is a programming error, not bad data.
func (o *OnlineMultivariateStatistics) Accumulate(point []float64) {
	if len(point) != o.dim {
		panic(fmt.Sprintf("stats: a %d-dimensional point accumulated into %d-dimensional statistics",
			len(point), o.dim))
	}
	if o.count == 0 {
		copy(o.min, point)
		copy(o.max, point)
	}
	o.count++
	for i := 0; i < o.dim; i++ {
		deltaX := point[i] - o.m1[i]
		o.m1[i] += deltaX / float64(o.count)
		o.m2[i] += deltaX * (point[i] - o.m1[i])

		for j := i + 1; j < o.dim; j++ {
			deltaY := point[j] - o.m1[j]
			o.cov[i][j] += deltaY * (point[i] - o.m1[i])
			o.cov[j][i] = o.cov[i][j]
		}

		o.min[i] = math.Min(o.min[i], point[i])
		o.max[i] = math.Max(o.max[i], point[i])
	}
}

//Accumulate1D records a single one-dimensional observation.
func (o *OnlineMultivariateStatistics) Accumulate1D(x float64) {
	o.Accumulate([]float64{x})
}

//Min returns the smallest value observed in each dimension. The extremes are
//taken independently per dimension and may come from different observations.
//The returned slice stays owned by the accumulator.
func (o *OnlineMultivariateStatistics) Min() []float64 { return o.min }

//Max returns the largest value observed in each dimension; see Min.
func (o *OnlineMultivariateStatistics) Max() []float64 { return o.max }

//Avg returns the average vector of the observations. The returned slice
//stays owned by the accumulator.
func (o *OnlineMultivariateStatistics) Avg() []float64 { return o.m1 }

//Var returns the unbiased variance for each dimension.
func (o *OnlineMultivariateStatistics) Var() []float64 {
	ret := make([]float64, o.dim)
	for i := range ret {
		ret[i] = o.m2[i] / float64(o.count-1)
	}
	return ret
}

//Cov returns the sample covariance matrix.
func (o *OnlineMultivariateStatistics) Cov() [][]float64 {
	ret := make([][]float64, o.dim)
	for i := range ret {
		ret[i] = make([]float64, o.dim)
	}
	for i := 0; i < o.dim; i++ {
		for j := 0; j < i; j++ {
			ret[i][j] = o.cov[i][j] / float64(o.count-1)
			ret[j][i] = ret[i][j]
		}
		ret[i][i] = o.m2[i] / float64(o.count-1)
	}
	return ret
}
