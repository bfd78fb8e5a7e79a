/*
 * descriptive_test.go, part of bioshell.
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

package stats

import (
	"math"
	"math/rand"
	"testing"
)

func TestOnlineStatisticsSmallSample(Te *testing.T) {
	stats := NewOnlineMultivariateStatistics(2)
	sample := [][]float64{{1, 2}, {2, 4}, {3, 6}, {4, 8}}
	for _, point := range sample {
		stats.Accumulate(point)
	}
	if stats.Count() != 4 || stats.Dim() != 2 {
		Te.Fatalf("got count %d and dim %d, expected 4 and 2", stats.Count(), stats.Dim())
	}

	checkVec := func(what string, got []float64, want ...float64) {
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				Te.Errorf("got %s[%d] = %f, expected %f", what, i, got[i], want[i])
			}
		}
	}
	checkVec("avg", stats.Avg(), 2.5, 5.0)
	checkVec("min", stats.Min(), 1.0, 2.0)
	checkVec("max", stats.Max(), 4.0, 8.0)
	checkVec("var", stats.Var(), 5.0/3.0, 20.0/3.0)

	cov := stats.Cov()
	if math.Abs(cov[0][1]-10.0/3.0) > 1e-12 || math.Abs(cov[1][0]-10.0/3.0) > 1e-12 {
		Te.Errorf("got covariance %f, expected %f", cov[0][1], 10.0/3.0)
	}
	if math.Abs(cov[0][0]-5.0/3.0) > 1e-12 || math.Abs(cov[1][1]-20.0/3.0) > 1e-12 {
		Te.Error("diagonal covariance should equal the variances")
	}
}

func TestOnlineStatisticsConvergence(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	stats := NewOnlineMultivariateStatistics(2)
	//y shares the a component with x: cov(x, y) = 0.5, var(x) = 0.25, var(y) = 1.25
	for i := 0; i < 50000; i++ {
		a := rng.NormFloat64()
		b := rng.NormFloat64()
		stats.Accumulate([]float64{1.0 + 0.5*a, 2.0 + a + 0.5*b})
	}

	if math.Abs(stats.Avg()[0]-1.0) > 0.01 || math.Abs(stats.Avg()[1]-2.0) > 0.025 {
		Te.Errorf("got averages %f, %f, expected 1 and 2", stats.Avg()[0], stats.Avg()[1])
	}
	v := stats.Var()
	if math.Abs(v[0]-0.25) > 0.01 || math.Abs(v[1]-1.25) > 0.04 {
		Te.Errorf("got variances %f, %f, expected 0.25 and 1.25", v[0], v[1])
	}
	if c := stats.Cov()[0][1]; math.Abs(c-0.5) > 0.02 {
		Te.Errorf("got covariance %f, expected 0.5", c)
	}
	if stats.Min()[0] >= stats.Avg()[0] || stats.Max()[0] <= stats.Avg()[0] {
		Te.Error("the average should fall between the extremes")
	}
}

func TestOnlineStatistics1D(Te *testing.T) {
	stats := NewOnlineMultivariateStatistics(1)
	for x := 1.0; x <= 5.0; x += 1.0 {
		stats.Accumulate1D(x)
	}
	if math.Abs(stats.Avg()[0]-3.0) > 1e-12 {
		Te.Errorf("got average %f, expected 3.0", stats.Avg()[0])
	}
	if math.Abs(stats.Var()[0]-2.5) > 1e-12 {
		Te.Errorf("got variance %f, expected 2.5", stats.Var()[0])
	}
}

func TestOnlineStatisticsDimensionPanic(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("expected a panic for a point of the wrong dimension")
		}
	}()
	stats := NewOnlineMultivariateStatistics(2)
	stats.Accumulate([]float64{1.0, 2.0, 3.0})
}
