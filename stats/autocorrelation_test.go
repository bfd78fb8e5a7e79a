/*
 * autocorrelation_test.go, part of bioshell.
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

//A pure cosine has the circular autocorrelation cos(2 pi j / n), exactly.
func TestAutocorrelationPureTone(Te *testing.T) {
	const n = 64
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for t := 0; t < n; t++ {
		x[t] = math.Cos(2.0 * math.Pi * float64(t) / n)
	}

	acf := AutocorrelateVectors(x, y, z)
	if len(acf) != n {
		Te.Fatalf("got %d lags, expected %d", len(acf), n)
	}
	for j := 0; j < n; j++ {
		want := math.Cos(2.0 * math.Pi * float64(j) / n)
		if math.Abs(acf[j]-want) > 1e-9 {
			Te.Fatalf("got acf[%d] = %f, expected %f", j, acf[j], want)
		}
	}
}

func TestAutocorrelationWhiteNoise(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 1024
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for t := 0; t < n; t++ {
		x[t] = rng.NormFloat64()
		y[t] = rng.NormFloat64()
		z[t] = rng.NormFloat64()
	}

	acf := AutocorrelateVectors(x, y, z)
	if math.Abs(acf[0]-1.0) > 1e-12 {
		Te.Errorf("got acf[0] = %f, expected exactly 1", acf[0])
	}
	for j := 1; j < n; j++ {
		if math.Abs(acf[j]) > 0.2 {
			Te.Errorf("got acf[%d] = %f, uncorrelated noise should stay near zero", j, acf[j])
		}
	}
}
