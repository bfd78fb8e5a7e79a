/*
 * autocorrelation.go, part of bioshell.
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
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

//AutocorrelateVectors computes the circular autocorrelation of a trajectory
//of 3D vectors given as three per-axis series of equal length, normalized so
//that the value at lag zero equals 1. Each series is centered at its mean,
//pushed through a forward FFT, turned into a power spectrum and transformed
//back; the three per-axis results are summed before the normalization.
func AutocorrelateVectors(x, y, z []float64) []float64 {
	n := len(x)
	if len(y) != n || len(z) != n {
		panic("stats: autocorrelated series must have equal lengths")
	}

	fft := fourier.NewCmplxFFT(n)
	acc := make([]float64, n)
	buf := make([]complex128, n)
	for _, series := range [][]float64{x, y, z} {
		mean := stat.Mean(series, nil)
		for i, v := range series {
			buf[i] = complex(v-mean, 0)
		}
		fft.Coefficients(buf, buf)
		for i, v := range buf {
			buf[i] = v * cmplx.Conj(v)
		}
		fft.Sequence(buf, buf)
		//the forward-inverse round trip scales by n
		for i, v := range buf {
			acc[i] += real(v) / float64(n)
		}
	}

	d := acc[0]
	for i := range acc {
		acc[i] /= d
	}
	return acc
}
