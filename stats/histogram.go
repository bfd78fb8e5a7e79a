/*
 * histogram.go, part of bioshell.
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
	"fmt"
	"math"
	"sort"
	"strings"
)

//Histogram is a one-dimensional histogram with real-valued counts. Bins of a
//fixed width are keyed by an integer index, so the histogram stretches in
//both directions as observations arrive; bin i covers [i*width, (i+1)*width).
type Histogram struct {
	data     map[int]float64
	binWidth float64
}

//ByBinWidth creates an empty histogram with a given bin width.
func ByBinWidth(width float64) *Histogram {
	return &Histogram{data: map[int]float64{}, binWidth: width}
}

//Insert adds a single observation to this histogram.
func (h *Histogram) Insert(x float64) { h.data[h.WhichBin(x)] += 1.0 }

//WhichBin says the index of the bin a given value falls into.
func (h *Histogram) WhichBin(val float64) int {
	return int(math.Floor(val / h.binWidth))
}

//BinMin returns the left-hand side of a given bin.
func (h *Histogram) BinMin(binId int) float64 { return float64(binId) * h.binWidth }

//BinMax returns the right-hand side of a given bin (exclusive).
func (h *Histogram) BinMax(binId int) float64 { return float64(binId+1) * h.binWidth }

//Get returns the count in a given bin; an untouched bin counts zero.
func (h *Histogram) Get(binId int) float64 { return h.data[binId] }

//GetByValue returns the count of the bin that holds a given value.
func (h *Histogram) GetByValue(val float64) float64 { return h.Get(h.WhichBin(val)) }

//Sum returns the total number of counts in this histogram.
func (h *Histogram) Sum() float64 {
	s := 0.0
	for _, v := range h.data {
		s += v
	}
	return s
}

//BinWidth returns the width of a single bin.
func (h *Histogram) BinWidth() float64 { return h.binWidth }

//Mode returns the bounds of the tallest bin and its count.
func (h *Histogram) Mode() (float64, float64, float64) {
	maxI, maxV := 0, 0.0
	for i, v := range h.data {
		if v > maxV {
			maxI, maxV = i, v
		}
	}
	return h.BinMin(maxI), h.BinMax(maxI), maxV
}

//OccupiedBins returns the indexes of all non-empty bins from the leftmost to
//the rightmost.
func (h *Histogram) OccupiedBins() []int {
	ids := make([]int, 0, len(h.data))
	for i := range h.data {
		ids = append(ids, i)
	}
	sort.Ints(ids)
	return ids
}

//String prints one line per occupied bin, left to right.
func (h *Histogram) String() string {
	var b strings.Builder
	for _, i := range h.OccupiedBins() {
		fmt.Fprintf(&b, "%5g..%5g [%4d] %g\n", h.BinMin(i), h.BinMax(i), i, h.data[i])
	}
	return b.String()
}
