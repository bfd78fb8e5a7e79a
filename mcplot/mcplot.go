/*
 * mcplot.go, part of bioshell.
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

//Package mcplot renders simulation observables as PNG images. A Trace is a
//regular observer that can be registered with an ObserversSet next to the
//file-writing ones; instead of printing rows it accumulates a scalar series
//and draws it as a line plot. Histograms collected with the stats package
//can be rendered as bar charts.
package mcplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/ff"
	"github.com/dgront/bioshell/stats"
)

//Trace observes a scalar property of a system and renders the series
//collected so far into a PNG file every time it is flushed. The X axis
//counts observations; multiply by the observation lag to get sweeps.
type Trace struct {
	name   string
	fname  string
	yLabel string
	value  func(*cartesian.System) float64
	series []float64
}

//NewTrace creates a trace observer for an arbitrary property. The name
//identifies the observer within an ObserversSet and titles the plot; the
//plot goes to the named PNG file.
func NewTrace(name, fname, yLabel string, value func(*cartesian.System) float64) *Trace {
	return &Trace{name: name, fname: fname, yLabel: yLabel, value: value}
}

//NewEnergyTrace creates a trace of the energy per atom of a system.
func NewEnergyTrace(fname string, energy ff.Energy) *Trace {
	return NewTrace("EnergyTrace", fname, "energy per atom", func(system *cartesian.System) float64 {
		return energy.Energy(system) / float64(system.Size())
	})
}

//Observe appends the current property value to the series.
func (t *Trace) Observe(system *cartesian.System) {
	t.series = append(t.series, t.value(system))
}

//Series returns the values recorded so far.
func (t *Trace) Series() []float64 { return t.series }

//Flush renders the series collected so far, overwriting the output file.
//Flushing an empty trace is a no-op.
func (t *Trace) Flush() error {
	if len(t.series) == 0 {
		return nil
	}
	pts := make(plotter.XYs, len(t.series))
	for i, v := range t.series {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	p := plot.New()
	p.Title.Text = t.name
	p.X.Label.Text = "observation"
	p.Y.Label.Text = t.yLabel
	p.Add(plotter.NewGrid())
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, t.fname)
}

//Close renders the final plot; the trace may still be observed afterwards
//since it holds no file handle between flushes.
func (t *Trace) Close() error { return t.Flush() }

//Name identifies this observer within an ObserversSet.
func (t *Trace) Name() string { return t.name }

//SaveHistogram draws the occupied bins of a histogram as a bar chart and
//writes it to the named PNG file. Bars cover the contiguous range from the
//lowest to the highest occupied bin, so gaps show up as empty slots.
func SaveHistogram(h *stats.Histogram, title, xLabel, fname string) error {
	occupied := h.OccupiedBins()
	if len(occupied) == 0 {
		return fmt.Errorf("mcplot: can't plot an empty histogram")
	}
	first, last := occupied[0], occupied[len(occupied)-1]
	values := make(plotter.Values, 0, last-first+1)
	labels := make([]string, 0, last-first+1)
	for bin := first; bin <= last; bin++ {
		values = append(values, h.Get(bin))
		labels = append(labels, fmt.Sprintf("%.3g", (h.BinMin(bin)+h.BinMax(bin))/2.0))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "counts"
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, fname)
}
