/*
 * properties.go, part of bioshell.
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
	"bufio"
	"fmt"
	"io"

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/files"
)

//propertyWriter is the shared backend of observers that print one numeric
//value per chain per observation.
type propertyWriter struct {
	out    io.WriteCloser
	buf    *bufio.Writer
	iModel int
}

func newPropertyWriter(fname string, ifAppend bool) (propertyWriter, error) {
	out, err := files.OutWriter(fname, ifAppend)
	if err != nil {
		return propertyWriter{}, err
	}
	return propertyWriter{out: out, buf: bufio.NewWriter(out)}, nil
}

//writeRow prints the observation index followed by one value per chain.
func (p *propertyWriter) writeRow(coords *cartesian.Coordinates, property func(*cartesian.Coordinates, cartesian.Span) float64) {
	fmt.Fprintf(p.buf, "%d ", p.iModel)
	for ic := 0; ic < coords.CountChains(); ic++ {
		fmt.Fprintf(p.buf, "%10.3f ", property(coords, coords.ChainRange(ic)))
	}
	fmt.Fprintln(p.buf)
	p.iModel++
}

func (p *propertyWriter) flush() error { return p.buf.Flush() }

func (p *propertyWriter) close() error {
	if err := p.buf.Flush(); err != nil {
		p.out.Close()
		return err
	}
	return p.out.Close()
}

//GyrationSquared records the squared radius of gyration of every chain of
//an observed system, one line per observation.
type GyrationSquared struct {
	propertyWriter
}

//NewGyrationSquared opens the output file for the observations.
func NewGyrationSquared(fname string, ifAppend bool) (*GyrationSquared, error) {
	w, err := newPropertyWriter(fname, ifAppend)
	if err != nil {
		return nil, err
	}
	return &GyrationSquared{propertyWriter: w}, nil
}

//Observe appends a line with the squared gyration radius of every chain.
func (g *GyrationSquared) Observe(system *cartesian.System) {
	g.writeRow(system.Coordinates(), cartesian.GyrationSquared)
}

//Flush pushes buffered rows towards the file.
func (g *GyrationSquared) Flush() error { return g.flush() }

//Close flushes the buffer and closes the file.
func (g *GyrationSquared) Close() error { return g.close() }

//Name identifies the observer within an ObserversSet.
func (g *GyrationSquared) Name() string { return "GyrationSquared" }

//REndSquared records the squared end-to-end distance of every chain of an
//observed system, one line per observation.
type REndSquared struct {
	propertyWriter
}

//NewREndSquared opens the output file for the observations.
func NewREndSquared(fname string, ifAppend bool) (*REndSquared, error) {
	w, err := newPropertyWriter(fname, ifAppend)
	if err != nil {
		return nil, err
	}
	return &REndSquared{propertyWriter: w}, nil
}

//Observe appends a line with the squared end-to-end distance of every chain.
func (r *REndSquared) Observe(system *cartesian.System) {
	r.writeRow(system.Coordinates(), cartesian.REndSquared)
}

//Flush pushes buffered rows towards the file.
func (r *REndSquared) Flush() error { return r.flush() }

//Close flushes the buffer and closes the file.
func (r *REndSquared) Close() error { return r.close() }

//Name identifies the observer within an ObserversSet.
func (r *REndSquared) Name() string { return "REndSquared" }
