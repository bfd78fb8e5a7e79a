/*
 * criterion_test.go, part of bioshell.
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
	"math"
	"math/rand"
	"testing"
)

func TestMetropolisDownhill(Te *testing.T) {
	crit := NewMetropolisCriterion(0.001, rand.New(rand.NewSource(42)))
	if math.Abs(crit.Temperature()-0.001) > 1e-12 {
		Te.Errorf("got temperature %f, expected 0.001", crit.Temperature())
	}
	//a move that lowers the energy is accepted no matter how cold the system is
	for i := 0; i < 100; i++ {
		if !crit.Check(5.0, 4.999-float64(i)) {
			Te.Fatal("a downhill move was rejected")
		}
	}
	if !crit.Check(5.0, 5.0) {
		Te.Error("a move that keeps the energy was rejected")
	}
}

func TestMetropolisUphillFrequency(Te *testing.T) {
	crit := NewMetropolisCriterion(1.0, rand.New(rand.NewSource(42)))
	const nTrials = 20000
	nAccepted := 0
	for i := 0; i < nTrials; i++ {
		if crit.Check(0.0, 1.0) {
			nAccepted++
		}
	}
	expected := math.Exp(-1.0)
	observed := float64(nAccepted) / float64(nTrials)
	if math.Abs(observed-expected) > 0.02 {
		Te.Errorf("got acceptance frequency %f, expected %f", observed, expected)
	}

	crit.SetTemperature(0.25)
	nAccepted = 0
	for i := 0; i < nTrials; i++ {
		if crit.Check(0.0, 1.0) {
			nAccepted++
		}
	}
	expected = math.Exp(-4.0)
	observed = float64(nAccepted) / float64(nTrials)
	if math.Abs(observed-expected) > 0.005 {
		Te.Errorf("got acceptance frequency %f at T=0.25, expected %f", observed, expected)
	}
}
