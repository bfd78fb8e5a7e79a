/*
 * observers.go, part of bioshell.
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

import "github.com/dgront/bioshell/cartesian"

//Observer records snapshots of an evolving system, typically into a file.
type Observer interface {
	//Observe records the current state of a system.
	Observe(system *cartesian.System)
	//Flush pushes buffered output towards its file.
	Flush() error
	//Close flushes and releases the underlying writer; the observer must
	//not be used afterwards.
	Close() error
	//Name identifies the observer within an ObserversSet.
	Name() string
}

//ObserversSet triggers a group of observers with individual lag times: an
//observer registered with lag time k records every k-th call.
type ObserversSet struct {
	observers []Observer
	lagTimes  []int
	nCalled   int
}

//NewObserversSet creates an empty set.
func NewObserversSet() *ObserversSet { return &ObserversSet{} }

//Add registers an observer; it will record every lagTime-th call, starting
//from the very first one. Lag times smaller than 1 are bumped to 1.
func (o *ObserversSet) Add(observer Observer, lagTime int) {
	if lagTime < 1 {
		lagTime = 1
	}
	o.observers = append(o.observers, observer)
	o.lagTimes = append(o.lagTimes, lagTime)
}

//Observe triggers every observer whose lag time divides the number of calls
//made so far.
func (o *ObserversSet) Observe(system *cartesian.System) {
	for i, obs := range o.observers {
		if o.nCalled%o.lagTimes[i] == 0 {
			obs.Observe(system)
		}
	}
	o.nCalled++
}

//Flush flushes every observer; the first error encountered is returned.
func (o *ObserversSet) Flush() error {
	var firstErr error
	for _, obs := range o.observers {
		if err := obs.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

//Close closes every observer; the first error encountered is returned.
func (o *ObserversSet) Close() error {
	var firstErr error
	for _, obs := range o.observers {
		if err := obs.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

//ByName returns the observer registered under a given name, or nil when
//there is no such observer in this set.
func (o *ObserversSet) ByName(name string) Observer {
	for _, obs := range o.observers {
		if obs.Name() == name {
			return obs
		}
	}
	return nil
}
