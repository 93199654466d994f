// This file is part of ay-driver.
//
// ay-driver is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ay-driver is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ay-driver.  If not, see <https://www.gnu.org/licenses/>.

// Package trace records bus activity for inspection. The Line and Transfer
// types returned by a Trace satisfy the corresponding interfaces in the bus
// package so a Trace can stand in for the real hardware wherever line-level
// behaviour needs to be verified.
package trace

import (
	"fmt"
	"strings"
)

// Kind of recorded Event.
type Kind int

// Events are either a line transition or a byte pushed down the transfer
// path.
const (
	LineLow Kind = iota
	LineHigh
	Byte
)

// Event is one recorded bus action.
type Event struct {
	Kind Kind

	// name of the line for LineLow/LineHigh events
	Name string

	// transferred value for Byte events
	Data uint8
}

func (e Event) String() string {
	switch e.Kind {
	case LineLow:
		return fmt.Sprintf("%s:low", e.Name)
	case LineHigh:
		return fmt.Sprintf("%s:high", e.Name)
	case Byte:
		return fmt.Sprintf("byte:%#02x", e.Data)
	}
	return "?"
}

// Trace is an ordered record of every line transition and byte transfer.
type Trace struct {
	events []Event
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	return &Trace{}
}

// Events returns the recorded events in the order they happened.
func (t *Trace) Events() []Event {
	return t.events
}

// Reset forgets all recorded events.
func (t *Trace) Reset() {
	t.events = t.events[:0]
}

func (t *Trace) String() string {
	s := make([]string, 0, len(t.events))
	for _, e := range t.events {
		s = append(s, e.String())
	}
	return strings.Join(s, " ")
}

// Line returns a recording line with the given name. Implements the
// bus.Line interface.
func (t *Trace) Line(name string) *Line {
	return &Line{trace: t, name: name}
}

// Transfer returns a recording byte-transfer. Implements the bus.Transfer
// interface.
func (t *Trace) Transfer() *Transfer {
	return &Transfer{trace: t}
}

// Line records its transitions into the owning Trace.
type Line struct {
	trace *Trace
	name  string
}

// High implements the bus.Line interface.
func (l *Line) High() {
	l.trace.events = append(l.trace.events, Event{Kind: LineHigh, Name: l.name})
}

// Low implements the bus.Line interface.
func (l *Line) Low() {
	l.trace.events = append(l.trace.events, Event{Kind: LineLow, Name: l.name})
}

// Transfer records sent bytes into the owning Trace.
type Transfer struct {
	trace *Trace
}

// Send implements the bus.Transfer interface.
func (tr *Transfer) Send(data uint8) {
	tr.trace.events = append(tr.trace.events, Event{Kind: Byte, Data: data})
}
