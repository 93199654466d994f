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

package bus_test

import (
	"testing"

	"github.com/rrwalton/ay-driver/hardware/bus"
	"github.com/rrwalton/ay-driver/hardware/bus/trace"
	"github.com/rrwalton/ay-driver/test"
)

func TestWriteRegister(t *testing.T) {
	tr := trace.NewTrace()
	seq := bus.NewSequencer(tr.Transfer(), tr.Line("LE"), tr.Line("BDIR"), tr.Line("BC1"), tr.Line("BC2"))

	seq.WriteRegister(0x07, 0x38)

	inactive := []trace.Event{
		{Kind: trace.LineLow, Name: "BDIR"},
		{Kind: trace.LineLow, Name: "BC1"},
		{Kind: trace.LineHigh, Name: "BC2"},
	}
	latchAddress := []trace.Event{
		{Kind: trace.LineHigh, Name: "BDIR"},
		{Kind: trace.LineHigh, Name: "BC1"},
		{Kind: trace.LineHigh, Name: "BC2"},
	}
	writeData := []trace.Event{
		{Kind: trace.LineHigh, Name: "BDIR"},
		{Kind: trace.LineLow, Name: "BC1"},
		{Kind: trace.LineHigh, Name: "BC2"},
	}
	present := func(data uint8) []trace.Event {
		return []trace.Event{
			{Kind: trace.LineLow, Name: "LE"},
			{Kind: trace.Byte, Data: data},
			{Kind: trace.LineHigh, Name: "LE"},
		}
	}

	// the full 8-step sequence of one register write, including the
	// repeated inactive assertion between the two phases
	var expected []trace.Event
	expected = append(expected, inactive...)
	expected = append(expected, latchAddress...)
	expected = append(expected, present(0x07)...)
	expected = append(expected, inactive...)
	expected = append(expected, inactive...)
	expected = append(expected, present(0x38)...)
	expected = append(expected, writeData...)
	expected = append(expected, inactive...)

	events := tr.Events()
	test.DemandEquality(t, len(events), len(expected))
	for i := range expected {
		test.ExpectEquality(t, events[i], expected[i], i)
	}
}

func TestWriteRegisterRepeats(t *testing.T) {
	tr := trace.NewTrace()
	seq := bus.NewSequencer(tr.Transfer(), tr.Line("LE"), tr.Line("BDIR"), tr.Line("BC1"), tr.Line("BC2"))

	// each register write is a self-contained transaction. two writes must
	// produce exactly twice the trace of one
	seq.WriteRegister(0x00, 0x7d)
	one := len(tr.Events())

	seq.WriteRegister(0x01, 0x00)
	test.ExpectEquality(t, len(tr.Events()), one*2)

	// two bytes cross the transfer path per write
	n := 0
	for _, e := range tr.Events() {
		if e.Kind == trace.Byte {
			n++
		}
	}
	test.ExpectEquality(t, n, 4)
}
