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

package monitor_test

import (
	"testing"

	"github.com/rrwalton/ay-driver/hardware/bus"
	"github.com/rrwalton/ay-driver/hardware/monitor"
	"github.com/rrwalton/ay-driver/hardware/psg"
	"github.com/rrwalton/ay-driver/test"
)

func newSequencer(m *monitor.Monitor) *bus.Sequencer {
	return bus.NewSequencer(m.Transfer(), m.LatchEnable(), m.BDIR(), m.BC1(), m.BC2())
}

func TestDecodeWrite(t *testing.T) {
	m := monitor.NewMonitor()
	seq := newSequencer(m)

	seq.WriteRegister(uint8(psg.MixerEnable), 0x38)

	test.ExpectEquality(t, m.Register(psg.MixerEnable), 0x38)

	writes := m.Writes()
	test.DemandEquality(t, len(writes), 1)
	test.ExpectEquality(t, writes[0], psg.Packet{Register: psg.MixerEnable, Value: 0x38})
}

func TestDecodeOrder(t *testing.T) {
	m := monitor.NewMonitor()
	seq := newSequencer(m)

	// the same register sequence the tone encoder produces: fine then
	// coarse
	seq.WriteRegister(uint8(psg.ToneFineA), 0x7d)
	seq.WriteRegister(uint8(psg.ToneCoarseA), 0x00)

	writes := m.Writes()
	test.DemandEquality(t, len(writes), 2)
	test.ExpectEquality(t, writes[0].Register, psg.ToneFineA)
	test.ExpectEquality(t, writes[1].Register, psg.ToneCoarseA)

	test.ExpectEquality(t, m.Register(psg.ToneFineA), 0x7d)
	test.ExpectEquality(t, m.Register(psg.ToneCoarseA), 0x00)
}

func TestDecodeRewrite(t *testing.T) {
	m := monitor.NewMonitor()
	seq := newSequencer(m)

	seq.WriteRegister(uint8(psg.AmplitudeC), 0x0f)
	seq.WriteRegister(uint8(psg.AmplitudeC), 0x10)

	// the register file holds the most recent value; the log holds both
	test.ExpectEquality(t, m.Register(psg.AmplitudeC), 0x10)
	test.ExpectEquality(t, len(m.Writes()), 2)
}

func TestDecodeUnknownAddress(t *testing.T) {
	m := monitor.NewMonitor()
	seq := newSequencer(m)

	// addresses 0x0e and 0x0f select no register. the write must be
	// discarded without disturbing the register file
	seq.WriteRegister(0x0e, 0xff)

	test.ExpectEquality(t, len(m.Writes()), 0)
	for r := psg.Register(0); r < psg.NumRegisters; r++ {
		test.ExpectEquality(t, m.Register(r), 0, r)
	}
}

func TestReset(t *testing.T) {
	m := monitor.NewMonitor()
	seq := newSequencer(m)

	seq.WriteRegister(uint8(psg.Noise), 0x1f)
	m.Reset()

	test.ExpectEquality(t, m.Register(psg.Noise), 0)
	test.ExpectEquality(t, len(m.Writes()), 0)
}
