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

package hardware_test

import (
	"testing"

	"github.com/rrwalton/ay-driver/curated"
	"github.com/rrwalton/ay-driver/hardware"
	"github.com/rrwalton/ay-driver/hardware/clocks"
	"github.com/rrwalton/ay-driver/hardware/monitor"
	"github.com/rrwalton/ay-driver/hardware/psg"
	"github.com/rrwalton/ay-driver/test"
)

func newAY(t *testing.T, m *monitor.Monitor) *hardware.AY38910 {
	t.Helper()
	ay, err := hardware.NewAY38910(clocks.AtariST, m.Transfer(), m.LatchEnable(), m.BDIR(), m.BC1(), m.BC2())
	test.DemandSuccess(t, err)
	return ay
}

func TestNewAY38910(t *testing.T) {
	m := monitor.NewMonitor()

	// a missing clock frequency is a configuration error, caught once at
	// construction
	_, err := hardware.NewAY38910(0, m.Transfer(), m.LatchEnable(), m.BDIR(), m.BC1(), m.BC2())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.ClockNotSet))

	ay := newAY(t, m)
	test.ExpectEquality(t, ay.Clock(), uint32(clocks.AtariST))
}

func TestWriteThroughToChip(t *testing.T) {
	m := monitor.NewMonitor()
	ay := newAY(t, m)

	ay.Write(psg.ToneControl{Chan: psg.ChannelA, Freq: 1000})

	// both halves of the tone period must land in the register file
	test.ExpectEquality(t, m.Register(psg.ToneFineA), 125)
	test.ExpectEquality(t, m.Register(psg.ToneCoarseA), 0)

	writes := m.Writes()
	test.DemandEquality(t, len(writes), 2)
	test.ExpectEquality(t, writes[0].Register, psg.ToneFineA)
	test.ExpectEquality(t, writes[1].Register, psg.ToneCoarseA)
}

func TestWriteChecked(t *testing.T) {
	m := monitor.NewMonitor()
	ay := newAY(t, m)

	err := ay.WriteChecked(psg.ToneControl{Chan: psg.ChannelC, Freq: 0})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.ZeroToneFrequency))

	// nothing must have reached the chip
	test.ExpectEquality(t, len(m.Writes()), 0)

	test.ExpectSuccess(t, ay.WriteChecked(psg.NoiseControl{Freq: 4000}))
	test.ExpectEquality(t, m.Register(psg.Noise), 0x1f)
}

func TestCommandSet(t *testing.T) {
	m := monitor.NewMonitor()
	ay := newAY(t, m)

	// the setup sequence of the demo note generator
	settings := psg.MixerSettings(0xff)
	settings.SetToneA(false)
	ay.Write(psg.MixerControl{Settings: settings})
	ay.Write(psg.EnvelopeShapeCycleControl{Shape: psg.RepeatedSaw})
	ay.Write(psg.EnvelopeFrequencyControl{Freq: 3500.0})
	ay.Write(psg.AmplitudeControl{Chan: psg.ChannelA, Mode: psg.Variable, Level: 15})
	ay.Write(psg.ToneControl{Chan: psg.ChannelA, Freq: 880})

	test.ExpectEquality(t, m.Register(psg.MixerEnable), 0x3e)
	test.ExpectEquality(t, m.Register(psg.EnvelopeShape), 0x08)
	test.ExpectEquality(t, m.Register(psg.AmplitudeA), 0x10)

	// 2000000 / (16*880) = 142
	test.ExpectEquality(t, m.Register(psg.ToneFineA), 142)
	test.ExpectEquality(t, m.Register(psg.ToneCoarseA), 0)

	// envelope: 2000000 / (256*3500) = 2
	test.ExpectEquality(t, m.Register(psg.EnvelopeCoarse), 0)
	test.ExpectEquality(t, m.Register(psg.EnvelopeFine), 2)
}
