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

package psg_test

import (
	"testing"

	"github.com/rrwalton/ay-driver/hardware/psg"
	"github.com/rrwalton/ay-driver/test"
)

func TestAmplitudeFixed(t *testing.T) {
	p := psg.AmplitudeControl{Chan: psg.ChannelA, Mode: psg.Fixed, Level: 2}.Payload(testClock)

	test.ExpectEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0].Register, psg.AmplitudeA)
	test.ExpectEquality(t, p[0].Value, 2)

	// levels are 4-bit values. out of range levels are masked
	p = psg.AmplitudeControl{Chan: psg.ChannelA, Mode: psg.Fixed, Level: 18}.Payload(testClock)
	test.ExpectEquality(t, p[0].Value, 2)
}

func TestAmplitudeVariable(t *testing.T) {
	// in variable mode the level is ignored; the envelope generator governs
	// the amplitude
	for level := uint8(0); level < 16; level++ {
		p := psg.AmplitudeControl{Chan: psg.ChannelB, Mode: psg.Variable, Level: level}.Payload(testClock)

		test.ExpectEquality(t, p[0].Register, psg.AmplitudeB, level)
		test.ExpectEquality(t, p[0].Value, 0x10, level)
	}
}

func TestAmplitudeRegisters(t *testing.T) {
	registers := map[psg.Channel]psg.Register{
		psg.ChannelA: psg.AmplitudeA,
		psg.ChannelB: psg.AmplitudeB,
		psg.ChannelC: psg.AmplitudeC,
	}

	for ch, reg := range registers {
		p := psg.AmplitudeControl{Chan: ch, Mode: psg.Fixed, Level: 15}.Payload(testClock)
		test.ExpectEquality(t, p[0].Register, reg, ch)
	}
}
