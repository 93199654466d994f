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

func TestEnvelopePeriod(t *testing.T) {
	p := psg.EnvelopeFrequencyControl{Freq: 0.5}.Payload(testClock)

	test.ExpectEquality(t, len(p), 2)

	// coarse byte first, unlike the tone encoder
	test.ExpectEquality(t, p[0].Register, psg.EnvelopeCoarse)
	test.ExpectEquality(t, p[0].Value, 61)
	test.ExpectEquality(t, p[1].Register, psg.EnvelopeFine)
	test.ExpectEquality(t, p[1].Value, 9)
}

func TestEnvelopePeriodZero(t *testing.T) {
	// unlike the tone encoder, a zero frequency is guarded in the envelope
	// encoder itself
	p := psg.EnvelopeFrequencyControl{Freq: 0}.Payload(testClock)

	test.ExpectEquality(t, p[0].Value, 0)
	test.ExpectEquality(t, p[1].Value, 0)
}

func TestEnvelopeShape(t *testing.T) {
	// the mapping is total over the five shapes
	shapes := map[psg.ShapeType]uint8{
		psg.OneShotSaw:       0x4,
		psg.RampDown:         0x0,
		psg.RampUp:           0xd,
		psg.RepeatedSaw:      0x8,
		psg.RepeatedTriangle: 0xa,
	}

	for shape, value := range shapes {
		p := psg.EnvelopeShapeCycleControl{Shape: shape}.Payload(testClock)

		test.ExpectEquality(t, len(p), 1, shape)
		test.ExpectEquality(t, p[0].Register, psg.EnvelopeShape, shape)
		test.ExpectEquality(t, p[0].Value, value, shape)
	}
}

func TestShapeCycleFlags(t *testing.T) {
	var s psg.ShapeCycle

	s.SetContinue(true)
	s.SetAlternate(true)
	test.ExpectEquality(t, uint8(s), 0xa)
	test.ExpectSuccess(t, s.Continue())
	test.ExpectSuccess(t, s.Alternate())
	test.ExpectFailure(t, s.Hold())
	test.ExpectFailure(t, s.Attack())

	s.SetAlternate(false)
	test.ExpectEquality(t, uint8(s), 0x8)
}
