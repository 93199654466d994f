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

package psg

// ShapeCycle is the 4-bit flag set written to the envelope shape/cycle
// register. It is backed by a single byte; the upper four bits are always
// zero.
type ShapeCycle uint8

const (
	shapeHold      ShapeCycle = 0x1
	shapeAlternate ShapeCycle = 0x2
	shapeAttack    ShapeCycle = 0x4
	shapeContinue  ShapeCycle = 0x8
)

func (s ShapeCycle) Hold() bool      { return s&shapeHold == shapeHold }
func (s ShapeCycle) Alternate() bool { return s&shapeAlternate == shapeAlternate }
func (s ShapeCycle) Attack() bool    { return s&shapeAttack == shapeAttack }
func (s ShapeCycle) Continue() bool  { return s&shapeContinue == shapeContinue }

func (s *ShapeCycle) SetHold(v bool)      { s.set(shapeHold, v) }
func (s *ShapeCycle) SetAlternate(v bool) { s.set(shapeAlternate, v) }
func (s *ShapeCycle) SetAttack(v bool)    { s.set(shapeAttack, v) }
func (s *ShapeCycle) SetContinue(v bool)  { s.set(shapeContinue, v) }

func (s *ShapeCycle) set(mask ShapeCycle, v bool) {
	if v {
		*s |= mask
	} else {
		*s &^= mask
	}
}

// ShapeType enumerates the envelope shapes the driver knows how to encode.
// The chip can express a few more combinations of the shape/cycle flags but
// they all alias one of these five.
type ShapeType int

// The five envelope shapes.
const (
	OneShotSaw ShapeType = iota
	RampDown
	RampUp
	RepeatedSaw
	RepeatedTriangle
)

// EnvelopeShapeCycleControl selects the shape of the shared envelope
// generator.
type EnvelopeShapeCycleControl struct {
	Shape ShapeType
}

// Payload implements the Command interface. The mapping from ShapeType to
// flag set is fixed and total.
func (c EnvelopeShapeCycleControl) Payload(_ uint32) Payload {
	var shape ShapeCycle

	switch c.Shape {
	case OneShotSaw:
		shape.SetAttack(true)
	case RampDown:
		// all flags clear
	case RampUp:
		shape.SetHold(true)
		shape.SetAttack(true)
		shape.SetContinue(true)
	case RepeatedSaw:
		shape.SetContinue(true)
	case RepeatedTriangle:
		shape.SetContinue(true)
		shape.SetAlternate(true)
	}

	return Payload{
		Packet{Register: EnvelopeShape, Value: uint8(shape)},
	}
}

// EnvelopeFrequencyControl sets the repetition frequency of the shared
// envelope generator. Fractional frequencies are useful for very slow
// envelopes so Freq is a real number, unlike the tone and noise controls.
type EnvelopeFrequencyControl struct {
	// desired frequency in Hz
	Freq float64
}

// Payload implements the Command interface. The 16-bit envelope period is
// split over two registers, coarse byte first.
//
// Note that the packet order is the reverse of the tone encoder. The two
// registers are independent so the order makes no difference to the chip,
// but it is observable on the bus and the tests pin it.
func (c EnvelopeFrequencyControl) Payload(clock uint32) Payload {
	var div uint32
	if c.Freq > 0 {
		div = uint32(float64(clock) / (memoryWidth * c.Freq))
	}

	return Payload{
		Packet{Register: EnvelopeCoarse, Value: uint8(div / memoryWidth)},
		Packet{Register: EnvelopeFine, Value: uint8(div % memoryWidth)},
	}
}
