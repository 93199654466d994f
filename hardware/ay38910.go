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

package hardware

import (
	"github.com/rrwalton/ay-driver/curated"
	"github.com/rrwalton/ay-driver/hardware/bus"
	"github.com/rrwalton/ay-driver/hardware/psg"
	"github.com/rrwalton/ay-driver/logger"
)

// Error patterns returned by this package. For use with curated.Is().
const (
	// returned by NewAY38910 when the master clock frequency is missing
	ClockNotSet = "ay38910: master clock frequency not set"

	// returned by WriteChecked for a tone command with a zero frequency
	ZeroToneFrequency = "ay38910: tone frequency of zero for channel %v"
)

// the part of the bus.Sequencer the facade relies on.
type registerWriter interface {
	WriteRegister(address uint8, value uint8)
}

// AY38910 is the driver facade for the sound generator. It resolves a
// psg.Command to its register packets and transmits them over the bus
// sequencer, one full bus transaction per packet.
//
// The AY38910 keeps no image of the chip's register file. Writes are fire
// and forget; the chip cannot be read back.
//
// Not safe for concurrent use. A Write must complete before the next one
// begins; mutual exclusion between callers is the application's
// responsibility.
type AY38910 struct {
	clock uint32
	seq   registerWriter
}

// NewAY38910 is the preferred method of initialisation for the AY38910
// type.
//
// The clock argument is the frequency in Hz of the master clock feeding the
// chip. It is validated here, once; a zero value is a configuration error.
// The hardware/clocks package has constants for the common host machines.
func NewAY38910(clock uint32, transfer bus.Transfer, latch, bdir, bc1, bc2 bus.Line) (*AY38910, error) {
	if clock == 0 {
		return nil, curated.Errorf(ClockNotSet)
	}

	logger.Logf("ay38910", "master clock %dHz", clock)

	return &AY38910{
		clock: clock,
		seq:   bus.NewSequencer(transfer, latch, bdir, bc1, bc2),
	}, nil
}

// Clock returns the master clock frequency the driver was configured with.
func (ay *AY38910) Clock() uint32 {
	return ay.clock
}

// Write resolves the command and transmits the resulting register packets.
//
// Write is best-effort: there is no return value and a command that cannot
// be encoded is silently dropped before any bus activity. Use WriteChecked
// for fault visibility.
func (ay *AY38910) Write(command psg.Command) {
	_ = ay.WriteChecked(command)
}

// WriteChecked is the stricter form of Write. The default write path
// deliberately swallows failure; WriteChecked reports commands that cannot
// be encoded. The bus sequencing itself is identical.
func (ay *AY38910) WriteChecked(command psg.Command) error {
	// the tone encoder divides by the requested frequency. the guard
	// belongs to the encoder's caller, which is us
	if tone, ok := command.(psg.ToneControl); ok && tone.Freq == 0 {
		return curated.Errorf(ZeroToneFrequency, tone.Chan)
	}

	// one full bus transaction per packet, in the order the encoder
	// returned them
	for _, p := range command.Payload(ay.clock) {
		ay.seq.WriteRegister(uint8(p.Register), p.Value)
	}

	return nil
}
