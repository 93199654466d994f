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

// Channel selects which of the three parallel tone/amplitude register sets a
// Command targets.
type Channel int

// The three channels of the PSG.
const (
	ChannelA Channel = iota
	ChannelB
	ChannelC
)

func (ch Channel) String() string {
	switch ch {
	case ChannelA:
		return "A"
	case ChannelB:
		return "B"
	case ChannelC:
		return "C"
	}
	return "?"
}

// tone period registers for the channel, fine before coarse.
func (ch Channel) toneRegisters() (Register, Register) {
	switch ch {
	case ChannelB:
		return ToneFineB, ToneCoarseB
	case ChannelC:
		return ToneFineC, ToneCoarseC
	}
	return ToneFineA, ToneCoarseA
}

func (ch Channel) amplitudeRegister() Register {
	switch ch {
	case ChannelB:
		return AmplitudeB
	case ChannelC:
		return AmplitudeC
	}
	return AmplitudeA
}
