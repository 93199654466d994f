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

// Package psg describes the register file of the AY-3-8910 programmable
// sound generator and translates musically meaningful parameters into
// register writes.
//
// The chip has three tone channels, one noise generator, one shared envelope
// generator, per-channel amplitude control and a mixer register that routes
// tone and noise to the channels. All of it is controlled through fourteen
// byte-wide registers.
//
// The Command implementations in this package are the encoders. Each one is
// a pure function from control parameters and the master clock frequency to
// a Payload of one or two register Packets. Nothing in this package touches
// hardware; transmission of a Payload is the business of the bus package and
// the hardware.AY38910 type.
//
// Where a Payload contains two packets the order is significant and is
// preserved all the way to the chip. The chip has no atomic multi-byte write
// so a two-packet quantity is applied one register at a time; the half-way
// state is a valid, if incomplete, chip state.
package psg
