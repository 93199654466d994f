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

// Package periphio implements the bus capability interfaces on top of the
// periph.io GPIO and SPI stack, for hosts (Raspberry Pi and the like) with
// the chip wired to real pins.
//
// Both adapters absorb errors from the underlying hardware, in keeping with
// the best-effort policy of the bus package. An application that wants to
// see pin failures should wrap the gpio.PinOut itself.
//
// Host initialisation (periph.io/x/host) is left to the application; the
// adapters only wrap already-configured pins and connections.
package periphio

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Line drives a single GPIO pin. Implements the bus.Line interface.
type Line struct {
	pin gpio.PinOut
}

// NewLine is the preferred method of initialisation for the Line type.
func NewLine(pin gpio.PinOut) *Line {
	return &Line{pin: pin}
}

// High implements the bus.Line interface.
func (l *Line) High() {
	_ = l.pin.Out(gpio.High)
}

// Low implements the bus.Line interface.
func (l *Line) Low() {
	_ = l.pin.Out(gpio.Low)
}

// SPI sends bytes over an SPI connection to the external shift register.
// Implements the bus.Transfer interface.
type SPI struct {
	conn spi.Conn
}

// NewSPI is the preferred method of initialisation for the SPI type.
func NewSPI(conn spi.Conn) *SPI {
	return &SPI{conn: conn}
}

// Send implements the bus.Transfer interface. It blocks until the byte has
// been clocked out.
func (s *SPI) Send(data uint8) {
	_ = s.conn.Tx([]byte{data}, nil)
}
