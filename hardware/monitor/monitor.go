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

package monitor

import (
	"github.com/rrwalton/ay-driver/hardware/bus"
	"github.com/rrwalton/ay-driver/hardware/psg"
	"github.com/rrwalton/ay-driver/logger"
)

// the bus operation selected by the joint level of the control lines.
type operation int

const (
	opOther operation = iota
	opInactive
	opLatchAddress
	opWriteData
)

func decodeOperation(bdir, bc1, bc2 bool) operation {
	switch {
	case !bdir && !bc1 && bc2:
		return opInactive
	case bdir && bc1 && bc2:
		return opLatchAddress
	case bdir && !bc1 && bc2:
		return opWriteData
	}
	return opOther
}

// Monitor is the receiver side of the bus protocol. It consumes the same
// Line/Transfer capability surface as the real chip and reconstructs the
// register writes implied by the control-line edges.
//
// The register file and the ordered write log are all the state the Monitor
// keeps. It never models the synthesis side of the chip.
type Monitor struct {
	// current levels of the control lines
	bdir bool
	bc1  bool
	bc2  bool

	// operation currently selected by the control lines
	op operation

	// state of the external shift register and latch
	pending  uint8
	busByte  uint8
	latchLow bool

	// a byte has been presented on the bus since the last time the chip
	// acted on one. the control lines are set one at a time so the line
	// levels pass through transient operations that the physical chip is
	// too slow to act on; requiring a fresh byte before acting filters
	// those transients out
	fresh bool

	// register-select latch
	selected uint8

	regs   [psg.NumRegisters]uint8
	writes []psg.Packet
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Reset the register file and the write log.
func (m *Monitor) Reset() {
	m.regs = [psg.NumRegisters]uint8{}
	m.writes = m.writes[:0]
}

// Register returns the current content of the addressed register.
func (m *Monitor) Register(reg psg.Register) uint8 {
	if reg >= psg.NumRegisters {
		return 0
	}
	return m.regs[reg]
}

// Writes returns every decoded register write in the order it arrived.
func (m *Monitor) Writes() []psg.Packet {
	return m.writes
}

// line is a bus.Line implementation that forwards the asserted level to the
// monitor.
type line struct {
	assert func(bool)
}

func (l *line) High() { l.assert(true) }
func (l *line) Low()  { l.assert(false) }

// BDIR returns the monitor's end of the BDIR control line.
func (m *Monitor) BDIR() bus.Line {
	return &line{assert: func(v bool) {
		m.bdir = v
		m.lineChange()
	}}
}

// BC1 returns the monitor's end of the BC1 control line.
func (m *Monitor) BC1() bus.Line {
	return &line{assert: func(v bool) {
		m.bc1 = v
		m.lineChange()
	}}
}

// BC2 returns the monitor's end of the BC2 control line.
func (m *Monitor) BC2() bus.Line {
	return &line{assert: func(v bool) {
		m.bc2 = v
		m.lineChange()
	}}
}

// LatchEnable returns the monitor's end of the latch-enable line. A byte
// sent while the line is low is presented on the bus when the line rises.
func (m *Monitor) LatchEnable() bus.Line {
	return &line{assert: func(v bool) {
		if !v {
			m.latchLow = true
			return
		}
		if m.latchLow {
			m.busByte = m.pending
			m.fresh = true
		}
		m.latchLow = false
	}}
}

// transfer is the monitor's end of the serial path into the shift register.
type transfer struct {
	m *Monitor
}

func (t *transfer) Send(data uint8) {
	t.m.pending = data
}

// Transfer returns the monitor's end of the serial byte path.
func (m *Monitor) Transfer() bus.Transfer {
	return &transfer{m: m}
}

func (m *Monitor) lineChange() {
	op := decodeOperation(m.bdir, m.bc1, m.bc2)
	if op == m.op {
		return
	}

	// the address is captured when the latch-address operation ends; by
	// then the address byte is stable on the bus
	if m.op == opLatchAddress && m.fresh {
		m.fresh = false
		m.selected = m.busByte & 0x0f
		if m.selected >= psg.NumRegisters {
			logger.Logf("monitor", "address %#02x selects no register", m.selected)
		}
	}

	// the data byte is latched on the edge into the write-data operation
	if op == opWriteData && m.fresh {
		m.fresh = false
		if m.selected < psg.NumRegisters {
			m.regs[m.selected] = m.busByte
			m.writes = append(m.writes, psg.Packet{
				Register: psg.Register(m.selected),
				Value:    m.busByte,
			})
		} else {
			logger.Logf("monitor", "discarding write of %#02x to address %#02x", m.busByte, m.selected)
		}
	}

	m.op = op
}
