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

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rrwalton/ay-driver/hardware"
	"github.com/rrwalton/ay-driver/hardware/clocks"
	"github.com/rrwalton/ay-driver/hardware/monitor"
	"github.com/rrwalton/ay-driver/hardware/periphio"
	"github.com/rrwalton/ay-driver/hardware/psg"
	"github.com/rrwalton/ay-driver/logger"
	"github.com/rrwalton/ay-driver/version"

	"github.com/pkg/term"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func main() {
	mode := "demo"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode = args[0]
		args = args[1:]
	}

	var err error

	switch mode {
	case "demo":
		err = demo(args)
	case "keys":
		err = keys(args)
	case "version":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version())
	default:
		err = fmt.Errorf("unknown mode: %s (try demo, keys or version)", mode)
	}

	if err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(10)
	}
}

// the chip as seen by the command modes. when there is no real hardware the
// monitor stands in for the chip and decoded register writes are echoed to
// the terminal.
type chip struct {
	ay  *hardware.AY38910
	mon *monitor.Monitor

	// number of monitor writes already echoed
	seen int

	cleanup []func()
}

func (c *chip) close() {
	for i := len(c.cleanup) - 1; i >= 0; i-- {
		c.cleanup[i]()
	}
}

// echo any newly decoded register writes. a no-op when driving real
// hardware.
func (c *chip) echo() {
	if c.mon == nil {
		return
	}
	writes := c.mon.Writes()
	for _, w := range writes[c.seen:] {
		fmt.Printf("  %s\n", w)
	}
	c.seen = len(writes)
}

// flags common to the demo and keys modes.
type busFlags struct {
	clock uint
	gpio  bool
	spi   string
	bdir  string
	bc1   string
	bc2   string
	le    string
	log   bool
}

func (bf *busFlags) add(md *flag.FlagSet) {
	md.UintVar(&bf.clock, "clock", clocks.AtariST, "master clock frequency in Hz")
	md.BoolVar(&bf.gpio, "gpio", false, "drive real hardware over GPIO/SPI")
	md.StringVar(&bf.spi, "spi", "", "SPI port name (empty for the first available port)")
	md.StringVar(&bf.bdir, "bdir", "GPIO17", "pin name of the BDIR line")
	md.StringVar(&bf.bc1, "bc1", "GPIO27", "pin name of the BC1 line")
	md.StringVar(&bf.bc2, "bc2", "GPIO22", "pin name of the BC2 line")
	md.StringVar(&bf.le, "le", "GPIO4", "pin name of the latch-enable line")
	md.BoolVar(&bf.log, "log", false, "echo log entries to stderr")
}

func (bf *busFlags) connect() (*chip, error) {
	if bf.log {
		logger.SetEcho(os.Stderr)
	}

	if !bf.gpio {
		mon := monitor.NewMonitor()
		ay, err := hardware.NewAY38910(uint32(bf.clock), mon.Transfer(), mon.LatchEnable(), mon.BDIR(), mon.BC1(), mon.BC2())
		if err != nil {
			return nil, err
		}
		return &chip{ay: ay, mon: mon}, nil
	}

	if _, err := host.Init(); err != nil {
		return nil, err
	}

	port, err := spireg.Open(bf.spi)
	if err != nil {
		return nil, err
	}

	conn, err := port.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, err
	}

	lines := make([]*periphio.Line, 0, 4)
	for _, name := range []string{bf.le, bf.bdir, bf.bc1, bf.bc2} {
		pin := gpioreg.ByName(name)
		if pin == nil {
			port.Close()
			return nil, fmt.Errorf("no GPIO pin named %s", name)
		}
		lines = append(lines, periphio.NewLine(pin))
	}

	ay, err := hardware.NewAY38910(uint32(bf.clock), periphio.NewSPI(conn), lines[0], lines[1], lines[2], lines[3])
	if err != nil {
		port.Close()
		return nil, err
	}

	return &chip{
		ay:      ay,
		cleanup: []func(){func() { port.Close() }},
	}, nil
}

// silence the chip before handing the terminal back.
func silence(c *chip) {
	c.ay.Write(psg.MixerControl{Settings: psg.MixerSettings(0xff)})
	for _, ch := range []psg.Channel{psg.ChannelA, psg.ChannelB, psg.ChannelC} {
		c.ay.Write(psg.AmplitudeControl{Chan: ch, Mode: psg.Fixed, Level: 0})
	}
	c.echo()
}

// demo runs a small note generator: channel A plays an alternating
// four-note pattern with an envelope driven amplitude.
func demo(args []string) error {
	md := flag.NewFlagSet("demo", flag.ExitOnError)
	bf := &busFlags{}
	bf.add(md)
	cycles := md.Int("cycles", 4, "number of times around the note pattern (0 to run until interrupted)")
	if err := md.Parse(args); err != nil {
		return err
	}

	c, err := bf.connect()
	if err != nil {
		return err
	}
	defer c.close()
	defer silence(c)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	settings := psg.MixerSettings(0xff)
	settings.SetToneA(false)
	c.ay.Write(psg.MixerControl{Settings: settings})

	c.ay.Write(psg.EnvelopeShapeCycleControl{Shape: psg.RepeatedSaw})
	c.ay.Write(psg.EnvelopeFrequencyControl{Freq: 3500.0})

	c.ay.Write(psg.AmplitudeControl{Chan: psg.ChannelA, Mode: psg.Variable})
	c.ay.Write(psg.AmplitudeControl{Chan: psg.ChannelB, Mode: psg.Variable})
	c.ay.Write(psg.AmplitudeControl{Chan: psg.ChannelC, Mode: psg.Variable})
	c.echo()

	freqs := []uint32{440, 660, 220, 880}
	curr := 0

	for n := 0; *cycles == 0 || n < *cycles*len(freqs); n++ {
		select {
		case <-intChan:
			return nil
		case <-time.After(500 * time.Millisecond):
		}

		curr = (curr + 1) % len(freqs)
		fmt.Printf("%dHz\n", freqs[curr])
		c.ay.Write(psg.ToneControl{Chan: psg.ChannelA, Freq: freqs[curr]})
		c.echo()

		select {
		case <-intChan:
			return nil
		case <-time.After(50 * time.Millisecond):
		}

		next := freqs[(curr+1)%len(freqs)]
		fmt.Printf("%dHz\n", next)
		c.ay.Write(psg.ToneControl{Chan: psg.ChannelA, Freq: next})
		c.echo()
	}

	return nil
}

// one octave, starting at middle C. frequencies rounded to the nearest Hz,
// which is well inside the resolution of the tone period registers.
var keymap = map[byte]uint32{
	'a': 262, // C4
	'w': 277,
	's': 294, // D4
	'e': 311,
	'd': 330, // E4
	'f': 349, // F4
	't': 370,
	'g': 392, // G4
	'y': 415,
	'h': 440, // A4
	'u': 466,
	'j': 494, // B4
	'k': 523, // C5
}

// keys turns the home row into a small piano on channel A.
func keys(args []string) error {
	md := flag.NewFlagSet("keys", flag.ExitOnError)
	bf := &busFlags{}
	bf.add(md)
	if err := md.Parse(args); err != nil {
		return err
	}

	c, err := bf.connect()
	if err != nil {
		return err
	}
	defer c.close()
	defer silence(c)

	settings := psg.MixerSettings(0xff)
	settings.SetToneA(false)
	c.ay.Write(psg.MixerControl{Settings: settings})
	c.ay.Write(psg.AmplitudeControl{Chan: psg.ChannelA, Mode: psg.Fixed, Level: 15})
	c.echo()

	trm, err := term.Open("/dev/tty")
	if err != nil {
		return err
	}
	defer trm.Close()

	if err := trm.SetCbreak(); err != nil {
		return err
	}
	defer trm.Restore()

	fmt.Println("a-k play notes (w,e,t,y,u for the sharps). space is silence. q quits.")

	b := make([]byte, 1)
	for {
		if _, err := trm.Read(b); err != nil {
			return err
		}

		switch b[0] {
		case 'q', 0x1b: // escape
			return nil
		case ' ':
			c.ay.Write(psg.AmplitudeControl{Chan: psg.ChannelA, Mode: psg.Fixed, Level: 0})
		default:
			freq, ok := keymap[b[0]]
			if !ok {
				continue
			}
			c.ay.Write(psg.ToneControl{Chan: psg.ChannelA, Freq: freq})
			c.ay.Write(psg.AmplitudeControl{Chan: psg.ChannelA, Mode: psg.Fixed, Level: 15})
		}
		c.echo()
	}
}
