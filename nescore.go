// This file is part of nescore.
//
// nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nescore.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	"github.com/bradleyjkemp/memviz"
	"github.com/nescore/nescore/hardware/cpu"
	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/hardware/memory"
	"github.com/nescore/nescore/hardware/memory/cpubus"
	"github.com/nescore/nescore/logger"
	"github.com/nescore/nescore/modalflag"
	"github.com/nescore/nescore/statsview"
	"golang.org/x/term"
)

// exit values
const (
	exitOK     = 0
	exitArgs   = 10
	exitMode   = 20
	exitFault  = 30
	exitSignal = 130
)

// interrupted is set by the signal handler and checked between instructions.
var interrupted atomic.Bool

func main() {
	// #ctrlc handler. the CPU is stopped at the next instruction boundary
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		interrupted.Store(true)
	}()

	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. returns the
// value to be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TABLE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "TABLE":
		err = table(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		switch {
		case errors.Is(err, cpu.DecodeError), errors.Is(err, cpu.AddressingModeError):
			return exitFault
		case errors.Is(err, errInterrupted):
			return exitSignal
		}
		return exitMode
	}

	return exitOK
}

var errInterrupted = errors.New("interrupted")

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin := md.AddAddress("origin", cpubus.DefaultOrigin, "address at which the program is loaded")
	hexProgram := md.AddString("hex", "", "program as hex bytes (instead of a file)")
	limit := md.AddInt("limit", 0, "maximum number of instructions to execute (0 is unlimited)")
	trace := md.AddBool("trace", false, "log every instruction")
	log := md.AddBool("log", false, "echo log to stdout")
	memvizFile := md.AddString("memviz", "", "write graphviz dot of final CPU state to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	md.AdditionalHelp("the program file must be a raw binary image")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logger.SetEcho(logger.NewColorizer(output))
		} else {
			logger.SetEcho(output)
		}
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		stop := statsview.Launch(output)
		defer stop()
	}

	var program []uint8

	if *hexProgram != "" {
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("program file not required when using -hex")
		}
		program, err = hex.DecodeString(strings.Join(strings.Fields(*hexProgram), ""))
		if err != nil {
			return fmt.Errorf("hex program: %w", err)
		}
	} else {
		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("program file required")
		case 1:
			program, err = os.ReadFile(md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("too many arguments for %s mode", md)
		}
	}

	logger.Logf(logger.Allow, "nescore", "loading %d bytes at %#04x", len(program), *origin)

	mc := cpu.NewCPU(memory.NewRAM())
	mc.SetTrace(*trace)

	err = mc.Load(*origin, program)
	if err != nil {
		return err
	}
	mc.Reset()

	var count int
	err = mc.RunWith(func() (bool, error) {
		if interrupted.Load() {
			return false, errInterrupted
		}
		if *limit > 0 && count >= *limit {
			logger.Logf(logger.Allow, "nescore", "instruction limit (%d) reached", *limit)
			return false, nil
		}
		count++
		return true, nil
	})

	fmt.Fprintln(output, mc)
	fmt.Fprintf(output, "%d instructions executed\n", count)

	if *memvizFile != "" {
		merr := writeMemviz(*memvizFile, mc.Snapshot())
		if merr != nil {
			logger.Log(logger.Allow, "nescore", merr)
		}
	}

	return err
}

// writeMemviz writes the CPU snapshot to a file as a graphviz dot graph.
func writeMemviz(filename string, s cpu.Snapshot) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, &s)

	return nil
}

func table(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tbl := instructions.NewTable()
	tbl.Walk(func(defn *instructions.Definition) {
		fmt.Fprintln(output, defn)
	})
	fmt.Fprintf(output, "%d opcodes defined, %d undefined\n", tbl.Len(), 256-tbl.Len())

	return nil
}
