package main

import (
	"fmt"
	"os"

	"github.com/businessperformancetuning/zfree/parser"
	"github.com/businessperformancetuning/zfree/report"
	"github.com/businessperformancetuning/zfree/util"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
)

const (
	meminfoPath  = "/proc/meminfo"
	swapsPath    = "/proc/swaps"
	pressurePath = "/proc/pressure/memory"
)

// gather reads all needed kernel files up front. These files have
// ephemeral contents so they are captured to memory before any of them
// is parsed. Only meminfo is mandatory; swaps and pressure may be
// legitimately absent.
func gather() (meminfo, swaps, pressure []byte, err error) {
	meminfo, err = util.Measure(meminfoPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read %v: %v", meminfoPath,
			err)
	}
	swaps, _ = util.Measure(swapsPath)
	pressure, _ = util.Measure(pressurePath)
	return meminfo, swaps, pressure, nil
}

// psiLine formats the trailing pressure stall line.
func psiLine(p *parser.Pressure) string {
	return fmt.Sprintf("psi some/full: %.2f, %.2f, %.2f / "+
		"%.2f, %.2f, %.2f\n",
		p.SomeAvg10, p.SomeAvg60, p.SomeAvg300,
		p.FullAvg10, p.FullAvg60, p.FullAvg300)
}

func _main() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()
	if len(args) != 0 {
		return fmt.Errorf("unrecognized argument: %v", args[0])
	}

	rawMeminfo, rawSwaps, rawPressure, err := gather()
	if err != nil {
		return err
	}

	mi, err := parser.ProcessMeminfo(rawMeminfo)
	if err != nil {
		return fmt.Errorf("%v: %v", meminfoPath, err)
	}
	log.Tracef("meminfo record: %v", spew.Sdump(mi))

	var devs []parser.SwapDevice
	if len(rawSwaps) != 0 {
		devs, err = parser.ProcessSwaps(rawSwaps)
		if err != nil {
			return fmt.Errorf("%v: %v", swapsPath, err)
		}
	}

	// Locate the zram swap device, if any, and capture its mm_stat. A
	// zram entry in the swap list with an unreadable mm_stat is an
	// inconsistency worth failing over; no zram device at all is a
	// normal state.
	var mm *parser.MMStat
	if !cfg.NoZram {
		if z := parser.ZramDevice(devs); z != nil {
			path := parser.MMStatPath(z)
			raw, err := util.Measure(path)
			if err != nil {
				return fmt.Errorf("zram swap %v found but "+
					"%v is unreadable: %v", z.Filename,
					path, err)
			}
			mm, err = parser.ProcessMMStat(raw)
			if err != nil {
				return fmt.Errorf("%v: %v", path, err)
			}
			log.Debugf("zram swap device: %v", z.Filename)
		}
	}

	var swap *report.Swap
	if !cfg.NoSwap {
		disk, err := parser.DiskDevice(devs)
		if err != nil {
			return err
		}
		swap = parser.CubeSwap(disk)
	}

	mem := parser.CubeMeminfo(mi, mm)
	log.Tracef("memory row: %v", spew.Sdump(mem))

	// Parse the pressure stall info before rendering anything so that
	// a fatal condition never produces partial output.
	var psi *parser.Pressure
	if !cfg.NoPSI && len(rawPressure) != 0 {
		psi, err = parser.ProcessPressure(rawPressure)
		if err != nil {
			return fmt.Errorf("%v: %v", pressurePath, err)
		}
	}

	cols := cfg.columns
	if cols == nil {
		cols = report.DefaultColumns(mem.Zram != nil)
	}

	table, err := report.Format(cols, mem, swap, report.Options{
		Unit:   cfg.unit,
		NoUnit: cfg.NoUnit,
		Human:  cfg.Human,
		SI:     cfg.SI,
		Width:  cfg.Width,
	})
	if err != nil {
		return err
	}

	fmt.Print(table)
	if psi != nil {
		fmt.Print(psiLine(psi))
	}

	return nil
}

func main() {
	err := _main()
	if err != nil {
		// go-flags errors, including the help text, have already
		// been printed by loadConfig.
		if _, ok := err.(*flags.Error); !ok {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}
