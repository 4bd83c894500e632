// Command phflash runs the six reference pressure-enthalpy flash
// scenarios and prints each result, one call to flash.Calculate per row.
//
// With -trace, the outer Newton loop's |ΔH| history for each scenario is
// additionally plotted to a PNG file via diagnostics.DrawResidual.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/solventus/phflash"
	"github.com/solventus/phflash/diagnostics"
	"github.com/solventus/phflash/flash"
)

type scenario struct {
	name  string
	z     phflash.Vec
	p     float64
	hStar float64
}

var scenarios = []scenario{
	{"1: pure H2O saturated vapor", phflash.Vec{0, 0, 0, 0, 1}, 101325, -42000},
	{"2: pure H2O two-phase", phflash.Vec{0, 0, 0, 0, 1}, 101325, -45000},
	{"3: H2/N2 vapor @ 2 MPa", phflash.Vec{0.7, 0.3, 0, 0, 0}, 2e6, -1000},
	{"4: H2/N2 vapor @ 10 MPa", phflash.Vec{0.5, 0.5, 0, 0, 0}, 1e7, -5000},
	{"5: NH3/H2O two-phase", phflash.Vec{0, 0, 0, 0.4, 0.6}, 5e5, -48000},
	{"6: O2/N2 cryogenic near-liquid", phflash.Vec{0, 0.79, 0.21, 0, 0}, 101325, -6900},
}

func main() {
	trace := flag.Bool("trace", false, "plot the outer-loop convergence trace for each scenario")
	outDir := flag.String("outdir", ".", "directory to write trace plots into when -trace is set")
	flag.Parse()

	opts := flash.DefaultOptions()

	for i, sc := range scenarios {
		var tr *diagnostics.Trace
		if *trace {
			tr = &diagnostics.Trace{}
			opts.Trace = tr
		}

		state, err := flash.Calculate(sc.z, sc.p, sc.hStar, opts, nil)
		if err != nil {
			log.Printf("scenario %q: %v", sc.name, err)
			continue
		}

		fmt.Printf("scenario %q: T=%.3f K  beta=%.4f  iterations=%d\n", sc.name, state.T, state.Beta, state.Iterations)
		fmt.Printf("  x=%v\n  y=%v\n  Z_L=%.5f  Z_V=%.5f\n", state.X, state.Y, state.ZL, state.ZV)

		if *trace && tr != nil && len(tr.Iteration) > 0 {
			path := fmt.Sprintf("%s/scenario-%d-residual.png", *outDir, i+1)
			if perr := diagnostics.DrawResidual(&diagnostics.ResidualConfig{Title: sc.name}, path, tr); perr != nil {
				log.Printf("scenario %q: plotting trace: %v", sc.name, perr)
			} else {
				fmt.Printf("  trace written to %s\n", path)
			}
		}
	}

	os.Exit(0)
}
