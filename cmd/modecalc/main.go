// Command modecalc computes Earth normal-mode eigenfrequencies for a layered
// model file by driving the external minos_bran solver.
// It parses flags, loads the model, runs the enabled mode families, and
// prints the aggregated mode table (or frequencies only).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/seisgo/minos"
	"github.com/seisgo/minos/internal/check"
	"github.com/seisgo/minos/internal/display"
	"github.com/seisgo/minos/internal/logging"
	"github.com/seisgo/minos/internal/term"
	"github.com/seisgo/minos/model"
)

// version is set at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	opts := minos.DefaultOptions()

	var (
		modelPath   string
		noRadial    bool
		noToroidal  bool
		noSpher     bool
		noIC        bool
		freqOnly    bool
		checkOnly   bool
		verbose     bool
		colorMode   string
		logFile     string
		showVersion bool
	)

	flag.StringVarP(&modelPath, "model", "m", "", "Layered model file (YAML)")
	flag.StringVar(&opts.SolverPath, "solver", opts.SolverPath, "Solver executable name or path")
	flag.Float64Var(&opts.Eps, "eps", opts.Eps, "Integration accuracy")
	flag.Float64Var(&opts.WGrav, "wgrav", opts.WGrav, "Gravity cutoff frequency (mHz)")
	flag.IntVar(&opts.LMin, "lmin", opts.LMin, "Minimum angular order")
	flag.IntVar(&opts.LMax, "lmax", opts.LMax, "Maximum angular order")
	flag.Float64Var(&opts.WMin, "wmin", opts.WMin, "Minimum frequency (mHz)")
	flag.Float64Var(&opts.WMax, "wmax", opts.WMax, "Maximum frequency (mHz)")
	flag.IntVar(&opts.NMin, "nmin", opts.NMin, "Minimum branch number")
	flag.IntVar(&opts.NMax, "nmax", opts.NMax, "Maximum branch number")
	flag.Float64Var(&opts.RefFrequency, "fref", opts.RefFrequency, "Reference frequency for attenuation normalization (Hz)")

	// Negated family flags so all families stay enabled unless switched off.
	flag.BoolVar(&noRadial, "no-radial", false, "Skip radial modes")
	flag.BoolVar(&noToroidal, "no-toroidal", false, "Skip toroidal modes")
	flag.BoolVar(&noSpher, "no-spheroidal", false, "Skip spheroidal modes")
	flag.BoolVar(&noIC, "no-ic-toroidal", false, "Skip inner-core toroidal modes")

	flag.BoolVar(&freqOnly, "freq-only", false, "Print eigenfrequencies only")
	flag.BoolVar(&checkOnly, "check", false, "Check solver availability and exit")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	flag.StringVar(&colorMode, "color", "auto", "Color output: auto | always | never")
	flag.StringVar(&logFile, "log-file", "", "Append log output to file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("modecalc v" + version)
		return
	}

	log, err := logging.New(term.ColorMode(colorMode), logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "modecalc: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()
	log.SetVerbose(verbose)
	opts.Logger = log

	if checkOnly {
		check.RunCheck(opts.SolverPath, log)
		return
	}

	if modelPath == "" {
		fmt.Fprintln(os.Stderr, "modecalc: --model is required")
		flag.Usage()
		os.Exit(1)
	}

	opts.Radial = !noRadial
	opts.Toroidal = !noToroidal
	opts.Spheroidal = !noSpher
	opts.InnerCoreToroidal = !noIC

	m, err := model.Load(modelPath)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	if _, err := check.CheckSolver(opts.SolverPath); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("model: %s (%d layers)", m.Name, len(m.Layers))
	log.Info("l %d-%d, f %g-%g mHz, n %d-%d, eps %g",
		opts.LMin, opts.LMax, opts.WMin, opts.WMax, opts.NMin, opts.NMax, opts.Eps)

	if freqOnly {
		fs, err := minos.ComputeEigenfrequencies(ctx, m, opts)
		if err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
		fmt.Print(display.FrequencyTable(fs))
		log.Success("%d modes", fs.Len())
		return
	}

	set, err := minos.ComputeEigenmodes(ctx, m, opts)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	fmt.Print(display.ModeTable(set.Modes()))
	logRange(log, set)
	log.Success("%d modes", set.Len())
}

// logRange reports the slowest and fastest computed modes at debug level.
func logRange(log *logging.Logger, set *minos.ModeSet) {
	modes := set.Modes()
	if len(modes) == 0 {
		return
	}
	lo, hi := modes[0], modes[0]
	for _, m := range modes {
		if m.Frequency < lo.Frequency {
			lo = m
		}
		if m.Frequency > hi.Frequency {
			hi = m
		}
	}
	log.Debug("range: %s at %s (%s) to %s at %s (%s)",
		lo.Name(), display.FormatFrequency(lo.Frequency), display.FormatPeriod(lo.Period),
		hi.Name(), display.FormatFrequency(hi.Frequency), display.FormatPeriod(hi.Period))
}
