// Command circlepack places circles of several radii inside a rectangle with
// the genetic search of package ga.
//
// Usage:
//
//	circlepack solve [flags] CONFIG     run the solver, write the result
//	circlepack plot  [flags] RESULT     draw a result file
//	circlepack runs  [flags]            list recorded runs
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/circlepack/codec"
	"github.com/katalvlaran/circlepack/crossover"
	"github.com/katalvlaran/circlepack/fitness"
	"github.com/katalvlaran/circlepack/ga"
	"github.com/katalvlaran/circlepack/history"
	"github.com/katalvlaran/circlepack/mutation"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/populate"
	"github.com/katalvlaran/circlepack/render"
	"github.com/katalvlaran/circlepack/rng"
)

var errUsage = errors.New("usage: circlepack solve|plot|runs [flags] [FILE]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "solve":
		return runSolve(ctx, args[1:], stdout, stderr)
	case "plot":
		return runPlot(args[1:], stderr)
	case "runs":
		return runRuns(ctx, args[1:], stdout, stderr)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

type solveFlags struct {
	size     int
	iters    int
	cross    float64
	mutate   float64
	alpha    float64
	seed     uint64
	init     string
	mutation string
	fitness  string
	samples  int
	workers  int
	timeout  time.Duration
	out      string
	plot     string
	progress string
	store    string
	dbPath   string
	quiet    bool
}

func (f *solveFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.size, "size", ga.DefaultPopulationSize, "population size")
	fs.IntVar(&f.iters, "iters", ga.DefaultGenerations, "number of generations")
	fs.Float64Var(&f.cross, "cross", ga.DefaultCrossRatio, "crossover probability per pair")
	fs.Float64Var(&f.mutate, "mutate", ga.DefaultMutateRatio, "mutation probability per child")
	fs.Float64Var(&f.alpha, "alpha", crossover.DefaultAlpha, "BLX-alpha exploration factor")
	fs.Uint64Var(&f.seed, "seed", rng.DefaultSeed, "random seed")
	fs.StringVar(&f.init, "init", populate.Heuristic.String(), "init strategy: random|heuristic")
	fs.StringVar(&f.mutation, "mutation", mutation.Dynamic.String(), "mutation operator: dynamic|static")
	fs.StringVar(&f.fitness, "fitness", fitness.InverseOverlapKind.String(), "fitness: overlap|coverage")
	fs.IntVar(&f.samples, "samples", fitness.DefaultSamples, "Monte Carlo samples of the coverage fitness")
	fs.IntVar(&f.workers, "workers", 1, "goroutines for the pair loop and sampling")
	fs.DurationVar(&f.timeout, "timeout", 0, "stop after this long (0 = no limit)")
	fs.StringVar(&f.out, "out", "", "result file (default stdout)")
	fs.StringVar(&f.plot, "plot", "", "write a picture of the result (png, svg, pdf)")
	fs.StringVar(&f.progress, "progress", "", "write a fitness-by-generation chart")
	fs.StringVar(&f.store, "store", "", "history backend: memory|sqlite (empty = off)")
	fs.StringVar(&f.dbPath, "db-path", "circlepack.db", "sqlite database path")
	fs.BoolVar(&f.quiet, "quiet", false, "do not log every generation")
}

func (f *solveFlags) options() (ga.Options, error) {
	opts := ga.DefaultOptions()
	opts.PopulationSize = f.size
	opts.Generations = f.iters
	opts.CrossRatio = f.cross
	opts.MutateRatio = f.mutate
	opts.Alpha = f.alpha
	opts.Seed = f.seed
	opts.Workers = f.workers
	opts.TimeLimit = f.timeout
	opts.Coverage = fitness.CoverageOptions{Samples: f.samples, Workers: f.workers}

	var err error
	if opts.Init, err = populate.ParseStrategy(f.init); err != nil {
		return opts, fmt.Errorf("-init %q: %w", f.init, err)
	}
	if opts.Mutation, err = mutation.ParseKind(f.mutation); err != nil {
		return opts, fmt.Errorf("-mutation %q: %w", f.mutation, err)
	}
	if opts.Fitness, err = fitness.ParseKind(f.fitness); err != nil {
		return opts, fmt.Errorf("-fitness %q: %w", f.fitness, err)
	}
	return opts, nil
}

func runSolve(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f solveFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: solve needs one CONFIG file", errUsage)
	}
	logger := log.New(stderr, "circlepack: ", log.LstdFlags)

	cfg, err := readConfig(fs.Arg(0))
	if err != nil {
		return err
	}
	opts, err := f.options()
	if err != nil {
		return err
	}

	var (
		store    history.Store
		record   history.Run
		recorder func(ga.GenerationStats)
		recErr   = func() error { return nil }
	)
	if f.store != "" {
		if store, err = history.NewStore(f.store, f.dbPath); err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err = store.Init(ctx); err != nil {
			return err
		}
		record = history.NewRun(cfg, opts)
		recorder, recErr = history.Recorder(ctx, store, record.ID)
	}

	opts.OnGeneration = func(st ga.GenerationStats) {
		if !f.quiet {
			logger.Printf("gen=%d best=%e generation=%e children=%d mutations=%d fallbacks=%d",
				st.Generation, st.Best, st.GenerationBest, st.Children, st.Mutations, st.MatchFallbacks)
		}
		if recorder != nil {
			recorder(st)
		}
	}

	logger.Printf("solving n=%d groups=%d in %gx%g (size=%d iters=%d seed=%d)",
		cfg.N, len(cfg.Counts), cfg.W, cfg.H, opts.PopulationSize, opts.Generations, opts.Seed)
	start := time.Now()
	res, err := ga.Solve(ctx, cfg, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	cov := fitness.CoverageArea(cfg, res.Best, rng.FromSeed(opts.Seed),
		fitness.CoverageOptions{Samples: fitness.PreciseSamples, Workers: opts.Workers})
	logger.Printf("stopped: %s after %d generations", res.Reason, res.Generations)
	logger.Printf("Elapsed time: %dms", elapsed.Milliseconds())
	logger.Printf("Coverage area: %g/%g", cov, cfg.Area())

	if err = writeResult(f.out, stdout, cfg, res.Best); err != nil {
		return err
	}
	if f.plot != "" {
		p, err := render.Placement(cfg, res.Best)
		if err != nil {
			return err
		}
		if err = render.Save(p, f.plot); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
	}
	if f.progress != "" {
		p, err := render.Progress(res.History)
		if err != nil {
			return err
		}
		if err = render.Save(p, f.progress); err != nil {
			return fmt.Errorf("progress: %w", err)
		}
	}

	if store != nil {
		if err = recErr(); err != nil {
			return fmt.Errorf("history: %w", err)
		}
		record.Finish(res, cov, elapsed)
		if err = store.SaveRun(ctx, record); err != nil {
			return fmt.Errorf("history: %w", err)
		}
		logger.Printf("recorded run %s", record.ID)
	}

	return nil
}

func readConfig(path string) (placement.Configuration, error) {
	file, err := os.Open(path)
	if err != nil {
		return placement.Configuration{}, err
	}
	defer file.Close()

	cfg, err := codec.ParseConfig(file)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func writeResult(path string, stdout io.Writer, cfg placement.Configuration, s placement.State) error {
	if path == "" {
		return codec.FormatResult(stdout, cfg, s)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = codec.FormatResult(file, cfg, s); err != nil {
		_ = file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

func runPlot(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "result.png", "output image (png, svg, pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: plot needs one RESULT file", errUsage)
	}

	file, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := codec.ParseResult(file)
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}
	p, err := render.Circles(res.W, res.H, res.Circles())
	if err != nil {
		return err
	}
	return render.Save(p, *out)
}

func runRuns(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dbPath := fs.String("db-path", "circlepack.db", "sqlite database path")
	generations := fs.Bool("generations", false, "also print per-generation statistics")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := history.NewSQLiteStore(*dbPath)
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(ctx)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%s %s n=%d size=%d iters=%d seed=%d coverage=%g/%g reason=%s elapsed=%s\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Config.N, r.PopulationSize, r.Generations,
			r.Seed, r.Coverage, r.Config.Area(), r.Reason, r.Elapsed)
		if !*generations {
			continue
		}
		gens, _, err := store.GetGenerations(ctx, r.ID)
		if err != nil {
			return err
		}
		for _, st := range gens {
			fmt.Fprintf(stdout, "  gen=%d best=%e children=%d fallbacks=%d\n",
				st.Generation, st.Best, st.Children, st.MatchFallbacks)
		}
	}
	return nil
}
