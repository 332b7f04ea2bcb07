// Command primegen prints primes in increasing order and reports how long
// the run took. It either prints the first -count primes or only the single
// -nth prime, optionally driven by a YAML run file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/charmingruby/primegen/internal/config"
	"github.com/charmingruby/primegen/internal/timeutil"
	"github.com/charmingruby/primegen/prime"
	"github.com/charmingruby/primegen/stream"
)

// progressEvery throttles progress lines on long -nth runs.
const progressEvery = 100000

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "primegen:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to a YAML run file")
		count      = flag.Uint64("count", 0, "print the first N primes")
		nth        = flag.Uint64("nth", 0, "print only the N-th prime (1-indexed)")
		quiet      = flag.Bool("quiet", false, "suppress everything except the final value")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	// Flags given on the command line win over the run file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Count = *count
		case "nth":
			cfg.Nth = *nth
		case "quiet":
			cfg.Quiet = *quiet
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Nth > 0 {
		return printNth(cfg)
	}
	return printFirst(cfg)
}

func printNth(cfg config.Run) error {
	showProgress := !cfg.Quiet && term.IsTerminal(int(os.Stderr.Fd()))

	sw := timeutil.Start()
	s := prime.New()
	var p uint64
	for i := uint64(1); i <= cfg.Nth; i++ {
		var err error
		if p, err = s.Next(); err != nil {
			return errors.Wrapf(err, "producing prime %d of %d", i, cfg.Nth)
		}
		if showProgress && i%progressEvery == 0 && i < cfg.Nth {
			fmt.Fprintf(os.Stderr, "\r%d/%d primes", i, cfg.Nth)
		}
	}
	if showProgress && cfg.Nth >= progressEvery {
		fmt.Fprint(os.Stderr, "\r")
	}

	elapsed := sw.Elapsed()
	if cfg.Quiet {
		fmt.Println(p)
		return nil
	}
	fmt.Printf("prime %d = %d (%s)\n", cfg.Nth, p, elapsed)
	return nil
}

func printFirst(cfg config.Run) error {
	sw := timeutil.Start()
	it := stream.Take(prime.New().Stream(), int(cfg.Count))
	var last uint64
	for {
		p, err := it.Next()
		if errors.Is(err, stream.ErrExhausted) {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "producing the first %d primes", cfg.Count)
		}
		last = p
		if !cfg.Quiet {
			fmt.Println(p)
		}
	}

	elapsed := sw.Elapsed()
	if cfg.Quiet {
		fmt.Println(last)
		return nil
	}
	fmt.Printf("%d primes in %s\n", cfg.Count, elapsed)
	return nil
}
