// Command photonq runs the factoring-15 demonstration circuit: it composes
// the 12-mode order-finding interferometer, tabulates the post-selected
// output distribution for a chosen logical input, and renders the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/photonq/analyzer"
	"github.com/katalvlaran/photonq/circuit"
	"github.com/katalvlaran/photonq/dualrail"
	"github.com/katalvlaran/photonq/gates"
	"github.com/katalvlaran/photonq/unitary"
)

func main() {
	var (
		input      = flag.String("input", "0001", "logical input bits, one per qubit (x1 x2 f1 f2)")
		dump       = flag.String("dump", "", "write the circuit spec as JSON to this path and exit")
		matrix     = flag.Bool("matrix", false, "print the composed global unitary")
		sequential = flag.Bool("sequential", false, "disable the worker pool")
		workers    = flag.Int("workers", analyzer.DefaultMaxWorkers, "max worker count for the analyzer pool")
		level      = flag.String("level", "info", "log level: debug, info, warn, error")
		timeout    = flag.Duration("timeout", time.Minute, "overall analysis deadline")
	)
	flag.Parse()

	log := newLogger(*level)

	if err := run(log, *input, *dump, *matrix, *sequential, *workers, *timeout); err != nil {
		log.Fatal().Err(err).Msg("photonq failed")
	}
}

// newLogger builds a console zerolog logger at the requested level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}

func run(log zerolog.Logger, input, dump string, matrix, sequential bool, workers int, timeout time.Duration) error {
	c, enc, err := gates.ShorFifteen()
	if err != nil {
		return err
	}
	log.Info().
		Int("modes", c.Modes()).
		Int("components", c.Len()).
		Int("qubits", enc.Qubits()).
		Msg("built order-finding circuit for N=15, a=11")

	if dump != "" {
		data, err := circuit.MarshalSpec(c)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dump, data, 0o644); err != nil {
			return err
		}
		log.Info().Str("path", dump).Msg("circuit spec written")

		return nil
	}

	if matrix {
		u, err := unitary.Compose(c)
		if err != nil {
			return err
		}
		fmt.Println(unitary.Format(u, 4))
	}

	in, err := parseQubits(input, enc.Qubits())
	if err != nil {
		return err
	}
	inFock, err := enc.ToFock(in)
	if err != nil {
		return err
	}

	// Post-selection: tabulate against every codeword of the encoding.
	outputs := make([]analyzer.Labeled, 0, 1<<enc.Qubits())
	for v := 0; v < 1<<enc.Qubits(); v++ {
		q := make(dualrail.QubitState, enc.Qubits())
		for i := range q {
			q[i] = v&(1<<(enc.Qubits()-1-i)) != 0
		}
		f, err := enc.ToFock(q)
		if err != nil {
			return err
		}
		outputs = append(outputs, analyzer.Labeled{Label: q.String(), State: f})
	}

	minWorkers := analyzer.DefaultMinWorkers
	if workers < minWorkers {
		minWorkers = 1
		if workers < 1 {
			workers = 1
		}
	}
	opts := []analyzer.Option{analyzer.WithWorkers(minWorkers, workers)}
	if sequential {
		opts = append(opts, analyzer.WithSequential())
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	table, err := analyzer.Distribution(ctx, c,
		[]analyzer.Labeled{{Label: in.String(), State: inFock}}, outputs, opts...)
	if err != nil {
		return err
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Float64("post_selected_total", table.Total()).
		Msg("distribution computed")

	fmt.Println(renderTable(in.String(), table))

	return nil
}

// parseQubits turns a bit string like "0001" into a logical state.
func parseQubits(s string, want int) (dualrail.QubitState, error) {
	s = strings.TrimSpace(s)
	if len(s) != want {
		return nil, fmt.Errorf("input must have %d bits, got %q", want, s)
	}
	q := make(dualrail.QubitState, want)
	for i, r := range s {
		switch r {
		case '0':
			q[i] = false
		case '1':
			q[i] = true
		default:
			return nil, fmt.Errorf("input bit %d is %q, want 0 or 1", i, r)
		}
	}

	return q, nil
}
