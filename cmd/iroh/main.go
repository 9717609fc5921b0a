// iroh is a chess engine: it searches positions, replays move lists,
// analyses batches of positions, and plays interactively.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/iroh-go/internal/config"
	"github.com/lgbarn/iroh-go/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run(os.Stdin))
}

// run executes the selected mode and returns the process exit code: 0 on
// success, 1 when the mode fails, 2 for bad usage. Returning instead of
// exiting lets the deferred signal handler and file closes run.
func run(stdin io.Reader) int {
	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("iroh version %s\n", programVersion)
		return 0
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging and output files
	logCloser, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(logCloser)

	outCloser, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(outCloser)

	log := newLogger(cfg.LogFile, cfg.LogLevel)

	switch {
	case *batchFile != "":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = runBatchFile(ctx, cfg, log, *batchFile)
	case *playMode:
		side, perr := parseColour(*humanSide)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", perr)
			return 2
		}
		err = runPlay(cfg, log, *fenPosition, side, stdin)
	case *moveList != "":
		err = runMoves(cfg, *fenPosition, strings.Fields(*moveList))
	case *fenPosition != "":
		err = runSearch(cfg, log, *fenPosition)
	default:
		usage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile points cfg's log writer at the -l or -L file. -L (append)
// wins when both are given. The returned closer is nil when logging stays on
// stderr.
func setupLogFile(cfg *config.Config) (io.Closer, error) {
	var file *os.File
	var err error

	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %s", *appendLog)
		}
	case *logFile != "":
		file, err = os.Create(*logFile)
		if err != nil {
			return nil, errors.Wrapf(err, "creating log file %s", *logFile)
		}
	default:
		return nil, nil
	}

	cfg.LogFile = file
	return file, nil
}

// setupOutputFile configures the output file based on command-line flags.
// The returned closer is nil when output stays on stdout.
func setupOutputFile(cfg *config.Config) (io.Closer, error) {
	if *outputFile == "" {
		return nil, nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "creating output file %s", *outputFile)
	}
	cfg.SetOutput(file)
	return file, nil
}

func closeFile(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: iroh [options]\n\n")
	fmt.Fprintf(os.Stderr, "A chess engine with a fixed-depth alpha-beta search.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  -fen FEN              Print the best move for the position\n")
	fmt.Fprintf(os.Stderr, "  -moves \"e4 e5 ...\"    Apply moves (from -fen if given) and print the game\n")
	fmt.Fprintf(os.Stderr, "  -batch FILE           Analyse one FEN per line\n")
	fmt.Fprintf(os.Stderr, "  -play                 Play against the engine on stdin/stdout\n")
}
