// SPDX-License-Identifier: MIT

// Command lvtransform runs points through a transformation pipeline file.
//
//	lvtransform -f pipeline.yaml [-format toml] [-in points.txt] [-v]
//
// Points are read one per line as "x y" or "x y z", matching the pipeline's
// dimensions. Blank lines and lines starting with '#' are skipped. Results
// are written to stdout in the same layout.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("app", "lvtransform").Logger()
	log.Logger = logger
	return logger
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("lvtransform failed")
	}
}
