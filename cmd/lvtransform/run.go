// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/katalvlaran/lvmath/pipeline"
)

var errNoPipeline = errors.New("missing -f pipeline file")

func run(args []string, stdin io.Reader, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("lvtransform", flag.ContinueOnError)
	file := fs.String("f", "", "pipeline file (.yaml, .yml or .toml)")
	format := fs.String("format", "", "pipeline format, overriding the file extension: yaml|toml")
	input := fs.String("in", "", "points file (defaults to stdin)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := initLogger(*verbose)

	if *file == "" {
		return errNoPipeline
	}

	var opts []pipeline.Option
	if *format != "" {
		f, err := pipeline.ParseFormat(*format)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithFormat(f))
	}

	spec, err := pipeline.LoadFile(*file, opts...)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("pipeline", spec.Name).
		Int("dimensions", spec.Dimensions).
		Int("steps", len(spec.Steps)).
		Msg("loaded pipeline")

	in := stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			return fmt.Errorf("open points: %w", err)
		}
		defer f.Close()
		in = f
	}

	w := bufio.NewWriter(stdout)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("write points: %w", ferr)
		}
	}()

	switch spec.Dimensions {
	case 2:
		tr, err := pipeline.Build2D(spec)
		if err != nil {
			return err
		}
		logStages(tr.Stages())
		return transform(in, w, tr.ApplyAll, toPosition2, 2)
	default:
		tr, err := pipeline.Build3D(spec)
		if err != nil {
			return err
		}
		logStages(tr.Stages())
		return transform(in, w, tr.ApplyAll, toPosition3, 3)
	}
}

func logStages(n int) {
	log.Debug().Int("stages", n).Msg("built transform")
}

func toPosition2(xs []float64) linalg.Position2[float64] {
	return linalg.Position2[float64]{xs[0], xs[1]}
}

func toPosition3(xs []float64) linalg.Position3[float64] {
	return linalg.Position3[float64]{xs[0], xs[1], xs[2]}
}

// transform reads every point, applies the pipeline to the batch and writes
// the results.
func transform[P linalg.Dimensional[float64]](
	in io.Reader, out io.Writer, apply func([]P) []P, mk func([]float64) P, dims int,
) error {
	rows, err := readPoints(in, dims)
	if err != nil {
		return err
	}
	pts := make([]P, len(rows))
	for i, r := range rows {
		pts[i] = mk(r)
	}
	for _, p := range apply(pts) {
		if err := writePoint(out, p); err != nil {
			return err
		}
	}
	log.Debug().Int("points", len(pts)).Msg("transformed")
	return nil
}
