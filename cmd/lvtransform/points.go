// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmath/linalg"
)

var errPointArity = errors.New("wrong number of coordinates")

// readPoints parses whitespace separated coordinates, one point per line.
func readPoints(r io.Reader, dims int) ([][]float64, error) {
	var pts [][]float64
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != dims {
			return nil, fmt.Errorf("line %d: got %d, want %d: %w", line, len(fields), dims, errPointArity)
		}
		p := make([]float64, dims)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p[i] = v
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	return pts, nil
}

func writePoint(w io.Writer, p linalg.Dimensional[float64]) error {
	parts := make([]string, p.Len())
	for i := range parts {
		parts[i] = strconv.FormatFloat(p.Index(i), 'g', -1, 64)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
