// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"iter"
	"strings"
)

// formatRows renders e as rows lines of "| e0 e1 ... |" joined by newlines.
// Elements print with their default fmt verb, so angle elements keep their
// unit suffix.
func formatRows[T Number](e []T, rows, cols int) string {
	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('|')
		for _, x := range e[r*cols : (r+1)*cols] {
			b.WriteByte(' ')
			fmt.Fprint(&b, x)
		}
		b.WriteString(" |")
	}
	return b.String()
}

func values[T Number](e []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range e {
			if !yield(x) {
				return
			}
		}
	}
}

func all[T Number](e []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range e {
			if !yield(i, x) {
				return
			}
		}
	}
}
