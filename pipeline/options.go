// SPDX-License-Identifier: MIT

package pipeline

// Option configures Decode and LoadFile.
type Option func(*options)

type options struct {
	format    Format
	formatSet bool
	dims      int // 0: take the file's value
}

// DefaultFormat is used by Decode when no WithFormat is given.
const DefaultFormat = FormatYAML

// WithFormat forces the input format. LoadFile otherwise infers it from the
// file extension.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
		o.formatSet = true
	}
}

// WithDimensions requires the pipeline to be n-dimensional. A file that
// omits "dimensions" takes n. It panics unless n is 2 or 3.
func WithDimensions(n int) Option {
	if n != 2 && n != 3 {
		panic(panicDimensionsInvalid)
	}
	return func(o *options) { o.dims = n }
}

func gatherOptions(opts []Option) options {
	o := options{format: DefaultFormat}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
