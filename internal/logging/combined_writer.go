package logging

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter copies every write to all of its writers. A failing writer
// does not stop the others; its error is merged into the result.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: append([]io.Writer(nil), writers...)}
}

// Write reports len(p) when at least one writer took the whole of p, and 0
// when none did.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	delivered := false
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		delivered = true
	}
	if delivered {
		n = len(p)
	}
	return n, err
}
