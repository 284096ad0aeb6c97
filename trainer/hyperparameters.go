package trainer

import (
	"io"
	"log"
	"os"
	"runtime"

	"github.com/neurlang/tinynet/neuron"
)

// SetLogger appends training progress to the named file.
func (h *HyperParameters) SetLogger(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	h.SetOutput(outfile)
	return nil
}

// SetOutput sends training progress to w, one line per Train call.
func (h *HyperParameters) SetOutput(w io.Writer) {
	h.l = log.New(w, "[train] ", log.LstdFlags)
}

type HyperParameters struct {
	Threads int // number of goroutines evaluating rows, 0 means GOMAXPROCS

	Rand neuron.Rand // source of mutations, nil means seeded from Seed
	Seed uint64      // seed for a deterministic generator, 0 means the global one

	Sum bool // report the summed per-row error instead of the mean

	l *log.Logger
}

func (h *HyperParameters) threads() int {
	if h.Threads <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return h.Threads
}

func (h *HyperParameters) rand() neuron.Rand {
	switch {
	case h.Rand != nil:
		return h.Rand
	case h.Seed != 0:
		return neuron.NewSeeded(h.Seed)
	}
	return neuron.Global
}

func (h *HyperParameters) logf(format string, v ...interface{}) {
	if h.l != nil {
		h.l.Printf(format, v...)
	}
}
