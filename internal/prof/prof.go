// Package prof wires runtime profiling to command-line flags.
package prof

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/cockroachdb/errors"
)

// Options names the profile outputs. Empty paths are skipped.
type Options struct {
	CPUPath string
	MemPath string
}

// Session is an active profiling run.
type Session struct {
	opts    Options
	cpuFile *os.File
}

// Start begins CPU profiling if requested. The heap profile is written by Stop.
func Start(opts Options) (*Session, error) {
	s := &Session{opts: opts}
	if opts.CPUPath == "" {
		return s, nil
	}
	f, err := os.Create(opts.CPUPath)
	if err != nil {
		return nil, errors.Wrap(err, "create cpu profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "start cpu profile")
	}
	s.cpuFile = f
	return s, nil
}

// Stop ends CPU profiling and writes the heap profile. It is safe on a nil
// Session.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	var errs error
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		errs = errors.CombineErrors(errs, errors.Wrap(s.cpuFile.Close(), "close cpu profile"))
		s.cpuFile = nil
	}
	if s.opts.MemPath != "" {
		errs = errors.CombineErrors(errs, writeHeap(s.opts.MemPath))
	}
	return errs
}

func writeHeap(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create heap profile")
	}
	defer func() {
		err = errors.CombineErrors(err, errors.Wrap(f.Close(), "close heap profile"))
	}()
	runtime.GC()
	return errors.Wrap(pprof.WriteHeapProfile(f), "write heap profile")
}
