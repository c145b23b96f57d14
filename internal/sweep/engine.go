// Package sweep deletes the immediate contents of a set of directories on a
// bounded worker pool and aggregates what was removed.
package sweep

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Phase is a step of one sweep call. Phases only move forward.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEnumerating
	PhaseDeleting
	PhaseAggregating
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEnumerating:
		return "enumerating"
	case PhaseDeleting:
		return "deleting"
	case PhaseAggregating:
		return "aggregating"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// candidate is a file or subdirectory enumerated for deletion.
type candidate struct {
	path  string
	isDir bool
	size  int64 // files only; directories are sized right before removal
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers bounds the number of concurrent deletions. Values below one
// are ignored.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithLogger sets the logger used for phase and enumeration diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine performs sweeps. It holds no per-sweep state, so one Engine may
// serve concurrent Sweep calls.
type Engine struct {
	fs      afero.Fs
	workers int
	logger  *zap.Logger

	// arrange reorders candidates before deletion. Tests use it to prove
	// results do not depend on scheduling.
	arrange func([]candidate)

	// releaseMemory runs after a sweep that removed something.
	releaseMemory func()
}

// New creates an Engine over fs with one worker per CPU.
func New(fs afero.Fs, opts ...Option) *Engine {
	e := &Engine{
		fs:            fs,
		workers:       runtime.NumCPU(),
		logger:        zap.NewNop(),
		releaseMemory: debug.FreeOSMemory,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sweep deletes every file and every subdirectory (recursively, as a single
// unit) directly under each of dirs. Individual failures are counted, never
// returned. Sweep returns only after every attempt has finished.
func (e *Engine) Sweep(dirs []string) Result {
	e.enter(PhaseEnumerating)
	candidates := e.enumerate(dirs)
	total := int64(len(candidates))

	if total == 0 {
		e.enter(PhaseDone)
		return Result{}
	}
	if e.arrange != nil {
		e.arrange(candidates)
	}

	acc := &accumulator{}

	e.enter(PhaseDeleting, zap.Int64("candidates", total), zap.Int("workers", e.workers))
	e.deleteAll(candidates, acc)

	e.enter(PhaseAggregating)
	res := acc.result(total)

	if res.ItemsDeleted > 0 && e.releaseMemory != nil {
		e.releaseMemory()
	}

	e.enter(PhaseDone,
		zap.Int64("deleted", res.ItemsDeleted),
		zap.Int64("failed", res.ItemsFailed))
	return res
}

func (e *Engine) enter(p Phase, fields ...zap.Field) {
	e.logger.Debug("sweep phase", append([]zap.Field{zap.Stringer("phase", p)}, fields...)...)
}

// enumerate lists the immediate children of every existing directory.
// Directories are re-checked here since time has passed since resolution.
func (e *Engine) enumerate(dirs []string) []candidate {
	var out []candidate
	seen := make(map[string]bool, len(dirs))

	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true

		info, err := e.fs.Stat(dir)
		if err != nil || !info.IsDir() {
			e.logger.Debug("skipping missing directory", zap.String("dir", dir))
			continue
		}

		entries, err := afero.ReadDir(e.fs, dir)
		if err != nil {
			e.logger.Warn("cannot read directory", zap.String("dir", dir), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			c := candidate{
				path:  filepath.Join(dir, entry.Name()),
				isDir: entry.IsDir(),
			}
			if !c.isDir {
				c.size = entry.Size()
			}
			out = append(out, c)
		}
	}

	return out
}

// deleteAll feeds candidates to a fixed pool of workers and waits for all of
// them to finish.
func (e *Engine) deleteAll(candidates []candidate, acc *accumulator) {
	workers := min(e.workers, len(candidates))
	jobs := make(chan candidate)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				acc.record(e.remove(c))
			}
		}()
	}

	for _, c := range candidates {
		jobs <- c
	}
	close(jobs)
	wg.Wait()
}

// remove attempts to delete one candidate.
func (e *Engine) remove(c candidate) ItemResult {
	r := ItemResult{Path: c.path, IsDir: c.isDir, Bytes: c.size}

	if !c.isDir {
		r.Err = e.fs.Remove(c.path)
		return r
	}

	// RemoveAll reports success for a path that is already gone.
	if _, err := lstat(e.fs, c.path); err != nil {
		r.Err = err
		return r
	}

	r.Bytes = dirSize(e.fs, c.path)
	r.Err = e.fs.RemoveAll(c.path)
	return r
}

func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

// dirSize sums the lengths of all files beneath root. Unreadable entries are
// skipped, so the total is best effort.
func dirSize(fs afero.Fs, root string) int64 {
	var total int64
	_ = afero.Walk(fs, root, func(_ string, info os.FileInfo, err error) error {
		if err != nil || info == nil {
			return nil
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total
}
