package sweep

import (
	"fmt"
	"sync/atomic"
)

// Outcome classifies a finished sweep.
type Outcome int

const (
	// Empty means no candidates were found; nothing was attempted.
	Empty Outcome = iota
	// NothingRemoved means candidates existed but every deletion failed.
	NothingRemoved
	// Partial means some candidates were removed and some failed.
	Partial
	// Complete means every candidate was removed.
	Complete
)

func (o Outcome) String() string {
	switch o {
	case Empty:
		return "empty"
	case NothingRemoved:
		return "nothing removed"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the aggregate outcome of one sweep.
// ItemsDeleted + ItemsFailed == TotalCandidates always holds.
type Result struct {
	// ItemsDeleted counts files and subdirectories removed.
	ItemsDeleted int64 `json:"items_deleted"`

	// ItemsFailed counts candidates that could not be removed.
	ItemsFailed int64 `json:"items_failed"`

	// TotalCandidates counts files and subdirectories enumerated before any
	// deletion was attempted.
	TotalCandidates int64 `json:"total_candidates"`

	// BytesReclaimed sums the sizes of the removed items only.
	BytesReclaimed int64 `json:"bytes_reclaimed"`
}

// Outcome classifies the result.
func (r Result) Outcome() Outcome {
	switch {
	case r.TotalCandidates == 0:
		return Empty
	case r.ItemsDeleted == 0:
		return NothingRemoved
	case r.ItemsDeleted == r.TotalCandidates:
		return Complete
	default:
		return Partial
	}
}

// ItemResult is the outcome of one deletion attempt.
type ItemResult struct {
	Path  string
	IsDir bool

	// Bytes is the pre-deletion size of the item.
	Bytes int64

	// Err is nil when the item was removed.
	Err error
}

// Removed reports whether the item was deleted.
func (r ItemResult) Removed() bool {
	return r.Err == nil
}

// accumulator collects item results from concurrent workers. One is created
// per Sweep call and never shared between calls.
type accumulator struct {
	deleted atomic.Int64
	failed  atomic.Int64
	bytes   atomic.Int64
}

func (a *accumulator) record(r ItemResult) {
	if !r.Removed() {
		a.failed.Add(1)
		return
	}
	a.bytes.Add(r.Bytes)
	a.deleted.Add(1)
}

func (a *accumulator) result(total int64) Result {
	return Result{
		ItemsDeleted:    a.deleted.Load(),
		ItemsFailed:     a.failed.Load(),
		TotalCandidates: total,
		BytesReclaimed:  a.bytes.Load(),
	}
}
