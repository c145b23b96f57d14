// Package clean runs cleanup targets end to end: elevation gate, resolution,
// sweep and report.
package clean

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/sweep"
)

// ErrElevationRequired is returned when an admin-only target is requested by
// a process without administrator privileges.
var ErrElevationRequired = errors.New("administrator privileges required")

// Sweeper empties directories. *sweep.Engine satisfies it.
type Sweeper interface {
	Sweep(dirs []string) sweep.Result
}

// Report is the outcome of running one target.
type Report struct {
	Target      catalog.Target
	Status      catalog.Status
	Directories []string
	Result      sweep.Result

	// Refused is set when the target needs administrator rights the process
	// lacks. Nothing was resolved or swept.
	Refused bool

	// ID correlates the report with its log line. Empty when no sweep ran.
	ID       string
	Duration time.Duration
}

// Swept reports whether the sweep engine was invoked.
func (r Report) Swept() bool {
	return r.ID != ""
}

// Cleaner ties the catalog to a sweeper.
type Cleaner struct {
	catalog *catalog.Catalog
	sweeper Sweeper
	logger  *zap.Logger

	// Elevated reports whether the process runs with administrator rights.
	Elevated bool
}

// New returns a Cleaner. A nil logger disables logging.
func New(c *catalog.Catalog, s Sweeper, logger *zap.Logger, elevated bool) *Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cleaner{
		catalog:  c,
		sweeper:  s,
		logger:   logger,
		Elevated: elevated,
	}
}

// Catalog returns the catalog the cleaner resolves against.
func (c *Cleaner) Catalog() *catalog.Catalog {
	return c.catalog
}

// Permitted reports whether t may run at the current privilege level.
func (c *Cleaner) Permitted(t catalog.Target) bool {
	return !t.RequiresAdmin || c.Elevated
}

// Run cleans the target named id.
func (c *Cleaner) Run(id catalog.ID) (Report, error) {
	t, ok := c.catalog.Lookup(string(id))
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", catalog.ErrUnknownTarget, id)
	}
	return c.RunTarget(t)
}

// RunTarget cleans t. A target that is not installed, or resolves to no
// directories, is reported without invoking the sweeper.
func (c *Cleaner) RunTarget(t catalog.Target) (Report, error) {
	if !c.Permitted(t) {
		return Report{Target: t, Refused: true}, fmt.Errorf("clean %s: %w", t.ID, ErrElevationRequired)
	}

	res := c.catalog.ResolveTarget(t)
	report := Report{
		Target:      t,
		Status:      res.Status,
		Directories: res.Directories,
	}

	if res.Status == catalog.NotInstalled {
		c.logger.Info("target not installed", zap.String("target", string(t.ID)))
		return report, nil
	}
	if len(res.Directories) == 0 {
		c.logger.Info("nothing to clean", zap.String("target", string(t.ID)))
		return report, nil
	}

	report.ID = uuid.NewString()
	start := time.Now()
	report.Result = c.sweeper.Sweep(res.Directories)
	report.Duration = time.Since(start)

	c.logger.Info("sweep finished",
		zap.String("sweep_id", report.ID),
		zap.String("target", string(t.ID)),
		zap.Int("directories", len(res.Directories)),
		zap.Stringer("outcome", report.Result.Outcome()),
		zap.Int64("deleted", report.Result.ItemsDeleted),
		zap.Int64("failed", report.Result.ItemsFailed),
		zap.Int64("bytes", report.Result.BytesReclaimed),
		zap.Duration("duration", report.Duration),
	)

	return report, nil
}

// RunAll cleans every target in targets, in order. Targets needing elevation
// the process lacks are not run; they get a Refused report so the caller can
// tell the user. An empty targets slice means the whole catalog.
func (c *Cleaner) RunAll(targets ...catalog.Target) []Report {
	if len(targets) == 0 {
		targets = c.catalog.Targets()
	}

	var reports []Report
	for _, t := range targets {
		if !c.Permitted(t) {
			c.logger.Info("admin-only target refused", zap.String("target", string(t.ID)))
			reports = append(reports, Report{Target: t, Refused: true})
			continue
		}
		r, err := c.RunTarget(t)
		if err != nil {
			c.logger.Warn("target failed", zap.String("target", string(t.ID)), zap.Error(err))
			continue
		}
		reports = append(reports, r)
	}
	return reports
}
