// Package catalog holds the fixed table of cleanup targets and resolves each
// one into the existing directories a sweep should empty.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/lakshaymaurya-felt/pccleaner/internal/config"
)

// ErrUnknownTarget is returned when an identifier is not in the catalog.
var ErrUnknownTarget = errors.New("unknown target")

// ID identifies a cleanup target.
type ID string

// Category groups related targets for bulk selection.
type Category string

const (
	CategorySystem   Category = "system"
	CategoryApps     Category = "apps"
	CategoryBrowser  Category = "browser"
	CategoryGraphics Category = "graphics"
)

// Status is the availability of a target on this machine.
type Status int

const (
	// Available means at least one usable root directory exists.
	Available Status = iota
	// NotInstalled means the host application's root directory is absent.
	NotInstalled
)

func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case NotInstalled:
		return "not installed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Target is one cleanable category of cache or temp directories.
type Target struct {
	// ID is the stable identifier used on the command line.
	ID ID

	// Host names the application or OS feature owning the caches.
	Host string

	// Description is a human-readable description.
	Description string

	// Category groups related targets.
	Category Category

	// RequiresAdmin indicates whether elevated privileges are needed.
	RequiresAdmin bool

	// roots lists alternative host roots in preference order. The first one
	// that exists is used; none existing means NotInstalled. A nil roots
	// func means the target has no precondition.
	roots func(f config.Folders) []string

	// paths builds the ordered sweep list from the chosen root.
	paths func(root string, f config.Folders) []string
}

// Resolution is a target resolved against the filesystem.
type Resolution struct {
	Target Target
	Status Status

	// Root is the host root that satisfied the precondition, if any.
	Root string

	// Directories are the existing directories to sweep, deduplicated, in
	// catalog order. Empty when Status is NotInstalled.
	Directories []string
}

// Catalog resolves targets against a filesystem and a set of special folders.
type Catalog struct {
	fs      afero.Fs
	folders config.Folders
	targets []Target
}

// New returns the built-in catalog bound to fs and folders.
func New(fs afero.Fs, folders config.Folders) *Catalog {
	return &Catalog{
		fs:      fs,
		folders: folders,
		targets: builtinTargets(),
	}
}

// Targets returns every target in catalog order.
func (c *Catalog) Targets() []Target {
	return append([]Target(nil), c.targets...)
}

// TargetsByCategory returns the targets of one category.
func (c *Catalog) TargetsByCategory(category Category) []Target {
	var result []Target
	for _, t := range c.targets {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// Lookup finds a target by identifier, ignoring case.
func (c *Catalog) Lookup(id string) (Target, bool) {
	for _, t := range c.targets {
		if strings.EqualFold(string(t.ID), id) {
			return t, true
		}
	}
	return Target{}, false
}

// Resolve computes the existing directories of the target named id. It only
// reads the filesystem.
func (c *Catalog) Resolve(id ID) (Resolution, error) {
	t, ok := c.Lookup(string(id))
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownTarget, id)
	}
	return c.ResolveTarget(t), nil
}

// ResolveTarget resolves t. Missing sweep directories under an existing root
// are dropped rather than failing the target.
func (c *Catalog) ResolveTarget(t Target) Resolution {
	res := Resolution{Target: t, Status: Available}

	if t.roots != nil {
		root, ok := c.firstExisting(t.roots(c.folders))
		if !ok {
			res.Status = NotInstalled
			return res
		}
		res.Root = root
	}

	seen := make(map[string]bool)
	for _, pattern := range t.paths(res.Root, c.folders) {
		if pattern == "" {
			continue
		}
		for _, dir := range expandPattern(c.fs, pattern) {
			// %TEMP% often points to %LOCALAPPDATA%\Temp.
			key := strings.ToLower(filepath.Clean(dir))
			if seen[key] {
				continue
			}
			seen[key] = true

			if ok, _ := afero.DirExists(c.fs, dir); ok {
				res.Directories = append(res.Directories, filepath.Clean(dir))
			}
		}
	}

	return res
}

// firstExisting returns the first candidate that is an existing directory.
func (c *Catalog) firstExisting(candidates []string) (string, bool) {
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if ok, _ := afero.DirExists(c.fs, p); ok {
			return filepath.Clean(p), true
		}
	}
	return "", false
}
