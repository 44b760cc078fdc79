// File: pkg/combine/filter.go
package combine

import (
	"path/filepath"
	"strings"
)

// Decision is the outcome of filtering a file name.
type Decision int

const (
	Exclude Decision = iota
	Include
)

func (d Decision) String() string {
	if d == Include {
		return "include"
	}
	return "exclude"
}

// Reason explains a Decision for logging.
type Reason string

const (
	ReasonIncluded    Reason = "included"
	ReasonExcluded    Reason = "excluded name or extension"
	ReasonNotIncluded Reason = "not an included name or extension"
)

// Extension returns the lower-cased extension of a file name, ignoring
// leading dots, so ".gitignore" has no extension and "a.TAR.GZ" has ".gz".
func Extension(name string) string {
	return strings.ToLower(filepath.Ext(strings.TrimLeft(name, ".")))
}

// Filter decides whether a file with the given base name is emitted.
func (c Config) Filter(name string) Decision {
	d, _ := c.Classify(name)
	return d
}

// Classify is Filter with the reason attached. Exclusion always wins.
func (c Config) Classify(name string) (Decision, Reason) {
	ext := Extension(name)
	if c.ExcludedNamesOrExtensions.Has(name) || c.ExcludedNamesOrExtensions.Has(ext) {
		return Exclude, ReasonExcluded
	}
	if c.IncludedExtensions.Has(name) || c.IncludedExtensions.Has(ext) {
		return Include, ReasonIncluded
	}
	return Exclude, ReasonNotIncluded
}

// SkipDir reports whether a child directory is pruned from traversal.
func (c Config) SkipDir(name string) bool {
	return strings.HasPrefix(name, ".") || c.ExcludedDirectories.Has(name)
}
