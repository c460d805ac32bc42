package stats

import "github.com/specsuite/core/pkg/domain"

// Options configures an aggregation run.
type Options struct {
	// Areas lists the area subdirectories to scan under the suite root.
	// Empty uses domain.DefaultAreas().
	Areas []domain.TestArea

	// ExcludePatterns names directories skipped during discovery, combined
	// with DefaultSkipPatterns.
	ExcludePatterns []string

	// Patterns holds glob patterns filtering test files by their
	// root-relative path. Empty means every .kt file is considered.
	Patterns []string

	// Verify re-reads each counted file and cross-checks its header
	// against the path; failures are collected, not fatal.
	Verify bool

	// Workers bounds the verify worker pool. Zero or negative uses
	// runtime.GOMAXPROCS(0).
	Workers int
}

// Option is a functional option for configuring the Aggregator.
type Option func(*Options)

// WithAreas sets the area list to scan.
func WithAreas(areas []domain.TestArea) Option {
	return func(o *Options) {
		o.Areas = areas
	}
}

// WithExcludePatterns adds directory names to skip during discovery.
func WithExcludePatterns(patterns []string) Option {
	return func(o *Options) {
		o.ExcludePatterns = patterns
	}
}

// WithPatterns sets glob patterns to filter test files.
func WithPatterns(patterns []string) Option {
	return func(o *Options) {
		o.Patterns = patterns
	}
}

// WithVerify enables the header verification pass.
func WithVerify(enabled bool) Option {
	return func(o *Options) {
		o.Verify = enabled
	}
}

// WithWorkers sets the verify worker count. Negative values are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

func applyDefaults(opts *Options) {
	if len(opts.Areas) == 0 {
		opts.Areas = domain.DefaultAreas()
	}
}
