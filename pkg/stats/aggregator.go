package stats

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/specsuite/core/pkg/spectest"
)

// MaxWorkers is the maximum number of concurrent verify workers.
const MaxWorkers = 256

// DefaultSkipPatterns contains directory names skipped during discovery.
var DefaultSkipPatterns = []string{
	".git",
	"build",
	"out",
}

// FileError records a non-fatal per-file failure from the verify pass.
type FileError struct {
	// Path is the file that failed verification.
	Path string
	// Err is the underlying validation error.
	Err error
}

// Error implements the error interface.
func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// ScanStats provides statistics about one aggregation run.
type ScanStats struct {
	// FilesSeen is the number of candidate files discovered.
	FilesSeen int

	// FilesCounted is the number of files folded into the counters.
	FilesCounted int

	// FilesSkipped is the number of files whose path did not match the
	// test path pattern. Skipping is not an error: suite directories may
	// hold helper files.
	FilesSkipped int

	// FilesFailed is the number of counted files that failed the verify
	// pass. Zero when verification is disabled.
	FilesFailed int

	// Duration is the total run duration.
	Duration time.Duration
}

// Result contains the outcome of an aggregation run.
type Result struct {
	// Counters is the fully populated counter tree.
	Counters Counters

	// Errors lists verify-pass failures, sorted by path. Empty when
	// verification is disabled or every file passed.
	Errors []FileError

	// Stats summarizes the run.
	Stats ScanStats
}

// Aggregator walks a suite tree and folds per-file path metadata into a
// counter hierarchy. Counting itself is a sequential pass so the tree is
// never shared while mutable; only the optional verify pass fans out.
type Aggregator struct {
	options *Options
}

// NewAggregator creates an aggregator with the given options.
func NewAggregator(opts ...Option) *Aggregator {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	return &Aggregator{options: options}
}

// Collect scans root's area subdirectories and returns the populated
// counter tree. Files that do not match the test path pattern are skipped
// silently. A missing area directory contributes a zero count.
func (a *Aggregator) Collect(ctx context.Context, root string) (*Result, error) {
	startTime := time.Now()

	result := &Result{
		Counters: NewCounters(a.options.Areas),
	}

	var verifyQueue []string
	skipSet := buildSkipSet(append(DefaultSkipPatterns, a.options.ExcludePatterns...))

	for _, area := range a.options.Areas {
		areaRoot := filepath.Join(root, string(area))
		if _, err := os.Stat(areaRoot); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(areaRoot, func(path string, d fs.DirEntry, walkErr error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if walkErr != nil {
				return fmt.Errorf("access error at %s: %w", path, walkErr)
			}

			if d.IsDir() {
				if path != areaRoot && skipSet[filepath.Base(path)] {
					return filepath.SkipDir
				}
				return nil
			}

			if !strings.HasSuffix(path, spectest.TestFileExtension) {
				return nil
			}

			relPath, err := filepath.Rel(root, path)
			if err != nil {
				return fmt.Errorf("compute relative path for %s: %w", path, err)
			}

			if len(a.options.Patterns) > 0 && !matchesAnyPattern(relPath, a.options.Patterns) {
				return nil
			}

			result.Stats.FilesSeen++

			meta, err := spectest.ParsePath(relPath)
			if err != nil {
				result.Stats.FilesSkipped++
				log.Debug().Str("path", relPath).Msg("skipping non-conforming file")
				return nil
			}

			result.Counters.Add(meta)
			result.Stats.FilesCounted++

			if a.options.Verify {
				verifyQueue = append(verifyQueue, path)
			}

			return nil
		})
		if err != nil {
			result.Stats.Duration = time.Since(startTime)
			return result, err
		}
	}

	if len(verifyQueue) > 0 {
		result.Errors = a.verifyFiles(ctx, verifyQueue)
		result.Stats.FilesFailed = len(result.Errors)
	}

	result.Stats.Duration = time.Since(startTime)
	return result, nil
}

// verifyFiles re-extracts each counted file in parallel and collects
// validation failures. Extraction per file is independent; only the
// failure list needs the mutex.
func (a *Aggregator) verifyFiles(ctx context.Context, files []string) []FileError {
	workers := a.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	extractor := spectest.NewExtractor()

	var (
		mu       sync.Mutex
		failures []FileError
	)

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			if _, err := extractor.ExtractFile(gCtx, file); err != nil {
				log.Warn().Str("path", file).Err(err).Msg("spec test failed verification")
				mu.Lock()
				failures = append(failures, FileError{Path: file, Err: err})
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()

	// Workers finish in arbitrary order; sort for deterministic reports.
	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Path < failures[j].Path
	})

	return failures
}

func buildSkipSet(patterns []string) map[string]bool {
	skipSet := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		skipSet[p] = true
	}
	return skipSet
}

func matchesAnyPattern(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
