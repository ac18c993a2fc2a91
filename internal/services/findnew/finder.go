package findnew

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/pokesprite/pokesprite/internal/services/findnew"

// DefaultThreshold is the distance under which two images count as the same.
const DefaultThreshold = 0.066

// RunInfo describes a comparison run before it starts.
type RunInfo struct {
	OldDir   string
	NewDir   string
	OldCount int
	NewCount int
	// Planned is OldCount*NewCount, the comparisons needed without any match.
	Planned int
}

// Result summarises a comparison run.
type Result struct {
	// Unique lists the new paths without a duplicate, in the order found.
	Unique []string
	// Comparisons counts the Differ calls actually made.
	Comparisons int
	// Skipped counts the comparisons avoided by short-circuiting on a match.
	Skipped int
	// Planned is Comparisons+Skipped.
	Planned int
}

// Finder compares a new image set against an old one.
type Finder struct {
	Differ Differ
	// Threshold is used as given; zero matches nothing. Callers wanting the
	// usual cut-off set DefaultThreshold.
	Threshold float64
	// Reporter defaults to NopReporter.
	Reporter Reporter
}

// Run crawls both directories, reports the run header, compares, and reports
// the summary.
func (f *Finder) Run(ctx context.Context, oldDir, newDir string) (Result, error) {
	oldSet, err := Crawl(oldDir)
	if err != nil {
		return Result{}, err
	}
	newSet, err := Crawl(newDir)
	if err != nil {
		return Result{}, err
	}

	f.reporter().Start(RunInfo{
		OldDir:   oldDir,
		NewDir:   newDir,
		OldCount: len(oldSet),
		NewCount: len(newSet),
		Planned:  len(oldSet) * len(newSet),
	})
	result, err := f.Compare(ctx, oldSet, newSet)
	if err != nil {
		return result, err
	}
	f.reporter().Done(result)
	return result, nil
}

// Compare checks every new path against the old paths, both in sorted order.
// A new path is unique when no old path is closer than the threshold; unique
// paths are reported as soon as they are known. The first failing comparison
// aborts the run and returns what was found so far.
func (f *Finder) Compare(ctx context.Context, oldSet, newSet FileSet) (Result, error) {
	if f.Differ == nil {
		return Result{}, fmt.Errorf("differ is required")
	}
	threshold := f.Threshold
	if err := ValidateThreshold(threshold); err != nil {
		return Result{}, err
	}
	reporter := f.reporter()

	oldPaths := oldSet.Paths()
	newPaths := newSet.Paths()
	p := progress{planned: len(oldPaths) * len(newPaths)}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "findnew.compare")
	defer span.End()
	span.SetAttributes(
		attribute.Int("findnew.old_count", len(oldPaths)),
		attribute.Int("findnew.new_count", len(newPaths)),
		attribute.Float64("findnew.threshold", threshold),
	)

	result := Result{Unique: []string{}}
	for _, newPath := range newPaths {
		matched := false
		for j, oldPath := range oldPaths {
			if err := ctx.Err(); err != nil {
				return p.finish(result), err
			}
			distance, err := f.Differ.Diff(ctx, newPath, oldPath)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "diff failed")
				return p.finish(result), err
			}
			ratio := p.ratio()
			p.done++
			reporter.Compared(ratio, newPath, oldPath, distance)
			if distance < threshold {
				p.skip(len(oldPaths) - j - 1)
				matched = true
				break
			}
		}
		if !matched {
			result.Unique = append(result.Unique, newPath)
			reporter.Unique(p.ratio(), newPath)
		}
	}

	result = p.finish(result)
	span.SetAttributes(
		attribute.Int("findnew.comparisons", result.Comparisons),
		attribute.Int("findnew.unique", len(result.Unique)),
	)
	return result, nil
}

// ValidateThreshold rejects negative and NaN thresholds.
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	return nil
}

func (f *Finder) reporter() Reporter {
	if f.Reporter == nil {
		return NopReporter{}
	}
	return f.Reporter
}

// progress tracks completed comparisons against a plan that shrinks whenever
// a match makes the remaining comparisons for a path unnecessary.
type progress struct {
	planned int
	done    int
	skipped int
}

func (p *progress) skip(n int) {
	p.skipped += n
}

// ratio is the completed share of the remaining plan; an empty plan is done.
func (p *progress) ratio() float64 {
	total := p.planned - p.skipped
	if total <= 0 {
		return 1
	}
	return float64(p.done) / float64(total)
}

func (p *progress) finish(r Result) Result {
	r.Comparisons = p.done
	r.Skipped = p.skipped
	r.Planned = p.planned
	return r
}
