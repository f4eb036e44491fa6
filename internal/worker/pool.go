// Package worker runs the per-repository pipeline over many repositories
// with bounded concurrency. Each pipeline run shares no mutable state; the
// only shared resource is the source client's rate-limit budget, which the
// client bounds itself.
package worker

import (
	"context"
	"sync"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// Result holds the outcome of analyzing a single repository.
type Result struct {
	Repo   domain.RepoMetadata
	Report *domain.AnalysisResult
	Err    error
}

// ProcessFunc analyzes a single repository.
type ProcessFunc func(ctx context.Context, repo domain.RepoMetadata) (*domain.AnalysisResult, error)

// Run processes repos concurrently using a bounded pool and returns results
// in input order. A per-repo error is recorded, never propagated; partial
// success is the normal case for large profiles.
func Run(ctx context.Context, repos []domain.RepoMetadata, concurrency int, process ProcessFunc) []Result {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(repos))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, repo := range repos {
		if ctx.Err() != nil {
			results[i] = Result{Repo: repo, Err: ctx.Err()}
			continue
		}

		sem <- struct{}{} // acquire
		wg.Add(1)

		go func(idx int, r domain.RepoMetadata) {
			defer wg.Done()
			defer func() { <-sem }() // release

			report, err := process(ctx, r)
			results[idx] = Result{Repo: r, Report: report, Err: err}
		}(i, repo)
	}

	wg.Wait()
	return results
}
