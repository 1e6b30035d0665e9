package health

import (
	"context"
	"sync"
)

// CheckAll runs one check per URL and returns results in input order,
// one-to-one. A failing target never aborts or reorders the rest.
//
// With opts.Concurrency <= 1 the checks run sequentially. Otherwise a
// bounded set of workers runs them in parallel; each result is written
// to its input index so output order is unaffected by completion order.
func CheckAll(ctx context.Context, c Checker, urls []string, opts Options) []CheckResult {
	results := make([]CheckResult, len(urls))

	if opts.Concurrency <= 1 {
		for i, u := range urls {
			results[i] = c.Check(ctx, u, opts)
		}
		return results
	}

	sem := make(chan struct{}, opts.Concurrency)
	var wg sync.WaitGroup
	for i, u := range urls {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, u string) {
			defer func() { <-sem }()
			defer wg.Done()
			results[i] = c.Check(ctx, u, opts)
		}(i, u)
	}
	wg.Wait()
	return results
}
