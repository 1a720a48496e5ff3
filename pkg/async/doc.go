// Package async provides small generic helpers for running computations in
// goroutines and waiting for their results.
//
// Async starts a function in its own goroutine and returns a *Future whose
// Await blocks until the result is ready. Batch spreads a slice over a fixed
// number of futures and gathers the results in input order; the validator
// uses it to check large collections concurrently.
//
// # Usage
//
//	results, err := async.Batch(ctx, items, runtime.GOMAXPROCS(0),
//	    func(ctx context.Context, item Item) (Result, error) {
//	        return process(ctx, item)
//	    })
//
// A context cancelled before a future's goroutine starts completes that
// future with ctx.Err(); functions are expected to watch ctx themselves
// once running.
package async
