// Package parallel contains the fork-join primitives used to evaluate a
// network over many rows at once: ForEach and the Sum map-reduce.
package parallel

import "sync"
import "sync/atomic"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine claims the next unprocessed integer from 0 to length-1 until
// none are left. ForEach returns after every body call has returned.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1 // Default to 1 if limit is zero or negative
	}
	if length <= 0 {
		return // No iterations to perform
	}
	if limit > length {
		limit = length
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(limit)

	for n := 0; n < limit; n++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= length {
					return
				}
				body(i)
			}
		}()
	}

	wg.Wait() // Wait for all goroutines to finish
}
