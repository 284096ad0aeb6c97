package parallel

import "sync"

// Sum maps body over 0..length-1 and reduces the results by addition.
// The range is split into at most limit contiguous chunks, each summed by its
// own goroutine into a private partial; the caller adds the partials in chunk
// order. Chunk boundaries depend only on length and limit, so the result is
// the same on every call with the same arguments.
func Sum(length, limit int, body func(i int) float32) float64 {
	if length <= 0 {
		return 0
	}
	if limit <= 0 {
		limit = 1
	}
	if limit > length {
		limit = length
	}
	if limit == 1 {
		return sumRange(0, length, body)
	}

	partials := make([]float64, limit)
	var wg sync.WaitGroup
	wg.Add(limit)
	for c := 0; c < limit; c++ {
		go func(c int) {
			defer wg.Done()
			partials[c] = sumRange(c*length/limit, (c+1)*length/limit, body)
		}(c)
	}
	wg.Wait()

	var total float64
	for _, p := range partials {
		total += p
	}
	return total
}

func sumRange(lo, hi int, body func(i int) float32) (s float64) {
	for i := lo; i < hi; i++ {
		s += float64(body(i))
	}
	return
}
