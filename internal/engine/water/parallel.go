package water

import (
	"context"
	"runtime"
	"sync"
)

// forEachRow calls fn for every row in [0, rows), splitting contiguous chunks
// of rows across one goroutine per CPU. Workers stop at the next row once ctx
// is done; the context error is returned after all workers exit.
func forEachRow(ctx context.Context, rows int, fn func(row int)) error {
	if rows <= 0 {
		return ctx.Err()
	}
	workers := min(runtime.NumCPU(), rows)
	chunk := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunk {
		end := min(start+chunk, rows)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for row := start; row < end; row++ {
				if ctx.Err() != nil {
					return
				}
				fn(row)
			}
		}(start, end)
	}
	wg.Wait()
	return ctx.Err()
}
