package router_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentQueries runs many trajectory computations on one City from
// parallel goroutines; results must match the sequential answer.
func TestConcurrentQueries(t *testing.T) {
	c := referenceCity(t)
	want := make(map[string]int64)
	for _, d := range c.Destinations() {
		tr, err := c.ComputeTrajectories(d.Name)
		require.NoError(t, err)
		want[d.Name] = tr.Delta
	}

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			d := c.Destinations()[i%len(want)]
			tr, err := c.ComputeTrajectories(d.Name)
			if err != nil {
				errs <- err
				return
			}
			if tr.Delta != want[d.Name] {
				errs <- assertionError(d.Name)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

type assertionError string

func (e assertionError) Error() string { return "delta mismatch for " + string(e) }
