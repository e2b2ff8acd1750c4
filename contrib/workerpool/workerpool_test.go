// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForAtomicCoversEveryIndex(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 3, 4, 5, 100} {
		hits := make([]int32, n)
		pool.ParallelForAtomic(n, func(i int) {
			atomic.AddInt32(&hits[i], 1)
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d: index %d visited %d times, want 1", n, i, h)
			}
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestReuse(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var total atomic.Int64
	for range 50 {
		pool.ParallelForAtomic(10, func(i int) {
			total.Add(int64(i))
		})
	}
	if got := total.Load(); got != 50*45 {
		t.Errorf("total = %d, want %d", got, 50*45)
	}
}

func TestClosedRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	count := 0
	pool.ParallelForAtomic(10, func(i int) {
		count++
	})
	pool.ParallelForAtomic(5, func(i int) {
		count += i
	})
	if count != 20 {
		t.Errorf("count = %d, want 20", count)
	}
}
