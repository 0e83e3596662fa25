package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/clusfind/cluster"
	"github.com/katalvlaran/clusfind/matrix"
)

// benchmarkInputs builds a (dims, n) coordinate matrix and an (n, 1)
// payload under a fixed seed.
func benchmarkInputs(b *testing.B, dims, n int) (*matrix.Dense, *matrix.Dense) {
	b.Helper()
	rng := rand.New(rand.NewSource(1))

	dp, err := matrix.NewDense(dims, n)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for d := 0; d < dims; d++ {
		row, rerr := dp.RowView(d)
		if rerr != nil {
			b.Fatalf("RowView failed: %v", rerr)
		}
		for i := range row {
			row[i] = -1 + 2*rng.Float64()
		}
	}

	ndp, err := matrix.NewDense(n, 1)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for i := 0; i < n; i++ {
		if err = ndp.Set(i, 0, float64(i)); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}

	return dp, ndp
}

// BenchmarkFind_SingletonEnumeration measures one full iteration that
// enumerates every row as a singleton leaf (the worst-case tree walk).
func BenchmarkFind_SingletonEnumeration(b *testing.B) {
	dp, ndp := benchmarkInputs(b, 64, 1000)

	opts := cluster.DefaultOptions()
	opts.MaxCount = 1
	opts.MaxDepth = 100

	f, err := cluster.New(func(*matrix.Dense) (cluster.Verdict, error) {
		return cluster.Undecided, nil
	}, opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ferr := f.Find(dp, ndp, cluster.WithSeed(int64(i+1)), cluster.WithIterations(1))
		if ferr != cluster.ErrNoCluster {
			b.Fatalf("Find: want ErrNoCluster, got %v", ferr)
		}
	}
}

// BenchmarkFind_AcceptFirst measures the fast path: shape validation, stack
// setup, one split, one gather, one accepting check.
func BenchmarkFind_AcceptFirst(b *testing.B) {
	dp, ndp := benchmarkInputs(b, 64, 1000)

	f, err := cluster.New(func(*matrix.Dense) (cluster.Verdict, error) {
		return cluster.Accept, nil
	}, cluster.DefaultOptions())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ferr := f.Find(dp, ndp, cluster.WithSeed(1)); ferr != nil {
			b.Fatalf("Find failed: %v", ferr)
		}
	}
}

// BenchmarkFind_PrunedWalk measures an iteration under an aggressive
// pruning check, the intended steady-state usage.
func BenchmarkFind_PrunedWalk(b *testing.B) {
	dp, ndp := benchmarkInputs(b, 64, 1000)

	opts := cluster.DefaultOptions()
	opts.MaxCount = 8

	check := func(subset *matrix.Dense) (cluster.Verdict, error) {
		for r := 0; r < subset.Rows(); r++ {
			v, _ := subset.At(r, 0)
			if int(v)%2 == 1 {
				return cluster.Prune, nil
			}
		}

		return cluster.Undecided, nil
	}

	f, err := cluster.New(check, opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ferr := f.Find(dp, ndp, cluster.WithSeed(int64(i+1)), cluster.WithIterations(1))
		if ferr != cluster.ErrNoCluster {
			b.Fatalf("Find: want ErrNoCluster, got %v", ferr)
		}
	}
}
