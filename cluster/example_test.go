package cluster_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/clusfind/cluster"
	"github.com/katalvlaran/clusfind/matrix"
)

// ExampleFinder_Find searches eight rows for a cluster living in the upper
// half of a one-dimensional coordinate space. The check function accepts any
// subset whose payload values are all ≥ 4, so whatever bitmap the randomized
// search settles on is guaranteed to have that property.
func ExampleFinder_Find() {
	// One splitting dimension; the coordinate of row i is simply i.
	dp, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2, 3, 4, 5, 6, 7},
	})
	if err != nil {
		log.Fatal(err)
	}

	// The payload of row i is i as well, so the check can identify rows.
	ndp, err := matrix.NewDense(8, 1)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		if err = ndp.Set(i, 0, float64(i)); err != nil {
			log.Fatal(err)
		}
	}

	check := func(subset *matrix.Dense) (cluster.Verdict, error) {
		for r := 0; r < subset.Rows(); r++ {
			v, aerr := subset.At(r, 0)
			if aerr != nil {
				return cluster.Undecided, aerr
			}
			if v < 4 {
				return cluster.Undecided, nil
			}
		}

		return cluster.Accept, nil
	}

	opts := cluster.DefaultOptions()
	opts.MaxDepth = 100

	finder, err := cluster.New(check, opts)
	if err != nil {
		log.Fatal(err)
	}

	bm, err := finder.Find(dp, ndp, cluster.WithSeed(7))
	if err != nil {
		log.Fatal(err)
	}

	upperHalf := bm.Count() >= 1
	for _, i := range bm.Indices() {
		if i < 4 {
			upperHalf = false
		}
	}
	fmt.Println("cluster in upper half:", upperHalf)
	// Output: cluster in upper half: true
}

// ExampleNew_configError shows the strict sentinel surface of the factory.
func ExampleNew_configError() {
	_, err := cluster.New(nil, cluster.DefaultOptions())
	fmt.Println(err)
	// Output: cluster: check function is nil
}
