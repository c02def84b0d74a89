// Package testutil provides testing utilities for symtab.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded, reproducible generators for keys and operation
// sequences used by the randomized invariant tests.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Ints(1000, 500)     // values in [0, 500), duplicates allowed
//	perm := rng.Perm(100)           // permutation of [0, 100)
//	words := rng.Strings(50, 3)     // lowercase strings of length 3
//
// # Operation Scripts
//
//	for _, op := range rng.Ops(1000, 64, 0.3) {
//	    if op.Remove { ... } else { ... }
//	}
package testutil
