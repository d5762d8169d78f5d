// Package pkg provides the libraries behind superperm, a search for minimal
// superpermutations.
//
// # Overview
//
// A superpermutation over an n-symbol alphabet is a string containing every
// permutation of the alphabet as a contiguous substring. superperm finds the
// shortest such string by A* search over compressed candidate states, solving
// one milestone at a time: the shortest string revealing 2 permutations, then
// 3, and so on up to n!.
//
// # Architecture
//
// The data flow through a solve:
//
//	[symmetry] table for n
//	         ↓
//	[candidate] seed (string 0 1 ... n-1)
//	         ↓
//	[incremental] driver, one goal per milestone
//	         ↓
//	[search] A* over [search.OpenSet] and [search.ClosedSet], bounded by [heuristic]
//	         ↓
//	[io] run report (JSON or TOML)
//
// # Quick Start
//
//	table := symmetry.Precompute(4)
//	seed := candidate.Seed(table)
//	distance, ok := incremental.FromSeed(seed).ShortestPath(seed, nil)
//	// ok == true, distance == 29, length == 4 + 29
//
// # Main Packages
//
// ## Search
//
// [perm] - Permutation helpers: lexicographic generation, rank and unrank,
// inverses.
//
// [intset] - Fixed-capacity compressed integer sets backed by roaring
// bitmaps.
//
// [symmetry] - Precomputed relabelling tables that keep candidates in a
// canonical frame after every expansion.
//
// [candidate] - Search states: which permutations have been revealed and how
// long the trailing distinct run is.
//
// [heuristic] - Admissible lower bounds on the remaining distance, tightened
// by every solved milestone.
//
// [search] - The bucketed open set, the closed set and the A* loop.
//
// [incremental] - The milestone driver that reuses one search across goals.
//
// ## Infrastructure
//
// [io] - Run reports with JSON and TOML encodings.
//
// [cache] - Report cache with file and null backends.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for search and cache events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/perm      # Examples only
//	go test -short ./pkg/...             # Skip the four-symbol solves
package pkg
