// Package sort provides classic comparison-based, in-place sorting algorithms
// driven by a caller-supplied ordering predicate.
//
// # Algorithms
//
// Every algorithm has the same shape, [Func]:
//
//	func(data []T, less Less[T])
//
// and rearranges data in place. The catalogue:
//
//	| Algorithm | Best       | Average    | Worst      | Extra space | Stable |
//	|-----------|------------|------------|------------|-------------|--------|
//	| Selection | n^2        | n^2        | n^2        | O(1)        | no     |
//	| Bubble    | n          | n^2        | n^2        | O(1)        | yes    |
//	| Cocktail  | n          | n^2        | n^2        | O(1)        | yes    |
//	| Insertion | n          | n^2        | n^2        | O(1)        | yes    |
//	| Merge     | n log n    | n log n    | n log n    | O(n)        | yes    |
//	| Quick     | n log n    | n log n    | n^2        | O(log n)    | no     |
//	| Heap      | n log n    | n log n    | n log n    | O(1)        | no     |
//
// Quick's worst case is reached by duplicate-heavy input regardless of the
// pivots drawn: n equal keys take n(n-1)/2 comparisons.
//
// # Ordering predicate
//
// less must be a strict weak ordering: irreflexive, asymmetric and transitive.
// A predicate that violates this leaves data in an unspecified order, but
// always as a permutation of the input.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-algos/sort"
//
//	func Ascending(data []int) {
//	    sort.Merge(data, func(a, b int) bool { return a < b })
//	}
//
// # Randomness
//
// [Quick] chooses pivots at random. Each call owns a freshly seeded
// generator, so concurrent calls on distinct slices never contend. Use
// [QuickRand] or [NewQuick] to inject a seeded *rand.Rand for reproducible
// runs.
//
// None of the functions are safe for concurrent use on the same slice.
package sort
