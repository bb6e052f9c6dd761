// Package prop implements the indexable property store: a sparse
// mapping from a dense non-negative index to a value of type V, backed by a
// slice that grows lazily to the highest index touched. Reading an index
// that was never written returns the store's default value; writing an
// index with Set materialises any intermediate slot to that default. The
// store hands out no mutable references into its backing slice.
package prop
