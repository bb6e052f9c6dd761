package matching

// Result is the outcome of a matching procedure:
// Match[i] == j means i is matched to j; Match[i] == i means i is unmatched.
// Size is the number of matched pairs (len(Match) entries with Match[i] !=
// i, divided by two); Weight is the sum of matched-edge weights, zero for
// cardinality-only procedures.
type Result struct {
	Match  []int
	Size   int
	Weight float64
}

// identityMatch returns a length-n match array with every node unmatched.
func identityMatch(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}
