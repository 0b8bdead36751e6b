package topo

// Intersect returns the sorted intersection of two ascending-sorted,
// duplicate-free int slices.
func Intersect(a, b []int) []int {
	result := make([]int, 0, min(len(a), len(b)))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}

	return result
}

// Reverse returns a copy of s with its elements in the opposite order,
// used to view a descending-sorted adjacency list in ascending order.
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
