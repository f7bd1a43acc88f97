package logic

import "sort"

// Median returns the middle element of readings after sorting. The input
// slice is not reordered. Samplers pass an odd count; for an even count
// the upper-middle element is returned. An empty input yields 0.
func Median(readings []int) int {
	if len(readings) == 0 {
		return 0
	}
	sorted := make([]int, len(readings))
	copy(sorted, readings)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}
