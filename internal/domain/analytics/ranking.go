package analytics

import "sort"

// TopHeaviest ordena por peso efectivo descendente (sort estable: empates
// conservan el orden original) y devuelve los primeros n. No modifica el input.
func TopHeaviest(items []Assessment, n int) []Assessment {
	sorted := make([]Assessment, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })
	return truncate(sorted, n)
}
