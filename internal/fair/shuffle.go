package fair

// Shuffle permutes items in place with Fisher-Yates, drawing swap indices
// from the source. For a fixed seed triple the permutation is reproducible
// bit for bit.
func Shuffle(items []int, src Source) {
	for i := len(items) - 1; i >= 1; i-- {
		u := src.Next()
		j := int(u * float64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}

// Perm returns a shuffled permutation of [0, n).
func Perm(n int, src Source) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	Shuffle(items, src)
	return items
}
