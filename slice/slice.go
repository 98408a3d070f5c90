package slice

// FindIndex returns the first index of the ref that matches ref t
func FindIndex(vs []string, t string) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}

	return -1
}

// Contains returns true if the string exists in the slice and false otherwise
func Contains(vs []string, t string) bool {
	return FindIndex(vs, t) > -1
}

// Unique removes duplicates preserving first-seen order
func Unique(slice []string) []string {
	uniqMap := make(map[string]struct{})

	var uniqSlice []string

	for _, v := range slice {
		if _, val := uniqMap[v]; !val {
			uniqMap[v] = struct{}{}

			uniqSlice = append(uniqSlice, v)
		}
	}

	return uniqSlice
}

// Chunk splits a slice into consecutive chunks of at most size elements.
// The last chunk may be shorter. A non-positive size returns the whole
// slice as a single chunk.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return [][]T{items}
	}

	var chunks [][]T

	for size < len(items) {
		chunks = append(chunks, items[:size])
		items = items[size:]
	}

	if len(items) > 0 {
		chunks = append(chunks, items)
	}

	return chunks
}
