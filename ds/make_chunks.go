package ds

// MakeChunks groups elements within a slice into smaller "chunks",
// each containing exactly n elements. Elements at the tail that cannot
// fill a whole chunk are dropped. For example,
//
//   MakeChunks([]int{1, 2, 3, 4, 5}, 2)
//
// returns this exact value:
//
//   [][]int{{1, 2}, {3, 4}}
func MakeChunks[T any](ts []T, n int) [][]T {
	chunks := make([][]T, 0, len(ts)/n)
	for i := 0; i+n <= len(ts); i += n {
		chunks = append(chunks, ts[i:i+n])
	}
	return chunks
}
