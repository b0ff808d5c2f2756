// Package chunk splits row slices into statements that respect a bind parameter ceiling.
package chunk

// Size returns how many rows of fieldsPerRow columns fit into one statement of at most maxParameters
// bind parameters. The result is never below 1.
func Size(maxParameters, fieldsPerRow int) int {
	if fieldsPerRow <= 0 {
		fieldsPerRow = 1
	}
	size := maxParameters / fieldsPerRow
	if size < 1 {
		return 1
	}
	return size
}

// Split cuts items into consecutive chunks of at most size elements, preserving order.
// The chunks share the backing array of items.
func Split[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size < 1 {
		size = 1
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end:end])
	}
	return chunks
}
