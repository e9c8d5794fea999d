package util

import (
	"cmp"
	"slices"

	"github.com/kbukum/flowkit/errors"
)

// SortedKeys returns the keys of a map in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Unique returns a slice with duplicate values removed, keeping first occurrences.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// SortUniqueStrings removes duplicates and sorts the result.
func SortUniqueStrings(list []string) []string {
	result := Unique(list)
	slices.Sort(result)
	return result
}

// Flatten concatenates the sub-lists in order.
func Flatten[T any](lists [][]T) []T {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	result := make([]T, 0, n)
	for _, l := range lists {
		result = append(result, l...)
	}
	return result
}

// FlatEvenly interleaves the sub-lists round-robin: the first element of
// each list, then the second of each, and so on. Exhausted lists are
// skipped, so longer lists continue after shorter ones run out.
//
//	FlatEvenly([][]int{{1, 2, 3}, {4, 5, 6}}) // [1 4 2 5 3 6]
func FlatEvenly[T any](lists [][]T) []T {
	longest, total := 0, 0
	for _, l := range lists {
		longest = max(longest, len(l))
		total += len(l)
	}
	result := make([]T, 0, total)
	for i := 0; i < longest; i++ {
		for _, l := range lists {
			if i < len(l) {
				result = append(result, l[i])
			}
		}
	}
	return result
}

// SplitList splits list into n contiguous chunks whose lengths differ by at
// most one; the first len(list)%n chunks get the extra element.
func SplitList[T any](list []T, n int) ([][]T, error) {
	if n <= 0 {
		return nil, errors.InvalidArgument("n", "chunk count must be positive")
	}
	k, m := len(list)/n, len(list)%n
	chunks := make([][]T, n)
	for i := 0; i < n; i++ {
		start := i*k + min(i, m)
		end := (i+1)*k + min(i+1, m)
		chunks[i] = list[start:end:end]
	}
	return chunks, nil
}
