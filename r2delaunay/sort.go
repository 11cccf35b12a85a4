// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

const insertionSortThreshold = 20

// quicksort orders ids[left..right] by ascending dists[id]. The sort is not
// stable.
func quicksort(ids []int, dists []float64, left, right int) {
	for right-left > insertionSortThreshold {
		median := (left + right) >> 1
		i := left + 1
		j := right

		swap(ids, median, i)
		if dists[ids[left]] > dists[ids[right]] {
			swap(ids, left, right)
		}
		if dists[ids[i]] > dists[ids[right]] {
			swap(ids, i, right)
		}
		if dists[ids[left]] > dists[ids[i]] {
			swap(ids, left, i)
		}

		temp := ids[i]
		tempDist := dists[temp]
		for {
			for {
				i++
				if dists[ids[i]] >= tempDist {
					break
				}
			}
			for {
				j--
				if dists[ids[j]] <= tempDist {
					break
				}
			}
			if j < i {
				break
			}
			swap(ids, i, j)
		}

		ids[left+1] = ids[j]
		ids[j] = temp

		// recurse into the smaller half, loop on the larger one
		if right-i+1 >= j-left {
			quicksort(ids, dists, left, j-1)
			left = i
		} else {
			quicksort(ids, dists, i, right)
			right = j - 1
		}
	}

	for i := left + 1; i <= right; i++ {
		temp := ids[i]
		tempDist := dists[temp]
		j := i - 1
		for j >= left && dists[ids[j]] > tempDist {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = temp
	}
}

func swap(ids []int, i, j int) {
	ids[i], ids[j] = ids[j], ids[i]
}
