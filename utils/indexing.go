package utils

import "sort"

type Index []int

func NewIndex(N int) (I Index) {
	I = make(Index, N)
	return
}

// NewRangeOffset returns the 1-based inclusive range [rmin, rmax] shifted to
// 0-based indices.
func NewRangeOffset(rmin, rmax int) (r Index) {
	var (
		N = rmax - rmin + 1
	)
	r = make(Index, N)
	for i := range r {
		r[i] = i + rmin - 1
	}
	return
}

// NewRange returns the 0-based inclusive range [rmin, rmax].
func NewRange(rmin, rmax int) (r Index) {
	var (
		N = rmax - rmin + 1
	)
	r = make(Index, N)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func NewFromFloat(IF []float64) (r Index) {
	r = make(Index, len(IF))
	for i, val := range IF {
		r[i] = int(val)
	}
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = ival + val
	}
	return
}

func (I Index) Min() (min int) {
	min = I[0]
	for _, val := range I {
		if val < min {
			min = val
		}
	}
	return
}

func (I Index) Max() (max int) {
	max = I[0]
	for _, val := range I {
		if val > max {
			max = val
		}
	}
	return
}

// Unique returns the sorted set of distinct values in I.
func (I Index) Unique() (r Index) {
	var (
		seen = make(map[int]struct{}, len(I))
	)
	r = make(Index, 0, len(I))
	for _, val := range I {
		if _, ok := seen[val]; !ok {
			seen[val] = struct{}{}
			r = append(r, val)
		}
	}
	sort.Ints(r)
	return
}
