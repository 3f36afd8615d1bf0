// Package xsort provides the sorted-merge primitive the discovery
// engine uses to combine entry points with newly harvested cross
// references on every fixpoint cycle.
package xsort

import "sm83dis/xaddr"

// Merge combines two already-sorted slices into one sorted slice via a
// standard two-pointer merge. It does not deduplicate — callers that
// need a deduplicated result call Dedup on the output themselves, since
// not every caller wants that.
func Merge(a, b []xaddr.XAddr) []xaddr.XAddr {
	out := make([]xaddr.XAddr, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Less(b[j]) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Dedup removes consecutive equal elements from a sorted slice, returning
// a new slice. Passing an unsorted slice gives unspecified results.
func Dedup(xs []xaddr.XAddr) []xaddr.XAddr {
	if len(xs) == 0 {
		return xs
	}
	out := make([]xaddr.XAddr, 1, len(xs))
	out[0] = xs[0]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
