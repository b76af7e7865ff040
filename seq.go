package lookup

import "iter"

// flatMap yields every element of f(v) for each v in seq, in order.
func flatMap[V, R any](seq iter.Seq[V], f func(V) iter.Seq[R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			for r := range f(v) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// concat yields the elements of each sequence in turn.
func concat[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// lazy calls load when the sequence is first pulled and yields its result.
func lazy[V any](load func() []V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range load() {
			if !yield(v) {
				return
			}
		}
	}
}

// mapSeq yields f(v) for each v in seq.
func mapSeq[V, R any](seq iter.Seq[V], f func(V) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// filter yields the elements of seq for which keep returns true.
func filter[V any](seq iter.Seq[V], keep func(V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// distinct drops repeated values, keeping the first occurrence of each.
// Each iteration of the returned sequence starts with a fresh seen-set.
func distinct[V comparable](seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		seen := make(map[V]struct{})
		for v := range seq {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
