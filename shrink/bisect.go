package shrink

// bisectMinimal finds the smallest n in [lo, hi] for which passes(n) is
// true. It assumes passes(hi) holds (the unedited candidate always
// does, by the shrink loop's own invariant) and searches leftward;
// passes is not required to be strictly monotonic, only "shrinking
// tends to keep working," the same assumption every bisecting shrinker
// in this style makes.
func bisectMinimal(lo, hi int, passes func(int) bool) int {
	if lo >= hi {
		return hi
	}
	if passes(lo) {
		return lo
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if passes(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return hi
}
