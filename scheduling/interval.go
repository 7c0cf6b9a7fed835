package scheduling

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any time. Intervals that merely touch
// (aEnd == bStart) do not overlap, so back-to-back sessions are legal.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
