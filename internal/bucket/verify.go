// Package bucket holds the "verify a candidate position" helpers shared by
// Searcher's SIMD chunk path and its scalar tail path.
//
// The name and shape are carried over from a multi-pattern SIMD prefilter
// design that separates "find a cheap candidate" from "verify the candidate
// against the real pattern bytes". This package has no multi-pattern buckets
// of its own: a single wildcarded pattern needs no pattern-to-bucket
// assignment, but it keeps the same candidate-then-verify shape, adapted to a
// masked single-pattern compare.
package bucket

// ChunkMatches reports whether a full masked chunk compare succeeded: eq is
// the per-lane equality bitmask (bit i set iff haystack lane i equals the
// pattern lane), and mask has bit i set iff lane i carries a concrete
// pattern byte (as opposed to a wildcard or tail pad). The chunk matches iff
// every concrete lane was equal.
func ChunkMatches(eq, mask uint64) bool {
	return eq&mask == mask
}

// MaskedMatch reports whether haystack equals byteImage at every position
// marked true in maskImage. haystack, byteImage, and maskImage must have
// equal length.
func MaskedMatch(haystack, byteImage []byte, maskImage []bool) bool {
	for i, want := range byteImage {
		if maskImage[i] && haystack[i] != want {
			return false
		}
	}
	return true
}

// ScalarSlide finds the smallest offset o such that
// MaskedMatch(haystack[o:o+len(byteImage)], byteImage, maskImage) holds,
// using a linear sliding window. It reports (0, false) if no such offset
// exists.
func ScalarSlide(haystack, byteImage []byte, maskImage []bool) (int, bool) {
	patLen := len(byteImage)
	for o := 0; o+patLen <= len(haystack); o++ {
		if MaskedMatch(haystack[o:o+patLen], byteImage, maskImage) {
			return o, true
		}
	}
	return 0, false
}
