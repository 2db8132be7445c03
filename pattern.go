package sigscan

import (
	"github.com/coregx/sigscan/internal/bucket"
	"github.com/coregx/sigscan/internal/simdwidth"
)

// chunk is one Width-byte slice of a padded pattern: the broadcast first
// byte used for the cheap filter step, the loaded pattern-byte words used
// for the full compare, and a bitmask of which lanes carry a real pattern
// byte (as opposed to a wildcard or tail pad).
type chunk struct {
	firstByte byte
	words     []uint64
	mask      uint64
}

// PreparedPattern is the vectorized form of a Pattern, built once by Prepare
// and then shared read-only across any number of Searchers.
//
// PreparedPattern is immutable after construction and safe for concurrent
// use by multiple goroutines, each driving its own Searcher.
type PreparedPattern struct {
	// startOffset is the number of leading wildcards stripped from the
	// caller's original pattern.
	startOffset int
	// origPat is the pattern after stripping leading and trailing
	// wildcards; its first and last cells are always concrete bytes.
	origPat Pattern
	// size is len(origPat).
	size int
	// paddedSize is size rounded up to a multiple of the chunk width.
	paddedSize int
	chunks     []chunk
}

// Size returns the length of the pattern after trimming leading and
// trailing wildcards.
func (p *PreparedPattern) Size() int {
	return p.size
}

// StartOffset returns the number of leading wildcards stripped from the
// original pattern.
func (p *PreparedPattern) StartOffset() int {
	return p.startOffset
}

// Prepare builds a PreparedPattern from a raw cell sequence.
//
// It fails with ErrEmptyOrAllWildcard if pat contains no concrete byte cell.
//
// Example:
//
//	pat, err := cellspec.Parse(0xDE, 0xAD, cellspec.Any, 0xBE, 0xEF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	prepared, err := sigscan.Prepare(pat)
func Prepare(pat Pattern) (*PreparedPattern, error) {
	lastByte := -1
	firstByte := -1
	for i, c := range pat {
		if !c.IsWildcard() {
			if firstByte < 0 {
				firstByte = i
			}
			lastByte = i
		}
	}
	if lastByte < 0 {
		return nil, ErrEmptyOrAllWildcard
	}

	// Trim trailing wildcards, then leading wildcards.
	trimmed := pat[:lastByte+1]
	startOffset := firstByte
	q := trimmed[startOffset:]

	width := simdwidth.Width
	size := len(q)
	paddedSize := size
	if r := size % width; r != 0 {
		paddedSize += width - r
	}

	byteImage := make([]byte, paddedSize)
	maskImage := make([]bool, paddedSize)
	for i, c := range q {
		if v, ok := c.Byte(); ok {
			byteImage[i] = v
			maskImage[i] = true
		}
	}

	numChunks := paddedSize / width
	chunks := make([]chunk, numChunks)
	wordsPerChunk := width / 8
	for k := 0; k < numChunks; k++ {
		lo := k * width
		hi := lo + width
		bytes := byteImage[lo:hi]
		maskBits := maskImage[lo:hi]

		var maskBitmask uint64
		for i, m := range maskBits {
			if m {
				maskBitmask |= 1 << uint(i)
			}
		}

		chunks[k] = chunk{
			firstByte: bytes[0],
			words:     simdwidth.LoadWords(bytes, wordsPerChunk),
			mask:      maskBitmask,
		}
	}

	origPat := make(Pattern, len(q))
	copy(origPat, q)

	return &PreparedPattern{
		startOffset: startOffset,
		origPat:     origPat,
		size:        size,
		paddedSize:  paddedSize,
		chunks:      chunks,
	}, nil
}

// scalarMatchAt finds the smallest offset in region at which origPat matches
// under a linear sliding window, for use once fewer than paddedSize bytes of
// haystack remain.
func (p *PreparedPattern) scalarMatchAt(region []byte) (int, bool) {
	byteImage := make([]byte, p.size)
	maskImage := make([]bool, p.size)
	for i, c := range p.origPat {
		if v, ok := c.Byte(); ok {
			byteImage[i] = v
			maskImage[i] = true
		}
	}
	return bucket.ScalarSlide(region, byteImage, maskImage)
}
