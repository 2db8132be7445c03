package sigscan

import (
	"math/bits"

	"github.com/coregx/sigscan/internal/bucket"
	"github.com/coregx/sigscan/internal/simdwidth"
)

// Searcher is a lazy, single-pass iterator over the match offsets of a
// PreparedPattern in a haystack.
//
// Searcher owns a mutable cursor (remaining) and is not safe to advance
// from multiple goroutines concurrently. The haystack it borrows must
// outlive the Searcher. To search the same haystack again, construct a new
// Searcher; the PreparedPattern may be reused.
type Searcher struct {
	data      []byte
	remaining []byte
	pattern   *PreparedPattern
}

// NewSearcher prepares pat and constructs a Searcher over data.
//
// It fails with ErrEmptyOrAllWildcard if pat contains no concrete byte
// cell.
//
// Example:
//
//	searcher, err := sigscan.NewSearcher(haystack, pattern)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	offset, ok := searcher.Next()
func NewSearcher(data []byte, pat Pattern) (*Searcher, error) {
	prepared, err := Prepare(pat)
	if err != nil {
		return nil, err
	}
	return NewSearcherFromPrepared(data, prepared), nil
}

// NewSearcherFromPrepared constructs a Searcher over data using an
// already-built PreparedPattern. Multiple Searchers may share one
// PreparedPattern across any number of goroutines, each searching its own
// haystack.
func NewSearcherFromPrepared(data []byte, prepared *PreparedPattern) *Searcher {
	return &Searcher{
		data:      data,
		remaining: data,
		pattern:   prepared,
	}
}

// Next returns the next match offset and true, or (0, false) once the
// haystack is exhausted. Offsets returned by successive calls are strictly
// increasing; matches may overlap. Once Next returns false, all subsequent
// calls return false.
func (s *Searcher) Next() (int, bool) {
	width := simdwidth.Width
	wordsPerChunk := width / 8

	for {
		if len(s.remaining) < s.pattern.size {
			return 0, false
		}

		if len(s.remaining) < s.pattern.paddedSize {
			off, ok := s.pattern.scalarMatchAt(s.remaining)
			if !ok {
				s.remaining = s.remaining[len(s.remaining):]
				return 0, false
			}
			result := (len(s.data) - len(s.remaining)) + off - s.pattern.startOffset
			s.remaining = s.remaining[off+1:]
			return result, true
		}

		// attemptStart is the haystack window this attempt verifies against
		// chunk 0 onward. Every rewind on mismatch is expressed relative to
		// attemptStart, never to the partially-advanced per-chunk cursor.
		//
		// Only chunk 0 runs the cheap first-byte broadcast filter: its
		// first lane is, by construction, a non-wildcard pattern byte, so
		// "no lane in this window equals it" and "the matching lane isn't
		// at position 0" are both genuine, cheap rejections. A continuation
		// chunk's first lane can itself be a wildcard pad byte (see
		// Prepare), so running the same filter there could reject a window
		// the full masked compare would have accepted; continuation chunks
		// go straight to the masked compare instead.
		attemptStart := s.remaining
		search := attemptStart
		matched := true

		for idx, c := range s.pattern.chunks {
			loaded := simdwidth.LoadWords(search[:width], wordsPerChunk)

			if idx == 0 {
				fb := simdwidth.EqBroadcastBitmask(loaded, c.firstByte)
				if fb == 0 {
					s.remaining = attemptStart[width:]
					matched = false
					break
				}
				if ctz := bits.TrailingZeros64(fb); ctz != 0 {
					s.remaining = attemptStart[ctz:]
					matched = false
					break
				}
			}

			eq := simdwidth.EqBitmask(loaded, c.words)
			if !bucket.ChunkMatches(eq, c.mask) {
				s.remaining = attemptStart[1:]
				matched = false
				break
			}

			search = search[width:]
		}

		if !matched {
			continue
		}

		result := len(s.data) - len(attemptStart) - s.pattern.startOffset
		s.remaining = attemptStart[1:]
		return result, true
	}
}
