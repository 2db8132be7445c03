// Package sigscan provides high-throughput byte-pattern searching over
// binary data, including patterns with wildcard byte positions.
//
// sigscan is built for binary signature scanning: short patterns (tens of
// bytes), large haystacks (megabytes to gigabytes), throughput dominant. It
// trades the generality of a full regex engine for a tight two-phase SIMD
// match: a first-byte broadcast filter followed by a full masked compare,
// with a scalar fallback once fewer than one chunk's worth of haystack
// remains.
//
// Basic usage:
//
//	pattern, err := cellspec.Parse(0xDE, 0xAD, cellspec.Any, 0xBE, 0xEF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	searcher, err := sigscan.NewSearcher(haystack, pattern)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    offset, ok := searcher.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(offset)
//	}
//
// A PreparedPattern is immutable once built and safe to share across
// goroutines; build one Searcher per haystack per goroutine, since a
// Searcher owns a mutable cursor.
package sigscan
