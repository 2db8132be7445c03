// Package cellspec is the pattern-literal construction surface: a
// convenience by which callers write a mixed list of byte-like tokens and a
// distinguished wildcard sentinel, and get back a sigscan.Pattern.
//
// Other ecosystems express this kind of literal with a macro that turns
// bare tokens and a wildcard placeholder into a typed cell list at compile
// time. Go has no token-level macros, so the token list here is an ordinary
// variadic []any, validated and converted at call time. cellspec is a leaf
// package; sigscan's core never imports it back.
package cellspec

import (
	"fmt"

	"github.com/coregx/sigscan"
)

// wildcardToken is the sentinel type of cellspec.Any. It is unexported so
// callers cannot construct their own wildcard tokens that would silently
// behave the same; Any is the only value of this type.
type wildcardToken struct{}

// Any is the wildcard sentinel: pass it in place of a byte value to Parse to
// mark that position as matching any byte.
var Any = wildcardToken{}

// Parse converts a mixed list of byte-like tokens and the Any sentinel into
// a sigscan.Pattern. Each token must be a byte, uint8, int whose value fits
// in a byte (0-255), or cellspec.Any.
//
// Example:
//
//	pattern, err := cellspec.Parse(0xDE, 0xAD, cellspec.Any, 0xBE, 0xEF)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(tokens ...any) (sigscan.Pattern, error) {
	pat := make(sigscan.Pattern, len(tokens))
	for i, tok := range tokens {
		cell, err := parseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("cellspec: token %d: %w", i, err)
		}
		pat[i] = cell
	}
	return pat, nil
}

// MustParse is like Parse but panics if tokens cannot be converted.
//
// Example:
//
//	var signature = cellspec.MustParse(0xDE, 0xAD, cellspec.Any, 0xBE, 0xEF)
func MustParse(tokens ...any) sigscan.Pattern {
	pat, err := Parse(tokens...)
	if err != nil {
		panic("cellspec: Parse: " + err.Error())
	}
	return pat
}

func parseToken(tok any) (sigscan.Cell, error) {
	switch v := tok.(type) {
	case wildcardToken:
		return sigscan.WildcardCell(), nil
	case byte:
		return sigscan.ByteCell(v), nil
	case int:
		if v < 0 || v > 0xFF {
			return sigscan.Cell{}, fmt.Errorf("value %d out of byte range", v)
		}
		return sigscan.ByteCell(byte(v)), nil
	default:
		return sigscan.Cell{}, fmt.Errorf("unsupported token type %T", tok)
	}
}
