package sigscan

import "errors"

// ErrEmptyOrAllWildcard is returned by Prepare and NewSearcher when a
// pattern contains no concrete byte cell: either it is empty, or every cell
// is a wildcard. Such a pattern matches everywhere and cannot be prepared
// into a searchable form.
var ErrEmptyOrAllWildcard = errors.New("sigscan: pattern is empty or all wildcard")
