package address

import (
	"strings"

	"github.com/xioTechnologies/OSC99/errs"
)

// PartAt returns the index-th '/'-delimited part of an address or address
// pattern (0-based), not including the delimiters themselves. It returns
// ErrNotEnoughParts if index is out of range.
//
// A leading '/' does not itself introduce an empty leading part: for
// "/example/pattern", PartAt(s, 0) is "example" and PartAt(s, 1) is
// "pattern".
func PartAt(s string, index int) (string, error) {
	if index < 0 {
		return "", errs.New(errs.CodeNotEnoughPartsInAddressPattern, nil)
	}

	trimmed := strings.TrimPrefix(s, "/")
	if trimmed == "" {
		return "", errs.New(errs.CodeNotEnoughPartsInAddressPattern, nil)
	}

	start := 0
	part := 0
	for i := 0; i <= len(trimmed); i++ {
		if i == len(trimmed) || trimmed[i] == '/' {
			if part == index {
				return trimmed[start:i], nil
			}
			part++
			start = i + 1
		}
	}
	return "", errs.New(errs.CodeNotEnoughPartsInAddressPattern, nil)
}
