package osc99types

import "fmt"

func newLimitsError(what string, got, lo, hi int) error {
	return fmt.Errorf("osc99: %s %d out of range [%d,%d]", what, got, lo, hi)
}
