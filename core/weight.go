package core

import "golang.org/x/exp/constraints"

// Inf returns the largest representable value of W, used by every engine
// as the "unreachable" sentinel. For unsigned types this is the all-ones
// pattern; for signed types it is the positive maximum.
func Inf[W constraints.Integer]() W {
	var zero W
	if ^zero > zero { // unsigned: flipping zero yields the maximum
		return ^zero
	}
	// Signed: double a set bit up to the highest non-sign position, then
	// fill the lower bits. Works for any width without unsafe.
	hi := W(1)
	for next := hi << 1; next > hi; next = hi << 1 {
		hi = next
	}

	return hi - 1 + hi
}

// SaturatingAdd combines two weights without ever wrapping past a
// sentinel: if either operand is Inf, or the sum overflows the maximum,
// the result clamps to Inf; a signed sum that underflows clamps to the
// type minimum. Every place a weight meets a possibly-sentinel value goes
// through this helper, keeping the overflow contract testable in
// isolation.
func SaturatingAdd[W constraints.Integer](a, b W) W {
	inf := Inf[W]()
	if a == inf || b == inf {
		return inf
	}
	sum := a + b
	switch {
	case b > 0 && sum < a: // wrapped past the maximum
		return inf
	case b < 0 && sum > a: // wrapped past the minimum (signed only)
		return -inf - 1
	}

	return sum
}
