package field

// Validator tracks whether a component's derived data is current.
//
// A component is valid after a successful recompute and until it is
// invalidated, either explicitly or because an upstream generation it
// recorded has since moved on. Upstream state is compared on read.
type Validator struct {
	valid      bool
	generation uint64
	upstream   []uint64
}

// IsValid reports whether the data is current with respect to the given
// upstream generations, which must be passed in the same order as to
// [Validator.Validated].
func (v *Validator) IsValid(upstream ...uint64) bool {
	if !v.valid || len(upstream) != len(v.upstream) {
		return false
	}
	for i, g := range upstream {
		if v.upstream[i] != g {
			return false
		}
	}
	return true
}

// Invalidate marks the data stale. It is O(1) and may be called any number
// of times before the next recompute.
func (v *Validator) Invalidate() {
	v.valid = false
}

// Validated records a successful recompute against the given upstream
// generations and advances this component's own generation.
func (v *Validator) Validated(upstream ...uint64) {
	v.valid = true
	v.generation++
	v.upstream = append(v.upstream[:0], upstream...)
}

// Generation returns the number of recomputes so far. Downstream components
// record it to detect that this component's output changed.
func (v *Validator) Generation() uint64 {
	return v.generation
}
