package minipaint

// Algorithm selects which line rasterization algorithm a Context uses.
//
// All three variants reproduce the same endpoints exactly; they differ in
// arithmetic (real vs. integer) and output (binary pixels vs. coverage
// pairs). The mode is per-Context, not global.
type Algorithm int

const (
	// AlgorithmBresenham is the integer decision-variable algorithm
	// (default). Integer-only inner loop, exactly one pixel per step on
	// the dominant axis.
	AlgorithmBresenham Algorithm = iota

	// AlgorithmDDA steps both coordinates by constant real increments
	// and rounds each sample. Simpler but floating-point throughout.
	AlgorithmDDA

	// AlgorithmWu is Xiaolin Wu's anti-aliased algorithm. It emits
	// (pixel, coverage) pairs; the Context stores the stroke color with
	// coverage-scaled alpha and never blends against the destination.
	AlgorithmWu
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBresenham:
		return "Bresenham"
	case AlgorithmDDA:
		return "DDA"
	case AlgorithmWu:
		return "Wu"
	default:
		return "Unknown"
	}
}
