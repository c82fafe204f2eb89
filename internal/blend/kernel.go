package blend

// Kernel is a symmetric 5-tap correlation kernel.
type Kernel [5]float64

// Radius is the number of taps on either side of the center tap.
const Radius = 2

var (
	// ReduceKernel sums to 1 and low-passes an image before decimation.
	ReduceKernel = Kernel{1.0 / 20, 5.0 / 20, 8.0 / 20, 5.0 / 20, 1.0 / 20}

	// ExpandKernel sums to 2. Applied along both axes of a zero-interleaved
	// image it restores the energy lost to the inserted zeros.
	ExpandKernel = Kernel{1.0 / 10, 5.0 / 10, 8.0 / 10, 5.0 / 10, 1.0 / 10}
)

func (k Kernel) Sum() float64 {
	var s float64
	for _, w := range k {
		s += w
	}
	return s
}
