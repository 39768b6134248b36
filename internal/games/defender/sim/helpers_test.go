package sim

// fixedSource always returns the same roll, clamped into [0, n).
type fixedSource int

func (f fixedSource) Intn(n int) int {
	return min(int(f), n-1)
}

// Rolls that make enemies always or never fire with the default tuning.
const (
	alwaysFire fixedSource = 99
	neverFire  fixedSource = 0
)
