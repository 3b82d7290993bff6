package effect

import "math/rand"

// sweep advances every particle in place and compacts out the ones keep
// rejects. The backing array is reused
func sweep[T any](ps []T, keep func(p *T) bool) []T {
	n := 0
	for i := range ps {
		if keep(&ps[i]) {
			ps[n] = ps[i]
			n++
		}
	}
	clear(ps[n:])
	return ps[:n]
}

// signedUnit returns a value in [-0.5, 0.5)
func signedUnit(r *rand.Rand) float64 {
	return r.Float64() - 0.5
}
