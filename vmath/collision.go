package vmath

// CirclesOverlap reports circle-circle intersection: distance(centers) <= r1 + r2
// Compared squared to stay exact at the touching boundary
func CirclesOverlap(p1 Vec2, r1 float64, p2 Vec2, r2 float64) bool {
	sum := r1 + r2
	return p2.Sub(p1).LenSq() <= sum*sum
}
