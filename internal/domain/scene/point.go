package scene

// Point3 is a world-space position.
type Point3 struct {
	X, Y, Z float32
}

// DistanceSquared returns the squared Euclidean distance between p and q.
// No square root is taken; compare against squared thresholds.
func (p Point3) DistanceSquared(q Point3) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return dx*dx + dy*dy + dz*dz
}
