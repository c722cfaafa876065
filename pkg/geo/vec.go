package geo

import "math"

// Vec3 represents a point or vector in room coordinates (meters).
// X spans the room width, Y the length, Z the height.
type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Zero is the origin.
var Zero = Vec3{}

// V is a shorthand constructor for Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + q.
func (v Vec3) Add(q Vec3) Vec3 {
	return Vec3{v.X + q.X, v.Y + q.Y, v.Z + q.Z}
}

// Sub returns v - q.
func (v Vec3) Sub(q Vec3) Vec3 {
	return Vec3{v.X - q.X, v.Y - q.Y, v.Z - q.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the same direction.
// Returns zero vector if length is zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Dot returns the dot product of v and q.
func (v Vec3) Dot(q Vec3) float64 {
	return v.X*q.X + v.Y*q.Y + v.Z*q.Z
}

// Distance returns the Euclidean distance from v to q.
func (v Vec3) Distance(q Vec3) float64 {
	return v.Sub(q).Length()
}
