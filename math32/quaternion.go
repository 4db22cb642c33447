// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Axes used for layout rotations.
var (
	XAxis = Vec3(1, 0, 0)
	YAxis = Vec3(0, 1, 0)
	ZAxis = Vec3(0, 0, 1)
)

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from the specified
// axis (which must be normalized) and angle in radians.
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	halfAngle := angle / 2
	s := Sin(halfAngle)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: Cos(halfAngle)}
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// Mul returns the multiplication of this quaternion by other (q * other),
// which applies other first and then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Dot returns the dot product of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// IsEqualTol returns whether q and other represent the same rotation
// within tol, treating q and -q as equal.
func (q Quat) IsEqualTol(other Quat, tol float32) bool {
	return Abs(Abs(q.Dot(other))-1) <= tol
}

// Slerp returns the spherical linear interpolation between q and other
// by t in [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	if t <= 0 {
		return q
	}
	if t >= 1 {
		return other
	}
	cosHalfTheta := q.Dot(other)
	if cosHalfTheta < 0 {
		other = Quat{-other.X, -other.Y, -other.Z, -other.W}
		cosHalfTheta = -cosHalfTheta
	}
	if cosHalfTheta >= 1 {
		return q
	}
	sinHalfTheta := Sqrt(1 - cosHalfTheta*cosHalfTheta)
	if Abs(sinHalfTheta) < 0.001 {
		return Quat{
			X: 0.5 * (q.X + other.X),
			Y: 0.5 * (q.Y + other.Y),
			Z: 0.5 * (q.Z + other.Z),
			W: 0.5 * (q.W + other.W),
		}
	}
	halfTheta := Atan2(sinHalfTheta, cosHalfTheta)
	ra := Sin((1-t)*halfTheta) / sinHalfTheta
	rb := Sin(t*halfTheta) / sinHalfTheta
	return Quat{
		X: q.X*ra + other.X*rb,
		Y: q.Y*ra + other.Y*rb,
		Z: q.Z*ra + other.Z*rb,
		W: q.W*ra + other.W*rb,
	}
}
