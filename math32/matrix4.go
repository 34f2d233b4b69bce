// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// AffineMatrix is a 4x4 affine transform stored column-major, whose bottom
// row is always (0,0,0,1). Translation lives at indices 12, 13, 14.
//
// A plain Vector3 carries no role tag; whether a multiply includes
// translation is chosen at the call site via TransformPoint (w=1) or
// TransformDirection (w=0), rather than by a tagged vector subtype.
type AffineMatrix [16]float32

// set fills m row by row, starting at row1 column1, row1 column2, and so on,
// storing internally in column-major order.
func set(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float32,
) AffineMatrix {
	return AffineMatrix{
		n11, n21, n31, n41,
		n12, n22, n32, n42,
		n13, n23, n33, n43,
		n14, n24, n34, n44,
	}
}

// Identity returns the 4x4 identity affine matrix.
func Identity() AffineMatrix {
	return set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// NewAffineMatrix builds an AffineMatrix from 16 values already laid out in
// column-major order.
func NewAffineMatrix(m [16]float32) AffineMatrix {
	return AffineMatrix(m)
}

// Translation returns the translation component of m.
func (m AffineMatrix) Translation() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// SetTranslation returns a copy of m with its translation component
// replaced; the rotational part is untouched.
func (m AffineMatrix) SetTranslation(t Vector3) AffineMatrix {
	out := m
	out[12] = t.X
	out[13] = t.Y
	out[14] = t.Z
	return out
}

// Translate returns m with delta added to its translation component.
func (m AffineMatrix) Translate(delta Vector3) AffineMatrix {
	return m.SetTranslation(m.Translation().Add(delta))
}

// TransformPoint applies m to v as a point: (M . v) + translation.
func (m AffineMatrix) TransformPoint(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// TransformDirection applies m to v as a direction: M . v, with translation
// skipped.
func (m AffineMatrix) TransformDirection(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// InverseTransformDirection applies the transpose of m's upper-left 3x3 to
// v. For an orthogonal rotation matrix this is the inverse rotation; used by
// the resolver to bring a world-frame angular velocity back into the body
// frame.
func (m AffineMatrix) InverseTransformDirection(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Multiply returns m * other (other applied first, then m).
func (m AffineMatrix) Multiply(other AffineMatrix) AffineMatrix {
	a, b := m, other

	a11, a12, a13, a14 := a[0], a[4], a[8], a[12]
	a21, a22, a23, a24 := a[1], a[5], a[9], a[13]
	a31, a32, a33, a34 := a[2], a[6], a[10], a[14]

	b11, b12, b13, b14 := b[0], b[4], b[8], b[12]
	b21, b22, b23, b24 := b[1], b[5], b[9], b[13]
	b31, b32, b33, b34 := b[2], b[6], b[10], b[14]

	var out AffineMatrix
	out[0] = a11*b11 + a12*b21 + a13*b31
	out[4] = a11*b12 + a12*b22 + a13*b32
	out[8] = a11*b13 + a12*b23 + a13*b33
	out[12] = a11*b14 + a12*b24 + a13*b34 + a14

	out[1] = a21*b11 + a22*b21 + a23*b31
	out[5] = a21*b12 + a22*b22 + a23*b32
	out[9] = a21*b13 + a22*b23 + a23*b33
	out[13] = a21*b14 + a22*b24 + a23*b34 + a24

	out[2] = a31*b11 + a32*b21 + a33*b31
	out[6] = a31*b12 + a32*b22 + a33*b32
	out[10] = a31*b13 + a32*b23 + a33*b33
	out[14] = a31*b14 + a32*b24 + a33*b34 + a34

	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
	return out
}

// rotationAxis builds the pure-rotation affine matrix (Rodrigues' formula)
// for a unit axis and an angle in radians.
func rotationAxis(axis Vector3, angle float32) AffineMatrix {
	c := Cos(angle)
	s := Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	tx, ty := t*x, t*y

	return set(
		tx*x+c, tx*y-s*z, tx*z+s*y, 0,
		tx*y+s*z, ty*y+c, ty*z-s*x, 0,
		tx*z-s*y, ty*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

// Rotate post-multiplies m by the rotation of angle radians about the unit
// axis, affecting only the upper-left 3x3; translation is left unchanged.
func (m AffineMatrix) Rotate(angle float32, axis Vector3) AffineMatrix {
	t := m.Translation()
	out := m.Multiply(rotationAxis(axis, angle))
	return out.SetTranslation(t)
}
