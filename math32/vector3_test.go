package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3DotCrossNorm(t *testing.T) {
	a := NewVector3(1, 0, 0)
	b := NewVector3(0, 1, 0)
	assert.Equal(t, float32(0), a.Dot(b))
	assert.Equal(t, NewVector3(0, 0, 1), a.Cross(b))
	assert.Equal(t, float32(1), a.Norm())
}

func TestVector3UnitOfZeroVectorReturnsZero(t *testing.T) {
	assert.Equal(t, Zero3, Zero3.Unit())
}

func TestVector3UnitNormalizesToOne(t *testing.T) {
	v := NewVector3(3, 4, 0)
	u := v.Unit()
	assert.InDelta(t, 1, u.Norm(), 1e-6)
}

func TestVector3AngleToOrthogonalIsHalfPi(t *testing.T) {
	a := NewVector3(2, 0, 0)
	b := NewVector3(0, 5, 0)
	assert.InDelta(t, Pi/2, a.AngleTo(b), 1e-5)
}

func TestVector3AngleToParallelIsZero(t *testing.T) {
	a := NewVector3(2, 0, 0)
	b := NewVector3(7, 0, 0)
	assert.InDelta(t, 0, a.AngleTo(b), 1e-5)
}

func TestVector3Equals(t *testing.T) {
	assert.True(t, NewVector3(1, 2, 3).Equals(NewVector3(1, 2, 3)))
	assert.False(t, NewVector3(1, 2, 3).Equals(NewVector3(1, 2, 3.0001)))
}
