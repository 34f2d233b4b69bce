package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigidmesh/rigidmesh/body"
	"github.com/rigidmesh/rigidmesh/collision"
	"github.com/rigidmesh/rigidmesh/internal/geom"
	"github.com/rigidmesh/rigidmesh/math32"
)

func simplePool(t *testing.T) *geom.Pool {
	t.Helper()
	pool, err := geom.NewPool(
		[]geom.Triangle{{I: 0, J: 1, K: 2}},
		[]math32.Vector3{
			math32.NewVector3(-1, -1, 0),
			math32.NewVector3(1, -1, 0),
			math32.NewVector3(0, 1, 0),
		},
		[]math32.Vector3{math32.NewVector3(0, 0, 1)},
	)
	require.NoError(t, err)
	return pool
}

func newBody(t *testing.T, pool *geom.Pool, pos, vel math32.Vector3, mass float32) *body.Body {
	t.Helper()
	b, err := body.New(pool, math32.Identity().SetTranslation(pos), vel, 0, math32.NewVector3(0, 1, 0), mass, math32.NewVector3(1, 1, 1))
	require.NoError(t, err)
	return b
}

func TestElasticHeadOnEqualMassSwapsVelocities(t *testing.T) {
	pool := simplePool(t)
	a := newBody(t, pool, math32.Zero3, math32.NewVector3(1, 0, 0), 1)
	b := newBody(t, pool, math32.NewVector3(1, 0, 0), math32.NewVector3(-1, 0, 0), 1)

	c := collision.Contact{Point: math32.NewVector3(0.5, 0, 0), Normal: math32.NewVector3(1, 0, 0)}
	Elastic(a, b, c)

	assert.InDelta(t, -1, a.LinearVelocity().X, 1e-4)
	assert.InDelta(t, 1, b.LinearVelocity().X, 1e-4)
	assert.InDelta(t, 0, a.AngularSpeed(), 1e-4)
	assert.InDelta(t, 0, b.AngularSpeed(), 1e-4)
}

func TestElasticUnequalMassMatchesOneDimensionalFormula(t *testing.T) {
	pool := simplePool(t)
	mA, mB := float32(9), float32(1)
	vA0, vB0 := float32(0.1), float32(-0.1)

	a := newBody(t, pool, math32.Zero3, math32.NewVector3(vA0, 0, 0), mA)
	b := newBody(t, pool, math32.NewVector3(1, 0, 0), math32.NewVector3(vB0, 0, 0), mB)

	c := collision.Contact{Point: math32.NewVector3(0.5, 0, 0), Normal: math32.NewVector3(1, 0, 0)}
	Elastic(a, b, c)

	wantVA := ((mA-mB)*vA0 + 2*mB*vB0) / (mA + mB)
	wantVB := ((mB-mA)*vB0 + 2*mA*vA0) / (mA + mB)

	assert.InDelta(t, wantVA, a.LinearVelocity().X, 1e-4)
	assert.InDelta(t, wantVB, b.LinearVelocity().X, 1e-4)
}

func TestElasticConservesLinearMomentum(t *testing.T) {
	pool := simplePool(t)
	mA, mB := float32(2), float32(5)
	a := newBody(t, pool, math32.Zero3, math32.NewVector3(3, 0, 0), mA)
	b := newBody(t, pool, math32.NewVector3(1, 0, 0), math32.NewVector3(-1, 0, 0), mB)

	before := a.LinearVelocity().Scale(mA).Add(b.LinearVelocity().Scale(mB))

	c := collision.Contact{Point: math32.NewVector3(0.5, 0, 0), Normal: math32.NewVector3(1, 0, 0)}
	Elastic(a, b, c)

	after := a.LinearVelocity().Scale(mA).Add(b.LinearVelocity().Scale(mB))
	assert.InDelta(t, before.X, after.X, 1e-3)
}

func TestElasticConservesKineticEnergy(t *testing.T) {
	pool := simplePool(t)
	mA, mB := float32(2), float32(5)
	a := newBody(t, pool, math32.Zero3, math32.NewVector3(3, 0, 0), mA)
	b := newBody(t, pool, math32.NewVector3(1, 0, 0), math32.NewVector3(-1, 0, 0), mB)

	energyBefore := 0.5*mA*a.LinearVelocity().NormSq() + 0.5*mB*b.LinearVelocity().NormSq()

	c := collision.Contact{Point: math32.NewVector3(0.5, 0, 0), Normal: math32.NewVector3(1, 0, 0)}
	Elastic(a, b, c)

	energyAfter := 0.5*mA*a.LinearVelocity().NormSq() + 0.5*mB*b.LinearVelocity().NormSq()
	assert.InDelta(t, energyBefore, energyAfter, 1e-2)
}
