package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigidmesh/rigidmesh/internal/geom"
	"github.com/rigidmesh/rigidmesh/math32"
)

func trianglePool(t *testing.T) *geom.Pool {
	t.Helper()
	pool, err := geom.NewPool(
		[]geom.Triangle{{I: 0, J: 1, K: 2}},
		[]math32.Vector3{
			math32.NewVector3(-1, 0, 0),
			math32.NewVector3(1, 0, 0),
			math32.NewVector3(0, 1, 0),
		},
		[]math32.Vector3{math32.NewVector3(0, 0, 1)},
	)
	require.NoError(t, err)
	return pool
}

func TestNewRejectsNonPositiveMass(t *testing.T) {
	pool := trianglePool(t)
	_, err := New(pool, math32.Identity(), math32.Zero3, 0, math32.NewVector3(0, 1, 0), 0, math32.NewVector3(1, 1, 1))
	assert.Error(t, err)
}

func TestNewRejectsNonPositiveInertia(t *testing.T) {
	pool := trianglePool(t)
	_, err := New(pool, math32.Identity(), math32.Zero3, 0, math32.NewVector3(0, 1, 0), 1, math32.NewVector3(1, 0, 1))
	assert.Error(t, err)
}

func TestNewPopulatesWorldCachesAtConstructionPose(t *testing.T) {
	pool := trianglePool(t)
	pose := math32.Identity().SetTranslation(math32.NewVector3(5, 0, 0))
	b, err := New(pool, pose, math32.Zero3, 0, math32.NewVector3(0, 1, 0), 1, math32.NewVector3(1, 1, 1))
	require.NoError(t, err)

	tri := b.WorldTriangle(0)
	assert.Equal(t, math32.NewVector3(4, 0, 0), tri[0])
	assert.Equal(t, math32.NewVector3(6, 0, 0), tri[1])
}

func TestAdvanceTranslatesByVelocityTimesDt(t *testing.T) {
	pool := trianglePool(t)
	b, err := New(pool, math32.Identity(), math32.NewVector3(1, 0, 0), 0, math32.NewVector3(0, 1, 0), 1, math32.NewVector3(1, 1, 1))
	require.NoError(t, err)

	b.Advance(2)
	assert.InDelta(t, 2, b.Position().X, 1e-5)
}

func TestAdvanceIsReversible(t *testing.T) {
	pool := trianglePool(t)
	b, err := New(pool, math32.Identity(), math32.NewVector3(1, 2, 3), 0.7, math32.NewVector3(0, 1, 0), 1, math32.NewVector3(1, 1, 1))
	require.NoError(t, err)

	start := b.Position()
	b.Advance(0.3)
	b.Advance(-0.3)
	assert.InDelta(t, start.X, b.Position().X, 1e-4)
	assert.InDelta(t, start.Y, b.Position().Y, 1e-4)
	assert.InDelta(t, start.Z, b.Position().Z, 1e-4)
}

func TestWorldNormalsStayUnitLengthUnderRotation(t *testing.T) {
	pool := trianglePool(t)
	b, err := New(pool, math32.Identity(), math32.Zero3, 1.3, math32.NewVector3(0, 1, 0), 1, math32.NewVector3(1, 1, 1))
	require.NoError(t, err)

	b.Advance(1)
	n := b.WorldNormals()[0]
	assert.InDelta(t, 1, n.Norm(), 1e-4)
}

func TestSetLinearVelocityAndAngularVelocity(t *testing.T) {
	pool := trianglePool(t)
	b, err := New(pool, math32.Identity(), math32.Zero3, 0, math32.NewVector3(0, 1, 0), 1, math32.NewVector3(1, 1, 1))
	require.NoError(t, err)

	b.SetLinearVelocity(math32.NewVector3(1, 0, 0))
	assert.Equal(t, math32.NewVector3(1, 0, 0), b.LinearVelocity())

	b.SetAngularVelocity(2.5, math32.NewVector3(1, 0, 0))
	assert.Equal(t, float32(2.5), b.AngularSpeed())
	assert.Equal(t, math32.NewVector3(1, 0, 0), b.RotationAxis())
}
