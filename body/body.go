// Package body implements Body: per-instance mutable rigid-body state (pose,
// velocities, mass properties) and the world-space vertex/normal caches
// derived from pose x ShapePool.
package body

import (
	"fmt"

	"github.com/rigidmesh/rigidmesh/internal/geom"
	"github.com/rigidmesh/rigidmesh/math32"
)

// Body is a rigid polyhedron with a pose, linear and angular velocity, mass,
// and principal moments of inertia. It is mutated only by Advance and by
// the resolve and toi packages; the host must not mutate a Body's velocity
// or pose while a Scene.Step driving it is in progress.
type Body struct {
	pool *geom.Pool

	pose math32.AffineMatrix

	linearVelocity math32.Vector3
	angularSpeed   float32
	rotationAxis   math32.Vector3 // body frame, unit length when angularSpeed > 0

	mass            float32
	momentOfInertia math32.Vector3 // diagonal principal moments, body frame

	worldVertices []math32.Vector3
	worldNormals  []math32.Vector3
}

// New constructs a Body. mass and each component of momentOfInertia must be
// positive; this is checked once here, at construction, not on every
// Advance/Detect/Resolve call. pool must outlive the returned Body — the
// engine does not check this at use time (see the doc for geom.Pool).
func New(pool *geom.Pool, pose math32.AffineMatrix, linearVelocity math32.Vector3, angularSpeed float32, rotationAxis math32.Vector3, mass float32, momentOfInertia math32.Vector3) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("body: New: mass must be positive, got %v", mass)
	}
	if momentOfInertia.X <= 0 || momentOfInertia.Y <= 0 || momentOfInertia.Z <= 0 {
		return nil, fmt.Errorf("body: New: momentOfInertia components must be positive, got %v", momentOfInertia)
	}

	b := &Body{
		pool:            pool,
		pose:            pose,
		linearVelocity:  linearVelocity,
		angularSpeed:    angularSpeed,
		rotationAxis:    rotationAxis,
		mass:            mass,
		momentOfInertia: momentOfInertia,
		worldVertices:   make([]math32.Vector3, pool.VertexCount()),
		worldNormals:    make([]math32.Vector3, pool.TriangleCount()),
	}
	// Populate the world caches immediately: this is exactly what an
	// Advance(0) would produce, so callers that read WorldVertices/
	// WorldNormals before the first Scene.Step see the pose they
	// constructed the body with rather than a nil slice.
	b.Advance(0)
	return b, nil
}

// Advance updates pose by translating by linearVelocity*dt and then
// rotating by angle angularSpeed*dt about rotationAxis, then recomputes the
// world-space vertex and normal caches from pool x pose. dt may be negative
// or fractional; the operation is reversible up to floating-point drift.
func (b *Body) Advance(dt float32) {
	b.pose = b.pose.Translate(b.linearVelocity.Scale(dt))
	b.pose = b.pose.Rotate(b.angularSpeed*dt, b.rotationAxis)

	for i := 0; i < b.pool.VertexCount(); i++ {
		b.worldVertices[i] = b.pose.TransformPoint(b.pool.LocalVertex(i))
	}
	for f := 0; f < b.pool.TriangleCount(); f++ {
		b.worldNormals[f] = b.pose.TransformDirection(b.pool.LocalFaceNormal(f))
	}
}

// Pool returns the body's shape pool.
func (b *Body) Pool() *geom.Pool {
	return b.pool
}

// Pose returns the body's current pose.
func (b *Body) Pose() math32.AffineMatrix {
	return b.pose
}

// Position returns the translation component of the body's pose.
func (b *Body) Position() math32.Vector3 {
	return b.pose.Translation()
}

// WorldVertices returns the current world-space vertex cache. Callers must
// not mutate the returned slice.
func (b *Body) WorldVertices() []math32.Vector3 {
	return b.worldVertices
}

// WorldNormals returns the current world-space face-normal cache. Callers
// must not mutate the returned slice.
func (b *Body) WorldNormals() []math32.Vector3 {
	return b.worldNormals
}

// TriangleCount returns the number of triangles in the body's pool.
func (b *Body) TriangleCount() int {
	return b.pool.TriangleCount()
}

// WorldTriangle returns the world-space vertices of the f-th triangle.
func (b *Body) WorldTriangle(f int) [3]math32.Vector3 {
	tri := b.pool.Triangle(f)
	return [3]math32.Vector3{
		b.worldVertices[tri.I],
		b.worldVertices[tri.J],
		b.worldVertices[tri.K],
	}
}

// LinearVelocity returns the body's linear velocity in world frame.
func (b *Body) LinearVelocity() math32.Vector3 {
	return b.linearVelocity
}

// SetLinearVelocity sets the body's linear velocity in world frame.
func (b *Body) SetLinearVelocity(v math32.Vector3) {
	b.linearVelocity = v
}

// AngularSpeed returns the body's scalar angular speed.
func (b *Body) AngularSpeed() float32 {
	return b.angularSpeed
}

// RotationAxis returns the body's rotation axis, expressed in the body
// frame.
func (b *Body) RotationAxis() math32.Vector3 {
	return b.rotationAxis
}

// SetAngularVelocity sets the body's angular speed and body-frame rotation
// axis directly.
func (b *Body) SetAngularVelocity(speed float32, axis math32.Vector3) {
	b.angularSpeed = speed
	b.rotationAxis = axis
}

// Mass returns the body's mass.
func (b *Body) Mass() float32 {
	return b.mass
}

// MomentOfInertia returns the body's diagonal principal moments of inertia,
// in the body frame.
func (b *Body) MomentOfInertia() math32.Vector3 {
	return b.momentOfInertia
}
