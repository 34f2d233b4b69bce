// Package resolve implements the perfectly elastic impulse that updates two
// bodies' linear and angular velocities at a detected contact.
package resolve

import (
	"github.com/rigidmesh/rigidmesh/body"
	"github.com/rigidmesh/rigidmesh/collision"
	"github.com/rigidmesh/rigidmesh/math32"
)

// Elastic applies a perfectly elastic impulse at c between a and b, mutating
// both bodies' linearVelocity, angularSpeed and rotationAxis in place. There
// is no friction term and no restitution coefficient other than 1.
func Elastic(a, b *body.Body, c collision.Contact) {
	n := c.Normal

	rA := c.Point.Sub(a.Position())
	rB := c.Point.Sub(b.Position())

	omegaA := a.Pose().TransformDirection(a.RotationAxis().Scale(a.AngularSpeed()))
	omegaB := b.Pose().TransformDirection(b.RotationAxis().Scale(b.AngularSpeed()))

	vA := a.LinearVelocity()
	vB := b.LinearVelocity()

	rACrossN := rA.Cross(n)
	rBCrossN := rB.Cross(n)

	// body-frame principal moments, not rotated into world frame
	angularTermA := rACrossN.Dot(rACrossN.Divide(a.MomentOfInertia()))
	angularTermB := rBCrossN.Dot(rBCrossN.Divide(b.MomentOfInertia()))

	numerator := -2 * (vA.Dot(n) - vB.Dot(n) + omegaA.Dot(rACrossN) - omegaB.Dot(rBCrossN))
	denominator := n.Dot(n.Div(a.Mass())) - n.Dot(n.Negate().Div(b.Mass())) + angularTermA - (-angularTermB)

	j := numerator / denominator

	a.SetLinearVelocity(vA.Add(n.Scale(j / a.Mass())))
	b.SetLinearVelocity(vB.Add(n.Scale(-j / b.Mass())))

	omegaA = omegaA.Add(rACrossN.Divide(a.MomentOfInertia()).Scale(j))
	omegaB = omegaB.Add(rBCrossN.Divide(b.MomentOfInertia()).Scale(-j))

	setBodyFrameAngularVelocity(a, omegaA)
	setBodyFrameAngularVelocity(b, omegaB)
}

// setBodyFrameAngularVelocity transforms a world-frame angular velocity back
// into body frame via the inverse (transpose) rotation of the body's pose,
// and stores it as a speed + axis pair, leaving the axis unchanged when the
// resulting speed is zero.
func setBodyFrameAngularVelocity(b *body.Body, omegaWorld math32.Vector3) {
	omegaBody := b.Pose().InverseTransformDirection(omegaWorld)
	speed := omegaBody.Norm()
	if speed > 0 {
		b.SetAngularVelocity(speed, omegaBody.Div(speed))
		return
	}
	b.SetAngularVelocity(0, b.RotationAxis())
}
