// Package toi implements time-of-impact refinement: given two bodies found
// overlapping at the end of a unit step, it bisects backward in time to
// approximate the fraction of the step at which they first touched.
package toi

import (
	"github.com/rigidmesh/rigidmesh/body"
	"github.com/rigidmesh/rigidmesh/collision"
	"github.com/rigidmesh/rigidmesh/config"
)

// CollisionContext is a detected contact together with the two bodies it
// involves and the portion of the current frame still to be applied after
// the impact is resolved. RemainingFraction starts at 1.0 (impact assumed
// at the very start of the frame) and is narrowed by Refine toward one minus
// the true time-of-impact fraction.
//
// CollisionContext lives in this package rather than package scene, which
// produces and consumes it, to avoid an import cycle: Refine must take one
// as an argument, and scene.Step must call Refine.
type CollisionContext struct {
	RemainingFraction float32
	A, B              *body.Body
	Contact           collision.Contact
}

// Refine bisects ctx.A and ctx.B backward from their current (overlapping)
// poses to approximate the time of first contact, for config.RefineIterations
// iterations. ctx.RemainingFraction and ctx.Contact are updated in place;
// ctx.A/ctx.B end the call at the trial pose nearest the recovered impact
// time, consistent with ctx.RemainingFraction.
func Refine(ctx *CollisionContext) {
	ctx.A.Advance(-0.5)
	ctx.B.Advance(-0.5)

	step := float32(0.25)
	lastStep := float32(0.5)
	iterations := int(config.RefineIterations())

	for i := 0; i < iterations; i++ {
		lastStep = step
		if c, ok := collision.Detect(ctx.A, ctx.B); ok {
			ctx.Contact = c
			ctx.A.Advance(-step)
			ctx.B.Advance(-step)
		} else {
			ctx.A.Advance(step)
			ctx.B.Advance(step)
			ctx.RemainingFraction -= 2 * step
		}
		step /= 2
	}

	if c, ok := collision.Detect(ctx.A, ctx.B); ok {
		ctx.Contact = c
		ctx.A.Advance(-lastStep)
		ctx.B.Advance(-lastStep)
	} else {
		ctx.RemainingFraction -= lastStep
	}
}
