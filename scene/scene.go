// Package scene orchestrates Body, collision.Detect, toi.Refine and
// resolve.Elastic into the per-frame step loop: advance, detect, refine,
// sort, resolve, re-advance.
package scene

import (
	"sort"

	"github.com/rigidmesh/rigidmesh/body"
	"github.com/rigidmesh/rigidmesh/collision"
	"github.com/rigidmesh/rigidmesh/internal/logctx"
	"github.com/rigidmesh/rigidmesh/resolve"
	"github.com/rigidmesh/rigidmesh/toi"
)

// Scene is a registry of bodies stepped together, one frame at a time.
type Scene struct {
	bodies []*body.Body
}

// New returns an empty Scene.
func New() *Scene {
	return &Scene{}
}

// Add registers a body with the scene. Registration order determines pair
// iteration order in Step.
func (s *Scene) Add(b *body.Body) {
	s.bodies = append(s.bodies, b)
}

// Bodies returns the scene's registered bodies in registration order.
// Callers must not mutate the returned slice.
func (s *Scene) Bodies() []*body.Body {
	return s.bodies
}

// Step advances every registered body by one unit of time, detects and
// refines all pairwise collisions, resolves them in ascending order of
// RemainingFraction (so the latest recovered impact is resolved first), and
// carries each resolved pair through the remainder of the frame. Collisions
// produced by those post-impact advances are not detected again within the
// same frame.
func (s *Scene) Step() {
	for _, b := range s.bodies {
		b.Advance(1.0)
	}

	var contexts []*toi.CollisionContext
	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			a, b := s.bodies[i], s.bodies[j]
			contact, ok := collision.Detect(a, b)
			if !ok {
				continue
			}
			ctx := &toi.CollisionContext{
				RemainingFraction: 1.0,
				A:                 a,
				B:                 b,
				Contact:           contact,
			}
			toi.Refine(ctx)
			contexts = append(contexts, ctx)
		}
	}

	sort.SliceStable(contexts, func(i, j int) bool {
		return contexts[i].RemainingFraction < contexts[j].RemainingFraction
	})

	for _, ctx := range contexts {
		resolve.Elastic(ctx.A, ctx.B, ctx.Contact)
		ctx.A.Advance(ctx.RemainingFraction)
		ctx.B.Advance(ctx.RemainingFraction)

		logctx.Log.Debug().
			Int("bodyA", s.indexOf(ctx.A)).
			Int("bodyB", s.indexOf(ctx.B)).
			Float32("remainingFraction", ctx.RemainingFraction).
			Msg("resolved collision")
	}
}

func (s *Scene) indexOf(b *body.Body) int {
	for i, candidate := range s.bodies {
		if candidate == b {
			return i
		}
	}
	return -1
}
