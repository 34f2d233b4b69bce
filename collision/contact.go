// Package collision implements the triangle-triangle intersection test that
// decides whether two bodies overlap and, if so, produces a contact point
// and normal.
package collision

import "github.com/rigidmesh/rigidmesh/math32"

// Contact is a point lying in both bodies' intersection region together with
// a unit world-space normal. By convention the normal points from body A's
// interior toward body B's exterior along the separating direction used to
// find it.
type Contact struct {
	Point  math32.Vector3
	Normal math32.Vector3
}
