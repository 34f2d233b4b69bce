package collision

import (
	"github.com/rigidmesh/rigidmesh/body"
	"github.com/rigidmesh/rigidmesh/math32"
)

// Detect tests every ordered pair of triangles (f, g), f ranging over a's
// triangles and g over b's, in A-major/B-minor order, and returns the first
// contact found. The zero Contact and false are returned when no triangle
// pair overlaps.
func Detect(a, b *body.Body) (Contact, bool) {
	for f := 0; f < a.TriangleCount(); f++ {
		triA := a.WorldTriangle(f)
		normalA := a.WorldNormals()[f]
		for g := 0; g < b.TriangleCount(); g++ {
			triB := b.WorldTriangle(g)
			normalB := b.WorldNormals()[g]
			if c, ok := trianglePair(triA, normalA, triB, normalB); ok {
				return c, true
			}
		}
	}
	return Contact{}, false
}

// classifyAgainstPlane classifies a triangle's three vertices against
// another triangle's plane (defined by a point on the plane and its unit
// normal) and, when exactly one vertex is separated from the other two,
// returns its index and the three signed distances.
//
// The classification is deliberately asymmetric: a vertex is "below" the
// plane only when its signed distance is strictly negative; a vertex
// exactly on the plane is classified "above". This matches the source
// behavior this algorithm is ported from and is preserved rather than
// unified into a symmetric convention, since doing so would change
// collision outcomes for coplanar cases.
func classifyAgainstPlane(vs [3]math32.Vector3, planePoint, planeNormal math32.Vector3) (lone int, d [3]float32, ok bool) {
	var below [3]bool
	belowCount := 0
	for i := 0; i < 3; i++ {
		d[i] = planePoint.Sub(vs[i]).Dot(planeNormal)
		below[i] = d[i] < 0
		if below[i] {
			belowCount++
		}
	}
	switch belowCount {
	case 0, 3:
		return 0, d, false
	case 1:
		for i := 0; i < 3; i++ {
			if below[i] {
				return i, d, true
			}
		}
	case 2:
		for i := 0; i < 3; i++ {
			if !below[i] {
				return i, d, true
			}
		}
	}
	return 0, d, false
}

// keyDimension returns the coordinate index (0=X, 1=Y, 2=Z) of l with the
// largest magnitude component.
func keyDimension(l math32.Vector3) int {
	ax, ay, az := math32.Abs(l.X), math32.Abs(l.Y), math32.Abs(l.Z)
	if ax >= ay && ax >= az {
		return 0
	}
	if ay >= az {
		return 1
	}
	return 2
}

func component(v math32.Vector3, dim int) float32 {
	return v.Component(dim)
}

// edgeIntersection interpolates the two edges leaving the lone vertex to
// find where the triangle's boundary crosses the other triangle's plane.
// e0 is the endpoint along the edge to vs[(lone+1)%3]; e1 is the endpoint
// along the edge to vs[(lone+2)%3].
func edgeIntersection(vs [3]math32.Vector3, d [3]float32, lone int) (e0, e1 math32.Vector3) {
	n1 := (lone + 1) % 3
	n2 := (lone + 2) % 3

	dl := math32.Abs(d[lone])
	d1 := math32.Abs(d[n1])
	d2 := math32.Abs(d[n2])

	e0 = vs[lone].Scale(d1).Add(vs[n1].Scale(dl)).Div(dl + d1)
	e1 = vs[lone].Scale(d2).Add(vs[n2].Scale(dl)).Div(dl + d2)
	return e0, e1
}

// segmentsOverlap reports whether a lies between p and q, in either order,
// using the XOR-of-half-open-comparisons predicate: (a <= p) XOR (a < q).
// When p < q both endpoints are excluded; when p > q both are included;
// when p == q it is true only for a == p. Despite the name this tests
// one endpoint against one segment; trianglePair calls it four times, once
// per endpoint pair, to determine how the two intersection segments
// overlap.
func segmentsOverlap(a, p, q float32) bool {
	return (a <= p) != (a < q)
}

// trianglePair runs the full intersection test for one pair of world-space
// triangles and returns a contact when they overlap.
func trianglePair(triA [3]math32.Vector3, normalA math32.Vector3, triB [3]math32.Vector3, normalB math32.Vector3) (Contact, bool) {
	sepA, dA, okA := classifyAgainstPlane(triA, triB[0], normalB)
	if !okA {
		return Contact{}, false
	}
	sepB, dB, okB := classifyAgainstPlane(triB, triA[0], normalA)
	if !okB {
		return Contact{}, false
	}

	l := normalA.Cross(normalB)
	dim := keyDimension(l)

	p0, q0 := edgeIntersection(triA, dA, sepA)
	p1, q1 := edgeIntersection(triB, dB, sepB)

	x := func(v math32.Vector3) float32 { return component(v, dim) }

	edgeA0 := triA[(sepA+1)%3].Sub(triA[sepA]) // edge producing p0
	edgeA1 := triA[(sepA+2)%3].Sub(triA[sepA]) // edge producing q0
	edgeB0 := triB[(sepB+1)%3].Sub(triB[sepB]) // edge producing p1
	edgeB1 := triB[(sepB+2)%3].Sub(triB[sepB]) // edge producing q1

	p0InB := segmentsOverlap(x(p0), x(p1), x(q1))
	q0InB := segmentsOverlap(x(q0), x(p1), x(q1))
	p1InA := segmentsOverlap(x(p1), x(p0), x(q0))

	// The cascade below (test p0InB, then q0InB, then p1InA, each nested
	// rather than combined into independent flags) mirrors the source's
	// branch structure exactly; q1InA is never tested because, once p0InB,
	// q0InB and p1InA have all been ruled out, overlapping segments leave
	// only the "B contained in A" case, which p1InA alone already confirms.
	if p0InB {
		if q0InB {
			// A's segment is contained in B's: contact at A's lone vertex,
			// normal is B's face normal.
			return Contact{Point: triA[sepA], Normal: normalB}, true
		}
		if p1InA {
			return Contact{Point: p0, Normal: edgeA0.Cross(edgeB0).Unit()}, true
		}
		return Contact{Point: p0, Normal: edgeA0.Cross(edgeB1).Unit()}, true
	}
	if q0InB {
		if p1InA {
			return Contact{Point: q0, Normal: edgeA1.Cross(edgeB0).Unit()}, true
		}
		return Contact{Point: q0, Normal: edgeA1.Cross(edgeB1).Unit()}, true
	}
	if p1InA {
		// B's segment is contained in A's: contact at B's lone vertex,
		// normal is A's face normal.
		return Contact{Point: triB[sepB], Normal: normalA}, true
	}
	return Contact{}, false
}
