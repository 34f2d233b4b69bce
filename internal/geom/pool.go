// Package geom implements ShapePool: the immutable, shareable local-frame
// geometry (triangle indices, vertices, and face normals) referenced by one
// or more bodies.
package geom

import (
	"fmt"

	"github.com/rigidmesh/rigidmesh/math32"
)

// Triangle is an index triple into a Pool's local vertex array.
type Triangle struct {
	I, J, K int
}

// Pool is immutable, shared geometry. A Pool's lifetime is expected to
// exceed every body that references it; the pool itself performs no
// bookkeeping to enforce that — it is a host contract (see the doc for
// body.New).
type Pool struct {
	triangles        []Triangle
	localVertices    []math32.Vector3
	localFaceNormals []math32.Vector3
}

// NewPool validates and constructs a Pool from host-supplied geometry.
// Validation is performed once, here, at construction — not on every
// Detect/Advance call, which trust the pool's invariants per the engine's
// general "the host is responsible for input sanity" contract.
func NewPool(triangles []Triangle, localVertices, localFaceNormals []math32.Vector3) (*Pool, error) {
	if len(triangles) != len(localFaceNormals) {
		return nil, fmt.Errorf("geom: NewPool: %d triangles but %d face normals", len(triangles), len(localFaceNormals))
	}
	for f, tri := range triangles {
		for _, idx := range []int{tri.I, tri.J, tri.K} {
			if idx < 0 || idx >= len(localVertices) {
				return nil, fmt.Errorf("geom: NewPool: triangle %d references vertex index %d out of range [0,%d)", f, idx, len(localVertices))
			}
		}
	}
	for f, n := range localFaceNormals {
		if math32.Abs(n.Norm()-1) > 1e-3 {
			return nil, fmt.Errorf("geom: NewPool: face normal %d is not unit length (norm=%v)", f, n.Norm())
		}
	}

	p := &Pool{
		triangles:        append([]Triangle(nil), triangles...),
		localVertices:    append([]math32.Vector3(nil), localVertices...),
		localFaceNormals: append([]math32.Vector3(nil), localFaceNormals...),
	}
	return p, nil
}

// TriangleCount returns the number of triangles (and face normals) in the
// pool.
func (p *Pool) TriangleCount() int {
	return len(p.triangles)
}

// VertexCount returns the number of local vertices in the pool.
func (p *Pool) VertexCount() int {
	return len(p.localVertices)
}

// Triangle returns the f-th triangle's vertex index triple.
func (p *Pool) Triangle(f int) Triangle {
	return p.triangles[f]
}

// LocalVertex returns the i-th local-frame vertex.
func (p *Pool) LocalVertex(i int) math32.Vector3 {
	return p.localVertices[i]
}

// LocalFaceNormal returns the f-th local-frame face normal.
func (p *Pool) LocalFaceNormal(f int) math32.Vector3 {
	return p.localFaceNormals[f]
}
