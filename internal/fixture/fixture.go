// Package fixture loads declarative YAML scene descriptions: a shape pool's
// geometry plus a list of initial body states. It is a host-side concern —
// the core engine packages never read files.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/rigidmesh/rigidmesh/internal/geom"
	"github.com/rigidmesh/rigidmesh/internal/logctx"
	"github.com/rigidmesh/rigidmesh/math32"
)

type vec3YAML struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v vec3YAML) toVector3() math32.Vector3 {
	return math32.NewVector3(v.X, v.Y, v.Z)
}

type triangleYAML struct {
	I int `yaml:"i"`
	J int `yaml:"j"`
	K int `yaml:"k"`
}

type poolYAML struct {
	Vertices    []vec3YAML     `yaml:"vertices"`
	FaceNormals []vec3YAML     `yaml:"faceNormals"`
	Triangles   []triangleYAML `yaml:"triangles"`
}

type bodyYAML struct {
	Position        vec3YAML `yaml:"position"`
	LinearVelocity  vec3YAML `yaml:"linearVelocity"`
	AngularSpeed    float32  `yaml:"angularSpeed"`
	RotationAxis    vec3YAML `yaml:"rotationAxis"`
	Mass            float32  `yaml:"mass"`
	MomentOfInertia vec3YAML `yaml:"momentOfInertia"`
}

type sceneYAML struct {
	Pool  poolYAML   `yaml:"pool"`
	Bodies []bodyYAML `yaml:"bodies"`
}

// BodySpec is one body's initial state as described by a fixture, ready to
// be passed to body.New once its host decides on a pool.
type BodySpec struct {
	Pose            math32.AffineMatrix
	LinearVelocity  math32.Vector3
	AngularSpeed    float32
	RotationAxis    math32.Vector3
	Mass            float32
	MomentOfInertia math32.Vector3
}

// Load reads and parses a YAML scene fixture at path, returning the shape
// pool shared by every body it describes and the initial state of each
// body. It wraps both file and parse errors with fmt.Errorf("%w", ...); the
// engine's own hot path never does this, but this is host-side construction
// code reading untrusted input.
func Load(path string) (*geom.Pool, []BodySpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: Load: reading %s: %w", path, err)
	}

	var sy sceneYAML
	if err := yaml.Unmarshal(raw, &sy); err != nil {
		return nil, nil, fmt.Errorf("fixture: Load: parsing %s: %w", path, err)
	}

	vertices := make([]math32.Vector3, len(sy.Pool.Vertices))
	for i, v := range sy.Pool.Vertices {
		vertices[i] = v.toVector3()
	}
	faceNormals := make([]math32.Vector3, len(sy.Pool.FaceNormals))
	for i, v := range sy.Pool.FaceNormals {
		faceNormals[i] = v.toVector3()
	}
	triangles := make([]geom.Triangle, len(sy.Pool.Triangles))
	for i, tri := range sy.Pool.Triangles {
		triangles[i] = geom.Triangle{I: tri.I, J: tri.J, K: tri.K}
	}

	pool, err := geom.NewPool(triangles, vertices, faceNormals)
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: Load: %s: %w", path, err)
	}

	specs := make([]BodySpec, len(sy.Bodies))
	for i, by := range sy.Bodies {
		specs[i] = BodySpec{
			Pose:            math32.Identity().SetTranslation(by.Position.toVector3()),
			LinearVelocity:  by.LinearVelocity.toVector3(),
			AngularSpeed:    by.AngularSpeed,
			RotationAxis:    by.RotationAxis.toVector3(),
			Mass:            by.Mass,
			MomentOfInertia: by.MomentOfInertia.toVector3(),
		}
	}

	logctx.Log.Info().
		Str("path", path).
		Int("triangles", pool.TriangleCount()).
		Int("bodies", len(specs)).
		Msg("loaded fixture")

	return pool, specs, nil
}
