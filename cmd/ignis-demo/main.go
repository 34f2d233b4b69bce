// Command ignis-demo is a headless driver: it loads a fixture, steps the
// resulting scene a fixed number of times, and prints each body's pose
// after every frame. It exercises the same Scene.Step contract a real
// rendering host would call.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rigidmesh/rigidmesh/body"
	"github.com/rigidmesh/rigidmesh/config"
	"github.com/rigidmesh/rigidmesh/internal/fixture"
	"github.com/rigidmesh/rigidmesh/internal/logctx"
	"github.com/rigidmesh/rigidmesh/scene"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		frames           int
		refineIterations uint16
		verbose          bool
	)

	cmd := &cobra.Command{
		Use:   "ignis-demo FIXTURE",
		Short: "Step a fixture scene and print body poses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logctx.SetLevel(zerolog.DebugLevel)
			}
			config.SetRefineIterations(refineIterations)
			return run(args[0], frames)
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 60, "number of frames to step")
	cmd.Flags().Uint16Var(&refineIterations, "refine-iterations", config.DefaultRefineIterations, "time-of-impact bisection depth")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log each resolved collision")

	return cmd
}

func run(fixturePath string, frames int) error {
	pool, specs, err := fixture.Load(fixturePath)
	if err != nil {
		return fmt.Errorf("ignis-demo: %w", err)
	}

	s := scene.New()
	for i, spec := range specs {
		b, err := body.New(pool, spec.Pose, spec.LinearVelocity, spec.AngularSpeed, spec.RotationAxis, spec.Mass, spec.MomentOfInertia)
		if err != nil {
			return fmt.Errorf("ignis-demo: body %d: %w", i, err)
		}
		s.Add(b)
	}

	for frame := 0; frame < frames; frame++ {
		s.Step()
		for i, b := range s.Bodies() {
			p := b.Position()
			logctx.Log.Info().
				Int("frame", frame).
				Int("body", i).
				Float32("x", p.X).Float32("y", p.Y).Float32("z", p.Z).
				Msg("pose")
		}
	}

	return nil
}
