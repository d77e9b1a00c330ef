package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/glmath/scene"
	"github.com/gogpu/glmath/uniform"
)

func newFramesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Step a scene and print the uniforms of every object",
		Example: `  glmathdemo frames --scene quaternion-camera --start 1 --count 3
  GLMATH_SLERP_T=0.25 glmathdemo frames --scene quaternion-slerp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFrames(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("scene", scene.TorusRotation, "scene name (see the scenes command)")
	flags.Int("start", 1, "first frame counter")
	flags.Int("count", 1, "number of frames")
	flags.Float32("aspect", float32(scene.DefaultWidth)/scene.DefaultHeight, "projection aspect ratio")
	flags.Float32("slerp-t", scene.DefaultSlerpT, "interpolation parameter of quaternion-slerp")
	flags.Float32("mouse-x", scene.DefaultWidth/2, "pointer x on the canvas")
	flags.Float32("mouse-y", scene.DefaultHeight/2, "pointer y on the canvas")
	flags.Bool("hex", false, "also dump the packed uniform bytes")
	flags.Int("workers", 0, "goroutines computing frames (0 = GOMAXPROCS)")

	return cmd
}

func (a *app) runFrames(cmd *cobra.Command) error {
	cfg := a.cfg
	if cfg.Count < 0 {
		return fmt.Errorf("count %d: must not be negative", cfg.Count)
	}

	s, err := scene.New(cfg.Scene, cfg.SceneOptions()...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	p := a.printer
	entry := uniform.LayoutEntry(0)
	p.Fprintf(w, "scene %s: uniform block binding %d, %d bytes\n",
		s.Name(), entry.Binding, entry.Buffer.MinBindingSize)

	for _, f := range scene.Frames(s, cfg.Start, cfg.Count, cfg.Workers) {
		p.Fprintf(w, "frame %d\n", f.Count)
		for _, obj := range f.Objects {
			u := obj.Uniforms
			fmt.Fprintf(w, "  %s\n", obj.Name)
			fmt.Fprintln(w, "    mvp:")
			writeMatrix(w, p, "      ", u.MVP)
			fmt.Fprintln(w, "    model:")
			writeMatrix(w, p, "      ", u.Model)
			fmt.Fprintln(w, "    model inverse:")
			writeMatrix(w, p, "      ", u.ModelInverse)
			writeVector(w, p, "    light: ", u.LightPosition)
			writeVector(w, p, "    eye:   ", u.EyeDirection)
			if cfg.Hex {
				writeHex(w, u.Bytes())
			}
		}
	}
	return nil
}
