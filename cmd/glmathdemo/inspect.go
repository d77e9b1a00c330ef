package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gogpu/glmath"
	"github.com/gogpu/glmath/scene"
	"github.com/gogpu/glmath/uniform"
)

// constructions are the matrices inspect can print.
var constructions = map[string]func(c scene.Camera) glmath.Matrix4x4{
	"identity":    func(scene.Camera) glmath.Matrix4x4 { return glmath.Identity() },
	"lookat":      scene.Camera.View,
	"perspective": scene.Camera.ProjectionMatrix,
	"ortho": func(c scene.Camera) glmath.Matrix4x4 {
		p := c.Projection
		return glmath.Orthographic(glmath.FrustumBounds{
			Top: 1, Bottom: -1,
			Left: -p.AspectRatio, Right: p.AspectRatio,
			Near: p.Near, Far: p.Far,
		})
	},
	"viewprojection": scene.Camera.ViewProjection,
}

func constructionNames() []string {
	names := make([]string, 0, len(constructions))
	for name := range constructions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "inspect <construction>",
		Short:     "Print one matrix construction for the configured camera",
		ValidArgs: constructionNames(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, args[0])
		},
	}
	cmd.Flags().Float32("aspect", float32(scene.DefaultWidth)/scene.DefaultHeight, "projection aspect ratio")
	cmd.Flags().Bool("hex", false, "also dump the packed matrix bytes")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, name string) error {
	build, ok := constructions[name]
	if !ok {
		return fmt.Errorf("unknown construction %q, want one of %v", name, constructionNames())
	}
	cam, err := a.cfg.Camera.SceneCamera(a.cfg.Aspect)
	if err != nil {
		return err
	}

	m := build(cam)
	buf := make([]byte, uniform.Matrix4Size)
	n := uniform.Matrix4(buf, m)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s:\n", name)
	writeMatrix(w, a.printer, "  ", m)
	a.printer.Fprintf(w, "determinant: %.4f\n", m.Determinant())
	a.printer.Fprintf(w, "uniform bytes: %d\n", n)
	if a.cfg.Hex {
		writeHex(w, buf[:n])
	}
	return nil
}

func writeHex(w io.Writer, b []byte) {
	fmt.Fprint(w, hex.Dump(b))
}
