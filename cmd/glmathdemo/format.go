package main

import (
	"io"

	"golang.org/x/text/message"

	"github.com/gogpu/glmath"
)

// writeMatrix prints m as four rows, indented by prefix.
func writeMatrix(w io.Writer, p *message.Printer, prefix string, m glmath.Matrix4x4) {
	for row := 0; row < 4; row++ {
		p.Fprintf(w, "%s[%9.4f %9.4f %9.4f %9.4f]\n", prefix,
			m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3))
	}
}

// writeVector prints v on one line.
func writeVector(w io.Writer, p *message.Printer, prefix string, v glmath.Vector3) {
	p.Fprintf(w, "%s(%.4f, %.4f, %.4f)\n", prefix, v.X, v.Y, v.Z)
}
