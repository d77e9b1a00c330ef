// Package scene computes per-frame camera and model transforms for the
// classic WebGL demo scenes.
//
// A [Scene] turns a frame counter into a [Frame]: one [Object] per drawn
// model, each carrying the packed-ready [uniform.Block] for that draw call.
// Nothing here touches a GPU; the output is exactly what a renderer uploads.
//
// Built-in scenes are registered under their names (see [Available]) and
// created with [New]:
//
//	s, err := scene.New("quaternion-slerp", scene.WithSlerpT(0.25))
//	if err != nil {
//	    return err
//	}
//	frame := s.Frame(120)
//	for _, obj := range frame.Objects {
//	    buf := obj.Uniforms.Bytes()
//	    // queue.WriteBuffer(uniformBuffer, 0, buf)
//	}
package scene
