// Command glmathdemo steps the glmath demo scenes and prints the matrices a
// renderer would upload for each frame.
//
// Usage:
//
//	glmathdemo scenes
//	glmathdemo frames --scene quaternion-slerp --count 3 --slerp-t 0.25
//	glmathdemo inspect perspective --lang de
//	glmathdemo config
//
// Every flag can also be set through a GLMATH_* environment variable
// (GLMATH_SCENE, GLMATH_SLERP_T, ...) or a YAML, TOML or JSON file passed
// with --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
