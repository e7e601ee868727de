// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WaterVertexShader displaces the water grid and computes per-vertex normals.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader shades the displaced surface.
//
//go:embed water.frag
var WaterFragmentShader string

// WaterUniforms lists every uniform the water program reads, in upload order.
var WaterUniforms = []string{
	"uModel",
	"uViewProj",
	"uTime",
	"uWavesAmplitude",
	"uWavesFrequency",
	"uWavesPersistence",
	"uWavesLacunarity",
	"uWavesIterations",
	"uWavesSpeed",
	"uCameraPosition",
	"uTroughColor",
	"uSurfaceColor",
	"uPeakColor",
	"uPeakThreshold",
	"uPeakTransition",
	"uTroughThreshold",
	"uTroughTransition",
	"uFresnelScale",
	"uFresnelPower",
	"uSkyHorizon",
	"uSkyZenith",
	"uOpacity",
}
