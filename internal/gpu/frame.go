package gpu

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rtscene/internal/config"
	"github.com/Faultbox/rtscene/internal/scene"
)

// FrameParams are the scalar inputs the ray-tracing program reads each frame.
type FrameParams struct {
	ViewParams          mgl32.Vec3 // near plane width, height, distance
	CamLocalToWorld     mgl32.Mat4
	EnvironmentLighting bool
	MaxBounceCount      int32
	NumRaysPerPixel     int32
	NumRenderedFrames   int32
	Frame               int32
	SkyColorHorizon     mgl32.Vec4
	SkyColorZenith      mgl32.Vec4
	GroundColor         mgl32.Vec4
	SunLightDirection   mgl32.Vec3
	SunFocus            float32
	SunIntensity        float32
}

// NewFrameParams fills the configured values. The caller sets the camera
// matrix and frame counter.
func NewFrameParams(r config.RenderConfig, aspect float32) FrameParams {
	return FrameParams{
		ViewParams:          ViewParams(r.FieldOfView, aspect, r.NearClip),
		CamLocalToWorld:     mgl32.Ident4(),
		EnvironmentLighting: r.EnvironmentLighting,
		MaxBounceCount:      int32(r.MaxBounceCount),
		NumRaysPerPixel:     int32(r.NumRaysPerPixel),
		NumRenderedFrames:   1,
		SkyColorHorizon:     r.SkyColorHorizon,
		SkyColorZenith:      r.SkyColorZenith,
		GroundColor:         r.GroundColor,
		SunLightDirection:   SunDirection(r.SunRotation),
		SunFocus:            r.SunFocus,
		SunIntensity:        r.SunIntensity,
	}
}

// ViewParams returns the near plane's width, height and distance for a
// vertical field of view in degrees.
func ViewParams(fovYDeg, aspect, near float32) mgl32.Vec3 {
	height := near * float32(math.Tan(float64(mgl32.DegToRad(fovYDeg))*0.5)) * 2
	return mgl32.Vec3{height * aspect, height, near}
}

// SunDirection rotates +Z by Euler angles in degrees and normalizes it.
func SunDirection(euler mgl32.Vec3) mgl32.Vec3 {
	rot := scene.Transform{Rotation: euler, Scale: mgl32.Vec3{1, 1, 1}}.Matrix()
	return mgl32.TransformNormal(mgl32.Vec3{0, 0, 1}, rot).Normalize()
}

// frameUniforms caches uniform locations for FrameParams.
type frameUniforms struct {
	viewParams          int32
	camLocalToWorld     int32
	environmentLighting int32
	maxBounceCount      int32
	numRaysPerPixel     int32
	numRenderedFrames   int32
	frame               int32
	skyColorHorizon     int32
	skyColorZenith      int32
	groundColor         int32
	sunLightDirection   int32
	sunFocus            int32
	sunIntensity        int32
}

func lookupFrameUniforms(program uint32) frameUniforms {
	return frameUniforms{
		viewParams:          uniform(program, "ViewParams"),
		camLocalToWorld:     uniform(program, "CamLocalToWorldMatrix"),
		environmentLighting: uniform(program, "EnvironmentLighting"),
		maxBounceCount:      uniform(program, "MaxBounceCount"),
		numRaysPerPixel:     uniform(program, "NumRaysPerPixel"),
		numRenderedFrames:   uniform(program, "NumRenderedFrames"),
		frame:               uniform(program, "Frame"),
		skyColorHorizon:     uniform(program, "SkyColorHorizon"),
		skyColorZenith:      uniform(program, "SkyColorZenith"),
		groundColor:         uniform(program, "GroundColor"),
		sunLightDirection:   uniform(program, "SunLightDirection"),
		sunFocus:            uniform(program, "SunFocus"),
		sunIntensity:        uniform(program, "SunIntensity"),
	}
}

// set uploads p. The program must be in use. Inactive uniforms report -1,
// which GL ignores.
func (u frameUniforms) set(p FrameParams) {
	gl.Uniform3fv(u.viewParams, 1, &p.ViewParams[0])
	gl.UniformMatrix4fv(u.camLocalToWorld, 1, false, &p.CamLocalToWorld[0])
	gl.Uniform1i(u.environmentLighting, boolToInt(p.EnvironmentLighting))
	gl.Uniform1i(u.maxBounceCount, p.MaxBounceCount)
	gl.Uniform1i(u.numRaysPerPixel, p.NumRaysPerPixel)
	gl.Uniform1i(u.numRenderedFrames, p.NumRenderedFrames)
	gl.Uniform1i(u.frame, p.Frame)
	gl.Uniform4fv(u.skyColorHorizon, 1, &p.SkyColorHorizon[0])
	gl.Uniform4fv(u.skyColorZenith, 1, &p.SkyColorZenith[0])
	gl.Uniform4fv(u.groundColor, 1, &p.GroundColor[0])
	gl.Uniform3fv(u.sunLightDirection, 1, &p.SunLightDirection[0])
	gl.Uniform1f(u.sunFocus, p.SunFocus)
	gl.Uniform1f(u.sunIntensity, p.SunIntensity)
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
