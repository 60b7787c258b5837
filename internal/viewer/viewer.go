// Package viewer implements the interactive ray-tracing viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/rtscene/internal/camera"
	"github.com/Faultbox/rtscene/internal/config"
	"github.com/Faultbox/rtscene/internal/debug"
	"github.com/Faultbox/rtscene/internal/gpu"
	"github.com/Faultbox/rtscene/internal/logger"
	"github.com/Faultbox/rtscene/internal/scene"
	"github.com/Faultbox/rtscene/internal/scenefile"
	"github.com/Faultbox/rtscene/internal/window"
)

const title = "rtscene"

// Viewer packs the scene every frame and ray traces it into the window.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window *window.Window
	input  *window.Input
	tracer *gpu.Tracer
	lines  *gpu.LineRenderer
	camera *camera.OrbitCamera

	scene   *scenefile.Scene
	packer  *scene.Packer
	overlay *debug.MeshOverlay
	shots   *debug.ScreenshotCapture

	drawOverlay bool
	packErr     string
	frame       int32
	width       int
	height      int
}

// New creates the window, GL resources and loads the configured scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:         cfg,
		log:         logger.Named("viewer"),
		packer:      scene.NewPacker(),
		shots:       debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "rtscene", cfg.Debug.ScreenshotFormat),
		drawOverlay: cfg.Debug.DrawOverlay,
	}

	s, err := scenefile.Load(cfg.Scene.Path)
	if err != nil {
		return nil, err
	}
	v.setScene(s)

	v.window, err = window.New(title, cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL functions load only after a context exists.
	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	v.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	v.tracer, err = gpu.NewTracer()
	if err != nil {
		v.window.Close()
		return nil, err
	}
	v.lines, err = gpu.NewLineRenderer()
	if err != nil {
		v.tracer.Destroy()
		v.window.Close()
		return nil, err
	}

	c := cfg.Camera
	v.camera = camera.NewOrbitCamera(mgl32.Vec3(c.Target), c.Distance, c.Pitch, c.Yaw)
	v.input = window.NewInput()
	v.width, v.height = v.window.DrawableSize()
	gl.Viewport(0, 0, int32(v.width), int32(v.height))

	return v, nil
}

func (v *Viewer) setScene(s *scenefile.Scene) {
	v.scene = s
	v.overlay = debug.NewMeshOverlay(s.Meshes)
	v.log.Info("scene loaded",
		zap.String("path", v.cfg.Scene.Path),
		zap.Int("spheres", len(s.Spheres)),
		zap.Int("meshes", len(s.Meshes)),
	)
}

// Run runs the frame loop until the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		screenshot := v.handleEvents(dt)

		v.update()
		v.render()

		if screenshot {
			v.captureScreenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Uint64("packs", v.packer.Frames()))
			v.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

// handleEvents applies input to the camera and toggles. It reports whether
// a screenshot was requested.
func (v *Viewer) handleEvents(dt float32) bool {
	screenshot := false
	for _, e := range v.input.Events() {
		switch e.Type {
		case window.EventResize:
			v.width, v.height = v.window.DrawableSize()
			gl.Viewport(0, 0, int32(v.width), int32(v.height))
		case window.EventDrag:
			v.camera.HandleDrag(e.DX, e.DY)
		case window.EventScroll:
			v.camera.HandleZoom(e.DY)
		case window.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_F12:
				screenshot = true
			case sdl.SCANCODE_O:
				v.drawOverlay = !v.drawOverlay
			case sdl.SCANCODE_R:
				v.reload()
			}
		}
	}

	var forward, right, up float32
	if window.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if window.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if window.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if window.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	if window.IsKeyHeld(sdl.SCANCODE_E) {
		up++
	}
	if window.IsKeyHeld(sdl.SCANCODE_Q) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		step := dt * 60
		v.camera.HandleMovement(forward*step, right*step, up*step)
	}
	return screenshot
}

func (v *Viewer) reload() {
	s, err := scenefile.Load(v.cfg.Scene.Path)
	if err != nil {
		v.log.Warn("scene reload failed", zap.Error(err))
		return
	}
	v.setScene(s)
}

// update packs the scene and publishes it. A failed pack leaves the
// previously published buffers bound.
func (v *Viewer) update() {
	packed, err := v.packer.Pack(v.scene.SphereSources(), v.scene.MeshSources())
	if err != nil {
		if msg := err.Error(); msg != v.packErr {
			fields := []zap.Field{zap.Error(err)}
			if last := v.packer.Last(); last != nil {
				fields = append(fields,
					zap.Int("kept_spheres", last.SphereCount()),
					zap.Int("kept_triangles", last.TriangleCount()),
				)
			}
			v.log.Error("pack failed, keeping previous buffers", fields...)
			v.packErr = msg
		}
		return
	}
	v.packErr = ""

	if err := scene.Sync(v.tracer.Sink(), packed, v.cfg.Scene.ClearOnEmpty); err != nil {
		v.log.Error("publish failed", zap.Error(err))
	}
}

func (v *Viewer) render() {
	v.frame++

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	aspect := float32(v.width) / float32(max(v.height, 1))
	params := gpu.NewFrameParams(v.cfg.Render, aspect)
	params.CamLocalToWorld = v.camera.LocalToWorld()
	params.Frame = v.frame
	v.tracer.Draw(params)

	if v.drawOverlay {
		o, err := v.overlay.Build(debug.DefaultOptions())
		if err != nil {
			v.log.Debug("overlay incomplete", zap.Error(err))
		}
		viewProj := v.camera.Projection(v.cfg.Render.FieldOfView, aspect, v.cfg.Render.NearClip).Mul4(v.camera.View())
		v.lines.Draw(viewProj, o)
	}
}

func (v *Viewer) captureScreenshot() {
	pixels := make([]byte, v.width*v.height*4)
	gl.ReadPixels(0, 0, int32(v.width), int32(v.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := v.shots.CaptureFromPixels(pixels, v.width, v.height, uint64(v.frame))
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL resources and the window.
func (v *Viewer) Close() {
	if v.lines != nil {
		v.lines.Destroy()
	}
	if v.tracer != nil {
		v.tracer.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
