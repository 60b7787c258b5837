// Package config handles viewer and packer configuration.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RenderConfig holds the scalar shader parameters bound next to the buffers.
type RenderConfig struct {
	MaxBounceCount      int        `yaml:"max_bounce_count"`
	NumRaysPerPixel     int        `yaml:"num_rays_per_pixel"`
	EnvironmentLighting bool       `yaml:"environment_lighting"`
	FieldOfView         float32    `yaml:"field_of_view"` // degrees
	NearClip            float32    `yaml:"near_clip"`
	SkyColorHorizon     [4]float32 `yaml:"sky_color_horizon"`
	SkyColorZenith      [4]float32 `yaml:"sky_color_zenith"`
	GroundColor         [4]float32 `yaml:"ground_color"`
	SunRotation         [3]float32 `yaml:"sun_rotation"` // Euler degrees
	SunFocus            float32    `yaml:"sun_focus"`
	SunIntensity        float32    `yaml:"sun_intensity"`
}

// CameraConfig places the orbit camera. Angles are degrees.
type CameraConfig struct {
	Target   [3]float32 `yaml:"target"`
	Distance float32    `yaml:"distance"`
	Pitch    float32    `yaml:"pitch"`
	Yaw      float32    `yaml:"yaw"`
}

// SceneConfig points at the scene description.
type SceneConfig struct {
	Path string `yaml:"path"`
	// ClearOnEmpty drops stale GPU bindings when a category packs to zero records.
	ClearOnEmpty bool `yaml:"clear_on_empty"`
}

// DebugConfig holds overlay settings.
type DebugConfig struct {
	DrawOverlay      bool   `yaml:"draw_overlay"`
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Render: RenderConfig{
			MaxBounceCount:      1,
			NumRaysPerPixel:     1,
			EnvironmentLighting: true,
			FieldOfView:         60,
			NearClip:            0.3,
			SkyColorHorizon:     [4]float32{1, 1, 1, 1},
			SkyColorZenith:      [4]float32{0.08, 0.37, 0.73, 1},
			GroundColor:         [4]float32{0.35, 0.3, 0.35, 1},
			SunRotation:         [3]float32{50, -30, 0},
			SunFocus:            500,
			SunIntensity:        10,
		},
		Camera: CameraConfig{
			Target:   [3]float32{0, 1, 0},
			Distance: 8,
			Pitch:    20,
		},
		Scene: SceneConfig{
			Path: "scene.yaml",
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
