package spheres3d

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type CameraCfg struct {
	Origin   Vector3 `json:"origin" yaml:"origin"`
	Distance Real    `json:"distance,omitempty" yaml:"distance,omitempty"`
	// Rotation is an explicit row-major matrix; when absent RotDeg is used.
	Rotation *[3][3]Real `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	RotDeg   Rot3Deg     `json:"rotDeg" yaml:"rotDeg"`
}

type ViewportCfg struct {
	Width  Real `json:"width" yaml:"width"`
	Height Real `json:"height" yaml:"height"`
}

type SphereCfg struct {
	Center Vector3 `json:"center" yaml:"center"`
	Radius Real    `json:"radius" yaml:"radius"`
	Color  RGB8    `json:"color" yaml:"color"`
	// Specular is the Phong exponent; omitted means no highlight.
	Specular   *Real `json:"specular,omitempty" yaml:"specular,omitempty"`
	Reflective Real  `json:"reflective,omitempty" yaml:"reflective,omitempty"`
}

type LightCfg struct {
	Type      string  `json:"type" yaml:"type"` // ambient, point, directional
	Intensity Real    `json:"intensity" yaml:"intensity"`
	Position  Vector3 `json:"position,omitempty" yaml:"position,omitempty"`
	Direction Vector3 `json:"direction,omitempty" yaml:"direction,omitempty"`
}

type Config struct {
	CanvasWidth  int         `json:"canvasWidth" yaml:"canvasWidth"`
	CanvasHeight int         `json:"canvasHeight" yaml:"canvasHeight"`
	Output       string      `json:"output" yaml:"output"`
	Gamma        Real        `json:"gamma,omitempty" yaml:"gamma,omitempty"`
	Background   RGB8        `json:"background" yaml:"background"`
	MaxDepth     *int        `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
	Epsilon      Real        `json:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	PrimaryTMin  *Real       `json:"primaryTMin,omitempty" yaml:"primaryTMin,omitempty"`
	Workers      int         `json:"workers,omitempty" yaml:"workers,omitempty"`
	BVH          string      `json:"bvh,omitempty" yaml:"bvh,omitempty"`
	Camera       CameraCfg   `json:"camera" yaml:"camera"`
	Viewport     ViewportCfg `json:"viewport" yaml:"viewport"`
	Spheres      []SphereCfg `json:"spheres" yaml:"spheres"`
	Lights       []LightCfg  `json:"lights" yaml:"lights"`
}

// Build validates and constructs the runtime camera.
func (cc CameraCfg) Build() (*Camera, error) {
	rot := cc.RotDeg.Matrix()
	if cc.Rotation != nil {
		rot = Mat3{M: *cc.Rotation}
	}
	return NewCamera(cc.Origin, cc.Distance, rot)
}

func (vc ViewportCfg) Build() (*Viewport, error) {
	return NewViewport(vc.Width, vc.Height)
}

func (sc SphereCfg) Build() (*Sphere, error) {
	spec := NoSpecular
	if sc.Specular != nil {
		spec = *sc.Specular
	}
	return NewSphere(sc.Center, sc.Radius, sc.Color, spec, sc.Reflective)
}

func (lc LightCfg) Build() (*Light, error) {
	kind, err := ParseLightKind(strings.ToLower(lc.Type))
	if err != nil {
		return nil, err
	}
	switch kind {
	case Point:
		return NewPointLight(lc.Intensity, lc.Position)
	case Directional:
		return NewDirectionalLight(lc.Intensity, lc.Direction)
	default:
		return NewAmbientLight(lc.Intensity)
	}
}

// BuildScene turns the description into a validated Scene, keeping sphere order.
func (cfg *Config) BuildScene() (*Scene, error) {
	cam, err := cfg.Camera.Build()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	vp, err := cfg.Viewport.Build()
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}
	scene := NewScene(cam, vp)
	for i, sc := range cfg.Spheres {
		s, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere #%d: %w", i, err)
		}
		scene.AddSphere(s)
	}
	for i, lc := range cfg.Lights {
		l, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("light #%d: %w", i, err)
		}
		scene.AddLight(l)
	}
	return scene, nil
}

// TracerOptions maps the render knobs onto Options.
func (cfg *Config) TracerOptions() (Options, error) {
	opts := DefaultOptions()
	opts.Background = cfg.Background
	if cfg.MaxDepth != nil {
		opts.MaxDepth = *cfg.MaxDepth
	}
	if cfg.Epsilon != 0 {
		opts.Epsilon = cfg.Epsilon
	}
	if cfg.PrimaryTMin != nil {
		opts.PrimaryTMin = *cfg.PrimaryTMin
	}
	if cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}
	mode, err := ParseBVHMode(strings.ToLower(cfg.BVH))
	if err != nil {
		return Options{}, err
	}
	opts.BVH = mode
	return opts, opts.validate()
}

func (cfg *Config) applyDefaults() {
	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = CanvasWidth
	}
	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = CanvasHeight
	}
	if cfg.Output == "" {
		cfg.Output = Output
	}
	if cfg.Gamma == 0 {
		cfg.Gamma = Gamma
	}
	if cfg.Camera.Distance == 0 {
		cfg.Camera.Distance = CameraDistance
	}
	if cfg.Viewport.Width == 0 {
		cfg.Viewport.Width = ViewportWidth
	}
	if cfg.Viewport.Height == 0 {
		cfg.Viewport.Height = ViewportHeight
	}
}

// loadConfig reads a JSON scene, or YAML for .yaml/.yml files.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.applyDefaults()
	if len(cfg.Spheres) == 0 {
		DebugLog("Config %s has no spheres, the image will be background only", path)
	}
	DebugLog("Loaded config from %s: canvas=%dx%d, spheres=%d, lights=%d, gamma=%f", path, cfg.CanvasWidth, cfg.CanvasHeight, len(cfg.Spheres), len(cfg.Lights), cfg.Gamma)
	return &cfg, nil
}

func realPtr(v Real) *Real { return &v }

// DefaultConfig is the classic demo: three coloured spheres on a huge yellow one,
// seen from a camera yawed by 45°.
func DefaultConfig() *Config {
	depth := MaxDepth
	cfg := &Config{
		CanvasWidth:  CanvasWidth,
		CanvasHeight: CanvasHeight,
		Output:       Output,
		Gamma:        Gamma,
		MaxDepth:     &depth,
		Camera: CameraCfg{
			Origin:   Vector3{3, 0, 1},
			Distance: CameraDistance,
			Rotation: &[3][3]Real{
				{0.7071, 0, -0.7071},
				{0, 1, 0},
				{0.7071, 0, 0.7071},
			},
		},
		Viewport: ViewportCfg{Width: ViewportWidth, Height: ViewportHeight},
		Spheres: []SphereCfg{
			{Center: Vector3{0, -1, 3}, Radius: 1, Color: RGB8{255, 0, 0}, Specular: realPtr(500), Reflective: 0.2},
			{Center: Vector3{2, 0, 4}, Radius: 1, Color: RGB8{0, 0, 255}, Specular: realPtr(500), Reflective: 0.3},
			{Center: Vector3{-2, 0, 4}, Radius: 1, Color: RGB8{0, 255, 0}, Specular: realPtr(10), Reflective: 0.4},
			{Center: Vector3{0, -5001, 0}, Radius: 5000, Color: RGB8{255, 255, 0}, Specular: realPtr(1000), Reflective: 0.5},
		},
		Lights: []LightCfg{
			{Type: "ambient", Intensity: 0.2},
			{Type: "point", Intensity: 0.6, Position: Vector3{2, 1, 0}},
			{Type: "directional", Intensity: 0.2, Direction: Vector3{1, 4, 4}},
		},
	}
	return cfg
}
