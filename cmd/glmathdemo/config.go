package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chewxy/math32"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/gogpu/glmath"
	"github.com/gogpu/glmath/scene"
)

// envPrefix is the prefix of environment variables read by the command.
const envPrefix = "GLMATH"

// ErrInvalidVector is returned when a configured vector does not have three
// components.
var ErrInvalidVector = errors.New("glmathdemo: vector needs 3 components")

// ErrInvalidAspect is returned when the projection aspect ratio is not positive.
var ErrInvalidAspect = errors.New("glmathdemo: aspect ratio must be positive")

// Config is the effective configuration after flags, environment and the
// config file are merged.
type Config struct {
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	Lang     string `yaml:"lang" mapstructure:"lang"`

	Scene  string  `yaml:"scene" mapstructure:"scene"`
	Start  int     `yaml:"start" mapstructure:"start"`
	Count  int     `yaml:"count" mapstructure:"count"`
	Aspect float32 `yaml:"aspect" mapstructure:"aspect"`
	SlerpT float32 `yaml:"slerp_t" mapstructure:"slerp_t"`
	MouseX float32 `yaml:"mouse_x" mapstructure:"mouse_x"`
	MouseY float32 `yaml:"mouse_y" mapstructure:"mouse_y"`
	Hex    bool    `yaml:"hex" mapstructure:"hex"`

	Workers int `yaml:"workers" mapstructure:"workers"`

	Camera CameraConfig `yaml:"camera" mapstructure:"camera"`
}

// CameraConfig is the camera used by inspect.
type CameraConfig struct {
	Eye    []float32 `yaml:"eye" mapstructure:"eye"`
	Target []float32 `yaml:"target" mapstructure:"target"`
	Up     []float32 `yaml:"up" mapstructure:"up"`
	FovY   float32   `yaml:"fov_y" mapstructure:"fov_y"`
	Near   float32   `yaml:"near" mapstructure:"near"`
	Far    float32   `yaml:"far" mapstructure:"far"`
}

// setDefaults registers every key so that environment variables are seen
// by Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("lang", "en")

	v.SetDefault("scene", scene.TorusRotation)
	v.SetDefault("start", 1)
	v.SetDefault("count", 1)
	v.SetDefault("aspect", float32(scene.DefaultWidth)/scene.DefaultHeight)
	v.SetDefault("slerp_t", scene.DefaultSlerpT)
	v.SetDefault("mouse_x", scene.DefaultWidth/2)
	v.SetDefault("mouse_y", scene.DefaultHeight/2)
	v.SetDefault("hex", false)
	v.SetDefault("workers", 0)

	v.SetDefault("camera.eye", []float32{0, 0, 10})
	v.SetDefault("camera.target", []float32{0, 0, 0})
	v.SetDefault("camera.up", []float32{0, 1, 0})
	v.SetDefault("camera.fov_y", 45)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 100)
}

// newViper returns a viper instance wired to GLMATH_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// loadConfig reads the optional config file and decodes the merged settings.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Level parses the configured log level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Language parses the configured output language.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Und, fmt.Errorf("lang %q: %w", c.Lang, err)
	}
	return tag, nil
}

// SceneOptions converts the scene settings to scene options.
func (c Config) SceneOptions() []scene.Option {
	return []scene.Option{
		scene.WithAspectRatio(c.Aspect),
		scene.WithSlerpT(c.SlerpT),
		scene.WithMouse(c.MouseX, c.MouseY),
	}
}

// SceneCamera builds the inspect camera. The field of view is in degrees.
func (c CameraConfig) SceneCamera(aspect float32) (scene.Camera, error) {
	if !(aspect > 0) {
		return scene.Camera{}, fmt.Errorf("aspect %v: %w", aspect, ErrInvalidAspect)
	}
	eye, err := toVector("camera.eye", c.Eye)
	if err != nil {
		return scene.Camera{}, err
	}
	target, err := toVector("camera.target", c.Target)
	if err != nil {
		return scene.Camera{}, err
	}
	up, err := toVector("camera.up", c.Up)
	if err != nil {
		return scene.Camera{}, err
	}

	return scene.Camera{
		Eye:    eye,
		Target: target,
		Up:     up,
		Projection: glmath.PerspectiveParams{
			FovYRadian:  c.FovY * math32.Pi / 180,
			AspectRatio: aspect,
			Near:        c.Near,
			Far:         c.Far,
		},
	}, nil
}

func toVector(key string, v []float32) (glmath.Vector3, error) {
	if len(v) != 3 {
		return glmath.Vector3{}, fmt.Errorf("%s has %d: %w", key, len(v), ErrInvalidVector)
	}
	return glmath.V3(v[0], v[1], v[2]), nil
}
