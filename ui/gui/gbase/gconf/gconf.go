package gconf

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"jigcam/src/puzzle"

	"github.com/spf13/viper"
)

const configName = "jigcam"

var ErrNoConfigFile = errors.New("config has no backing file")

type Config struct {
	Theme      string  `mapstructure:"theme"`      // light/dark
	Lang       string  `mapstructure:"language"`   // en/ru
	Difficulty string  `mapstructure:"difficulty"` // easy/medium/hard/insane
	Shrink     float64 `mapstructure:"shrink"`     // board size relative to the viewport
	Source     string  `mapstructure:"source"`     // pattern/image/camera
	Image      string  `mapstructure:"image"`      // path for the image source
	Mirror     bool    `mapstructure:"mirror"`     // flip frames horizontally
	FrameW     int     `mapstructure:"frame_w"`    // pattern source size
	FrameH     int     `mapstructure:"frame_h"`    //
	WindowW    int     `mapstructure:"window_w"`   //
	WindowH    int     `mapstructure:"window_h"`   //
	Seed       uint64  `mapstructure:"seed"`       // 0 = time based
	Debug      bool    `mapstructure:"debug"`      // TPS overlay
}

func defaultConfig() Config {
	return Config{
		Theme:      "light",
		Lang:       "en",
		Difficulty: "easy",
		Shrink:     puzzle.DefaultShrink,
		Source:     "pattern",
		Image:      "",
		Mirror:     false,
		FrameW:     640,
		FrameH:     480,
		WindowW:    1000,
		WindowH:    700,
		Seed:       0,
		Debug:      false,
	}
}

func setDefaults(v *viper.Viper) {
	def := defaultConfig()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("language", def.Lang)
	v.SetDefault("difficulty", def.Difficulty)
	v.SetDefault("shrink", def.Shrink)
	v.SetDefault("source", def.Source)
	v.SetDefault("image", def.Image)
	v.SetDefault("mirror", def.Mirror)
	v.SetDefault("frame_w", def.FrameW)
	v.SetDefault("frame_h", def.FrameH)
	v.SetDefault("window_w", def.WindowW)
	v.SetDefault("window_h", def.WindowH)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("debug", def.Debug)
}

type GUIConfigWorker struct {
	Config *Config
	v      *viper.Viper
	path   string
}

// NewGUIConfig reads jigcam.json from dir if present, then JIGCAM_* variables.
func NewGUIConfig(dir string) (*GUIConfigWorker, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("json")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("JIGCAM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("error decode config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)

	return &GUIConfigWorker{
		Config: &c,
		v:      v,
		path:   filepath.Join(dir, configName+".json"),
	}, nil
}

// Default is a config without a file, used by the web build.
func Default() *GUIConfigWorker {
	def := defaultConfig()
	return &GUIConfigWorker{Config: &def}
}

func (cw *GUIConfigWorker) Path() string {
	return cw.path
}

func (cw *GUIConfigWorker) Save() error {
	if cw.v == nil || cw.path == "" {
		return ErrNoConfigFile
	}
	c := cw.Config
	cw.v.Set("theme", c.Theme)
	cw.v.Set("language", c.Lang)
	cw.v.Set("difficulty", c.Difficulty)
	cw.v.Set("shrink", c.Shrink)
	cw.v.Set("source", c.Source)
	cw.v.Set("image", c.Image)
	cw.v.Set("mirror", c.Mirror)
	cw.v.Set("frame_w", c.FrameW)
	cw.v.Set("frame_h", c.FrameH)
	cw.v.Set("window_w", c.WindowW)
	cw.v.Set("window_h", c.WindowH)
	cw.v.Set("seed", c.Seed)
	cw.v.Set("debug", c.Debug)
	return cw.v.WriteConfigAs(cw.path)
}

// DifficultyPreset parses the configured difficulty; invalid values were already
// corrected on load.
func (c *Config) DifficultyPreset() puzzle.Difficulty {
	d, _ := puzzle.ParseDifficulty(c.Difficulty)
	return d
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if _, err := puzzle.ParseDifficulty(c.Difficulty); err != nil {
		c.Difficulty = def.Difficulty
	}
	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	if c.Shrink <= 0 || c.Shrink > 1 {
		c.Shrink = def.Shrink
	}
	switch c.Source {
	case "pattern", "camera":
	case "image":
		if c.Image == "" {
			c.Source = def.Source
		}
	default:
		c.Source = def.Source
	}
	if c.FrameW < 16 || c.FrameH < 16 {
		c.FrameW = def.FrameW
		c.FrameH = def.FrameH
	}
	if c.WindowH < 240 || c.WindowW < 320 {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
