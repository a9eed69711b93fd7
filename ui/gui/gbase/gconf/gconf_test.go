package gconf

import (
	"os"
	"path/filepath"
	"testing"

	"jigcam/src/puzzle"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	cw, err := NewGUIConfig(t.TempDir())
	if err != nil {
		t.Fatalf("NewGUIConfig: %v", err)
	}
	if *cw.Config != defaultConfig() {
		t.Fatalf("config = %+v, want defaults", *cw.Config)
	}
}

func TestFileValuesAreCorrected(t *testing.T) {
	dir := t.TempDir()
	body := `{
		"theme": "purple",
		"language": "ru",
		"difficulty": "Hard",
		"shrink": 3,
		"source": "image",
		"image": "",
		"window_w": 10,
		"mirror": true,
		"seed": 7
	}`
	if err := os.WriteFile(filepath.Join(dir, "jigcam.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cw, err := NewGUIConfig(dir)
	if err != nil {
		t.Fatalf("NewGUIConfig: %v", err)
	}
	c := cw.Config
	def := defaultConfig()
	if c.Theme != def.Theme || c.Lang != "ru" {
		t.Errorf("theme/lang = %q/%q", c.Theme, c.Lang)
	}
	if c.Difficulty != "hard" || c.DifficultyPreset() != puzzle.Hard {
		t.Errorf("difficulty = %q", c.Difficulty)
	}
	if c.Shrink != def.Shrink {
		t.Errorf("shrink = %v, want %v", c.Shrink, def.Shrink)
	}
	if c.Source != def.Source {
		t.Errorf("image source without a path kept: %q", c.Source)
	}
	if c.WindowW != def.WindowW || c.WindowH != def.WindowH {
		t.Errorf("window = %dx%d", c.WindowW, c.WindowH)
	}
	if !c.Mirror || c.Seed != 7 {
		t.Errorf("mirror/seed = %v/%d", c.Mirror, c.Seed)
	}
}

func TestMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "jigcam.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfig(dir); err == nil {
		t.Fatalf("malformed config accepted")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("JIGCAM_DIFFICULTY", "insane")
	cw, err := NewGUIConfig(t.TempDir())
	if err != nil {
		t.Fatalf("NewGUIConfig: %v", err)
	}
	if cw.Config.DifficultyPreset() != puzzle.Insane {
		t.Fatalf("difficulty = %q, want insane", cw.Config.Difficulty)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cw, err := NewGUIConfig(dir)
	if err != nil {
		t.Fatalf("NewGUIConfig: %v", err)
	}
	cw.Config.Theme = "dark"
	cw.Config.Difficulty = "medium"
	if err := cw.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := NewGUIConfig(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Config.Theme != "dark" || again.Config.DifficultyPreset() != puzzle.Medium {
		t.Fatalf("reloaded = %+v", *again.Config)
	}
}

func TestDefaultHasNoFile(t *testing.T) {
	if err := Default().Save(); err != ErrNoConfigFile {
		t.Fatalf("Save = %v, want ErrNoConfigFile", err)
	}
}
