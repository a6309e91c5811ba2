package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nouvelle/iconset/internal/export"
	"github.com/nouvelle/iconset/internal/manifest"
	"github.com/nouvelle/iconset/internal/render"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "icons")
	if err := os.Mkdir(out, 0o755); err != nil {
		t.Fatal(err)
	}
	return Config{
		OutDir:  out,
		Preset:  render.DefaultPreset,
		Size:    128,
		Groups:  []string{manifest.GroupMaster, manifest.GroupDesktop},
		AppIcon: filepath.Join(dir, "app-icon.png"),
	}
}

func TestRunWritesManifestAndAppIcon(t *testing.T) {
	cfg := testConfig(t)
	var logs bytes.Buffer
	a := New(cfg)
	a.Logger = NewFileLogger(&logs)

	sum, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sum.Written) != 7 {
		t.Errorf("written = %v, want 7 files", sum.Written)
	}
	for _, p := range sum.Written {
		if _, err := os.Stat(filepath.Join(cfg.OutDir, filepath.FromSlash(p))); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
	if _, err := os.Stat(cfg.AppIcon); err != nil || sum.AppIcon != cfg.AppIcon {
		t.Errorf("app icon not written: %v", err)
	}
	icon, err := export.LoadMaster(filepath.Join(cfg.OutDir, manifest.MasterFile))
	if err != nil {
		t.Fatal(err)
	}
	if b := icon.Bounds(); b.Dx() != cfg.Size || b.Dy() != cfg.Size {
		t.Errorf("%s bounds = %v, want the %dpx render", manifest.MasterFile, b, cfg.Size)
	}
	if !strings.Contains(logs.String(), "[INFO] export: created 128x128@2x.png (256x256)") {
		t.Errorf("progress not logged:\n%s", logs.String())
	}
	if !strings.Contains(logs.String(), "icon.icns") {
		t.Error("next steps not logged")
	}
}

func TestRunFromSavedMaster(t *testing.T) {
	cfg := testConfig(t)
	if _, err := New(cfg).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	second := testConfig(t)
	second.From = filepath.Join(cfg.OutDir, manifest.MasterFile)
	second.Groups = []string{manifest.GroupDesktop}
	sum, err := New(second).Run(context.Background())
	if err != nil {
		t.Fatalf("Run from master: %v", err)
	}
	if len(sum.Written) != 6 {
		t.Errorf("written = %v", sum.Written)
	}
	if len(sum.Fingerprint) != 12 {
		t.Errorf("Fingerprint = %q", sum.Fingerprint)
	}
}

func TestRunWritesPreview(t *testing.T) {
	cfg := testConfig(t)
	cfg.Preview = filepath.Join(t.TempDir(), "proof", "sheet.png")
	sum, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.Preview != cfg.Preview {
		t.Errorf("Preview = %q", sum.Preview)
	}
	if _, err := export.LoadMaster(cfg.Preview); err != nil {
		t.Errorf("proof sheet unreadable: %v", err)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		is     error
	}{
		{"preset", func(c *Config) { c.Preset = "neon" }, render.ErrUnknownPreset},
		{"missing out", func(c *Config) { c.OutDir = filepath.Join(c.OutDir, "nope") }, export.ErrMissingDir},
		{"missing from", func(c *Config) { c.From = filepath.Join(c.OutDir, "absent.png") }, os.ErrNotExist},
		{"bad colour", func(c *Config) { c.Start = "not-a-colour" }, render.ErrBadColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			if _, err := New(cfg).Run(context.Background()); !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
	cfg := testConfig(t)
	cfg.Groups = []string{"watchos"}
	if _, err := New(cfg).Run(context.Background()); err == nil {
		t.Error("unknown group should fail")
	}
	cfg = testConfig(t)
	cfg.Filter = "box"
	if _, err := New(cfg).Run(context.Background()); err == nil {
		t.Error("unknown filter should fail")
	}
}

func TestOverridePalette(t *testing.T) {
	p, _ := render.LookupPreset("squircle")
	got, err := overridePalette(p.Palette, "", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	if got.Start != p.Palette.Start || got.End.R != 0xFF || got.Glyph != p.Palette.Glyph {
		t.Errorf("palette = %+v", got)
	}
	if _, err := overridePalette(p.Palette, "teal", ""); !errors.Is(err, render.ErrBadColor) {
		t.Errorf("err = %v, want ErrBadColor", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvOutDir, "/tmp/icons")
	t.Setenv(EnvPreset, "dark")
	t.Setenv(EnvSize, "512")
	t.Setenv(EnvGroups, "ios, android,,")
	t.Setenv(EnvFilter, "catmullrom")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != "/tmp/icons" || cfg.Preset != "dark" || cfg.Size != 512 || cfg.Filter != "catmullrom" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Groups) != 2 || cfg.Groups[0] != "ios" || cfg.Groups[1] != "android" {
		t.Errorf("Groups = %q", cfg.Groups)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, k := range []string{EnvOutDir, EnvPreset, EnvSize, EnvGroups, EnvFilter, EnvStdioLog} {
		t.Setenv(k, "")
	}
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != DefaultOutDir || cfg.Size != render.MasterSize || len(cfg.Groups) != len(manifest.DefaultGroups) {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigFromEnvBadSize(t *testing.T) {
	for _, v := range []string{"big", "0", "-3"} {
		t.Setenv(EnvSize, v)
		if _, err := ConfigFromEnv(); err == nil || !strings.Contains(err.Error(), EnvSize) {
			t.Errorf("%s=%q: err = %v", EnvSize, v, err)
		}
	}
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := FileLogger{w: &buf, now: func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }}
	l.Infof("export", "created %s", "32x32.png")
	l.Errorf("export", "boom")
	want := "2024-05-01T09:30:00Z [INFO] export: created 32x32.png\n" +
		"2024-05-01T09:30:00Z [ERROR] export: boom\n"
	if buf.String() != want {
		t.Errorf("log =\n%s\nwant\n%s", buf.String(), want)
	}
}
