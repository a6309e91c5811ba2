package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nouvelle/iconset/internal/manifest"
	"github.com/nouvelle/iconset/internal/render"
)

const (
	EnvOutDir   = "ICONSET_OUT"
	EnvPreset   = "ICONSET_PRESET"
	EnvSize     = "ICONSET_SIZE"
	EnvGroups   = "ICONSET_GROUPS"
	EnvFilter   = "ICONSET_FILTER"
	EnvStdioLog = "ICONSET_STDIO_LOG"
)

const (
	DefaultOutDir  = "apps/desktop/src-tauri/icons"
	DefaultAppIcon = "apps/desktop/app-icon.png"
)

// Config holds everything a run needs. Flags override the environment
// defaults returned by ConfigFromEnv.
type Config struct {
	OutDir  string
	Preset  string
	Size    int
	Groups  []string
	Filter  string
	Start   string // "#rrggbb" gradient override; empty keeps the preset's
	End     string
	From    string // reload this master PNG instead of rendering
	AppIcon string // extra copy of the master; empty disables
	Preview string // proof sheet output path; empty disables
	FBDev   string // framebuffer to show the proof sheet on; empty disables

	NoCreateDirs bool
	StdioLog     string
}

// ConfigFromEnv returns the defaults, overridden by ICONSET_* variables.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		OutDir:   DefaultOutDir,
		Preset:   render.DefaultPreset,
		Size:     render.MasterSize,
		Groups:   append([]string(nil), manifest.DefaultGroups...),
		AppIcon:  DefaultAppIcon,
		StdioLog: os.Getenv(EnvStdioLog),
	}
	if v := os.Getenv(EnvOutDir); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv(EnvPreset); v != "" {
		cfg.Preset = v
	}
	if v := os.Getenv(EnvFilter); v != "" {
		cfg.Filter = v
	}
	if v := os.Getenv(EnvGroups); v != "" {
		cfg.Groups = SplitList(v)
	}
	if raw := os.Getenv(EnvSize); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return Config{}, fmt.Errorf("%s must be a positive integer (got %q)", EnvSize, raw)
		}
		cfg.Size = size
	}
	return cfg, nil
}

// SplitList splits a comma-separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
