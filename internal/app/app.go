// Package app wires rendering, export and the proof sheet into one run.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/nouvelle/iconset/internal/export"
	"github.com/nouvelle/iconset/internal/manifest"
	"github.com/nouvelle/iconset/internal/preview"
	"github.com/nouvelle/iconset/internal/render"
)

type App struct {
	Config Config
	Logger Logger
}

// Summary reports what a run produced.
type Summary struct {
	Fingerprint string
	Written     []string
	AppIcon     string
	Preview     string
}

func New(cfg Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}}
}

// Run renders (or loads) the master icon and writes every manifest entry,
// then the optional app-icon copy and proof sheet.
func (app *App) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	cfg := app.Config
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	preset, err := render.LookupPreset(cfg.Preset)
	if err != nil {
		return sum, err
	}
	if cfg.Start != "" || cfg.End != "" {
		if preset.Palette, err = overridePalette(preset.Palette, cfg.Start, cfg.End); err != nil {
			return sum, err
		}
	}
	filter, err := export.ParseFilter(cfg.Filter)
	if err != nil {
		return sum, err
	}
	m, err := manifest.Build(cfg.Groups...)
	if err != nil {
		return sum, err
	}

	master, err := app.master(preset)
	if err != nil {
		return sum, err
	}
	m = m.WithMasterSize(master.Bounds().Dx())
	sum.Fingerprint = preview.Fingerprint(master)
	app.Logger.Infof("render", "master %dx%d fingerprint=%s", master.Bounds().Dx(), master.Bounds().Dy(), sum.Fingerprint)

	res, err := export.ExportAll(ctx, master, m, cfg.OutDir, export.Options{
		Filter:       filter,
		NoCreateDirs: cfg.NoCreateDirs,
		Progress: func(w export.Written) {
			app.Logger.Infof("export", "created %s (%dx%d)", w.Path, w.Size, w.Size)
		},
	})
	sum.Written = res.Paths()
	if err != nil {
		app.Logger.Errorf("export", "stopped after %d of %d files: %v", res.Count(), len(m), err)
		return sum, err
	}

	if cfg.AppIcon != "" {
		if err := writeCopy(cfg.AppIcon, master, cfg.NoCreateDirs); err != nil {
			return sum, fmt.Errorf("app icon: %w", err)
		}
		sum.AppIcon = cfg.AppIcon
		app.Logger.Infof("export", "created %s", cfg.AppIcon)
	}

	if cfg.Preview != "" || cfg.FBDev != "" {
		if err := app.proof(master, m, preset.Name, filter, &sum); err != nil {
			return sum, err
		}
	}

	app.logNextSteps()
	return sum, nil
}

func (app *App) master(preset render.Preset) (image.Image, error) {
	if app.Config.From != "" {
		app.Logger.Infof("render", "loading master from %s", app.Config.From)
		return export.LoadMaster(app.Config.From)
	}
	app.Logger.Infof("render", "rendering preset %q at %dpx", preset.Name, app.Config.Size)
	return render.RenderMaster(app.Config.Size, preset), nil
}

func (app *App) proof(master image.Image, m manifest.Manifest, presetName string, filter export.Filter, sum *Summary) error {
	sheet, err := preview.Sheet(master, m, preview.Options{Preset: presetName, Filter: filter})
	if err != nil {
		return fmt.Errorf("proof sheet: %w", err)
	}
	if app.Config.Preview != "" {
		if err := writeCopy(app.Config.Preview, sheet, app.Config.NoCreateDirs); err != nil {
			return fmt.Errorf("proof sheet: %w", err)
		}
		sum.Preview = app.Config.Preview
		app.Logger.Infof("preview", "created %s", app.Config.Preview)
	}
	if app.Config.FBDev != "" {
		// Display errors are logged only.
		if err := preview.Display(sheet, app.Config.FBDev); err != nil {
			app.Logger.Errorf("preview", "framebuffer %s: %v", app.Config.FBDev, err)
		} else {
			app.Logger.Infof("preview", "shown on %s", app.Config.FBDev)
		}
	}
	return nil
}

func overridePalette(p render.Palette, start, end string) (render.Palette, error) {
	if start == "" {
		start = render.Hex(p.Start)
	}
	if end == "" {
		end = render.Hex(p.End)
	}
	parsed, err := render.ParsePalette(start, end)
	if err != nil {
		return p, err
	}
	parsed.Glyph = p.Glyph
	return parsed, nil
}

// writeCopy saves img to a path outside the manifest root.
func writeCopy(path string, img image.Image, noCreate bool) error {
	dir := filepath.Dir(path)
	if noCreate {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", export.ErrMissingDir, dir)
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return export.SavePNG(path, img)
}

func (app *App) logNextSteps() {
	icon := filepath.Join(app.Config.OutDir, manifest.MasterFile)
	app.Logger.Infof("next", "convert to .icns for macOS: convert %s -resize 1024x1024 icon.icns", icon)
	app.Logger.Infof("next", "convert to .ico for Windows: convert %s -define icon:auto-resize=256,128,64,48,32,16 icon.ico", icon)
}
