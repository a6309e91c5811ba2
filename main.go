// Command iconset renders the app icon and writes every desktop, Windows,
// Android and iOS size under the output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nouvelle/iconset/internal/app"
	"github.com/nouvelle/iconset/internal/render"
)

func main() {
	defaults, err := app.ConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	outDir := flag.String("out", defaults.OutDir, "output root for manifest files; also configurable via "+app.EnvOutDir)
	preset := flag.String("preset", defaults.Preset, "render preset: "+strings.Join(render.PresetNames(), " | ")+"; also configurable via "+app.EnvPreset)
	size := flag.Int("size", defaults.Size, "master canvas size in pixels; also configurable via "+app.EnvSize)
	groups := flag.String("groups", strings.Join(defaults.Groups, ","), "comma-separated manifest groups; also configurable via "+app.EnvGroups)
	filter := flag.String("filter", defaults.Filter, "resampling filter: lanczos | catmullrom; also configurable via "+app.EnvFilter)
	start := flag.String("start", "", "override the gradient's top colour (#rrggbb)")
	end := flag.String("end", "", "override the gradient's bottom colour (#rrggbb)")
	from := flag.String("from", "", "resize this previously generated master PNG instead of rendering")
	appIcon := flag.String("app-icon", defaults.AppIcon, "also write the master here; empty disables")
	previewPath := flag.String("preview", "", "write a proof sheet of every size to this PNG")
	fbDev := flag.String("fb", "", "show the proof sheet on this framebuffer device, e.g. /dev/fb0")
	noCreateDirs := flag.Bool("no-create-dirs", false, "fail instead of creating missing output directories")
	quiet := flag.Bool("quiet", false, "suppress progress logging")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr to this file; also configurable via "+app.EnvStdioLog)
	flag.Parse()

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	cfg := defaults
	cfg.OutDir = *outDir
	cfg.Preset = *preset
	cfg.Size = *size
	cfg.Groups = app.SplitList(*groups)
	cfg.Filter = *filter
	cfg.Start = *start
	cfg.End = *end
	cfg.From = *from
	cfg.AppIcon = *appIcon
	cfg.Preview = *previewPath
	cfg.FBDev = *fbDev
	cfg.NoCreateDirs = *noCreateDirs
	cfg.StdioLog = *stdioLog

	a := app.New(cfg)
	if !*quiet {
		a.Logger = app.NewFileLogger(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := a.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "iconset:", err)
		stop()
		os.Exit(1)
	}
	fmt.Printf("wrote %d files (fingerprint %s)\n", len(sum.Written), sum.Fingerprint)
}
