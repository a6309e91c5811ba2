package manifest

import (
	"fmt"
	"strings"
)

// MasterFile is the full-resolution icon fed to .icns/.ico converters.
const MasterFile = "icon.png"

var master = Manifest{
	{MasterFile, 1024},
}

var desktop = Manifest{
	{"32x32.png", 32},
	{"64x64.png", 64},
	{"128x128.png", 128},
	{"128x128@2x.png", 256},
	{"256x256.png", 256},
	{"512x512.png", 512},
}

var windows = Manifest{
	{"Square30x30Logo.png", 30},
	{"Square44x44Logo.png", 44},
	{"Square71x71Logo.png", 71},
	{"Square89x89Logo.png", 89},
	{"Square107x107Logo.png", 107},
	{"Square142x142Logo.png", 142},
	{"Square150x150Logo.png", 150},
	{"Square284x284Logo.png", 284},
	{"Square310x310Logo.png", 310},
	{"StoreLogo.png", 50},
}

var ios = Manifest{
	{"ios/AppIcon-20x20@1x.png", 20},
	{"ios/AppIcon-20x20@2x.png", 40},
	{"ios/AppIcon-20x20@2x-1.png", 40},
	{"ios/AppIcon-20x20@3x.png", 60},
	{"ios/AppIcon-29x29@1x.png", 29},
	{"ios/AppIcon-29x29@2x.png", 58},
	{"ios/AppIcon-29x29@2x-1.png", 58},
	{"ios/AppIcon-29x29@3x.png", 87},
	{"ios/AppIcon-40x40@1x.png", 40},
	{"ios/AppIcon-40x40@2x.png", 80},
	{"ios/AppIcon-40x40@2x-1.png", 80},
	{"ios/AppIcon-40x40@3x.png", 120},
	{"ios/AppIcon-60x60@2x.png", 120},
	{"ios/AppIcon-60x60@3x.png", 180},
	{"ios/AppIcon-76x76@1x.png", 76},
	{"ios/AppIcon-76x76@2x.png", 152},
	{"ios/AppIcon-83.5x83.5@2x.png", 167},
	{"ios/AppIcon-512@2x.png", 1024},
}

// androidDensities maps each mipmap folder to its launcher size.
var androidDensities = []struct {
	folder string
	size   int
}{
	{"android/mipmap-mdpi", 48},
	{"android/mipmap-hdpi", 72},
	{"android/mipmap-xhdpi", 96},
	{"android/mipmap-xxhdpi", 144},
	{"android/mipmap-xxxhdpi", 192},
}

var androidFiles = []string{"ic_launcher.png", "ic_launcher_round.png", "ic_launcher_foreground.png"}

func android() Manifest {
	m := make(Manifest, 0, len(androidDensities)*len(androidFiles))
	for _, d := range androidDensities {
		for _, f := range androidFiles {
			m = append(m, Entry{Path: d.folder + "/" + f, Size: d.size})
		}
	}
	return m
}

// Group names, in the order DefaultGroups emits them.
const (
	GroupMaster  = "master"
	GroupDesktop = "desktop"
	GroupWindows = "windows"
	GroupAndroid = "android"
	GroupIOS     = "ios"
)

// DefaultGroups is every built-in group.
var DefaultGroups = []string{GroupMaster, GroupDesktop, GroupWindows, GroupAndroid, GroupIOS}

// Group returns a copy of the named built-in group.
func Group(name string) (Manifest, error) {
	switch name {
	case GroupMaster:
		return clone(master), nil
	case GroupDesktop:
		return clone(desktop), nil
	case GroupWindows:
		return clone(windows), nil
	case GroupAndroid:
		return android(), nil
	case GroupIOS:
		return clone(ios), nil
	}
	return nil, fmt.Errorf("unknown manifest group %q (have %s)", name, strings.Join(DefaultGroups, ", "))
}

// Build concatenates the named groups in order.
func Build(groups ...string) (Manifest, error) {
	var m Manifest
	for _, g := range groups {
		entries, err := Group(strings.TrimSpace(g))
		if err != nil {
			return nil, err
		}
		m = append(m, entries...)
	}
	return m, nil
}

// Default is the full manifest: every built-in group.
func Default() Manifest {
	m, err := Build(DefaultGroups...)
	if err != nil {
		panic(err)
	}
	return m
}

// WithMasterSize returns a copy of m whose MasterFile entries are size
// pixels, so the master file matches the canvas it was rendered on.
func (m Manifest) WithMasterSize(size int) Manifest {
	out := clone(m)
	for i := range out {
		if out[i].Path == MasterFile {
			out[i].Size = size
		}
	}
	return out
}

func clone(m Manifest) Manifest {
	return append(Manifest(nil), m...)
}
