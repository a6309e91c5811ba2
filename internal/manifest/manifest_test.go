package manifest

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	m := Default()
	if err := m.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	// 1 master + 6 desktop + 10 windows + 15 android + 18 ios
	if len(m) != 50 {
		t.Errorf("len(Default()) = %d, want 50", len(m))
	}
	if m[0] != (Entry{MasterFile, 1024}) {
		t.Errorf("first entry = %+v, want master", m[0])
	}
}

func TestAndroidGroup(t *testing.T) {
	m, err := Group(GroupAndroid)
	if err != nil {
		t.Fatal(err)
	}
	want := Manifest{
		{"android/mipmap-mdpi/ic_launcher.png", 48},
		{"android/mipmap-mdpi/ic_launcher_round.png", 48},
		{"android/mipmap-mdpi/ic_launcher_foreground.png", 48},
	}
	if !reflect.DeepEqual(m[:3], want) {
		t.Errorf("android[:3] = %+v, want %+v", m[:3], want)
	}
	if last := m[len(m)-1]; last.Size != 192 {
		t.Errorf("last android entry = %+v, want xxxhdpi 192", last)
	}
}

func TestGroupReturnsCopy(t *testing.T) {
	a, _ := Group(GroupDesktop)
	a[0].Size = 1
	b, _ := Group(GroupDesktop)
	if b[0].Size != 32 {
		t.Errorf("mutating a group leaked into the table: %+v", b[0])
	}
}

func TestBuildUnknownGroup(t *testing.T) {
	if _, err := Build(GroupDesktop, "watchos"); err == nil {
		t.Error("Build with unknown group should fail")
	}
}

func TestBuildTrimsNames(t *testing.T) {
	m, err := Build(" master ", "desktop")
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 7 {
		t.Errorf("len = %d, want 7", len(m))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		ok    bool
	}{
		{"plain", Entry{"32x32.png", 32}, true},
		{"nested", Entry{"ios/AppIcon-60x60@3x.png", 180}, true},
		{"zero size", Entry{"a.png", 0}, false},
		{"negative size", Entry{"a.png", -4}, false},
		{"empty path", Entry{"", 16}, false},
		{"absolute", Entry{"/tmp/a.png", 16}, false},
		{"escapes root", Entry{"../a.png", 16}, false},
		{"unclean", Entry{"ios//a.png", 16}, false},
		{"backslash", Entry{`ios\a.png`, 16}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Manifest{tt.entry}.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("Validate() = %v, want ErrInvalidEntry", err)
			}
		})
	}
}

func TestSizesAndCounts(t *testing.T) {
	m := Manifest{{"a.png", 64}, {"b.png", 16}, {"c.png", 64}, {"a.png", 32}}
	if got, want := m.Sizes(), []int{16, 32, 64}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sizes() = %v, want %v", got, want)
	}
	if got := m.CountBySize()[64]; got != 2 {
		t.Errorf("CountBySize()[64] = %d, want 2", got)
	}
}

func TestWithMasterSize(t *testing.T) {
	m := Manifest{{MasterFile, 1024}, {"32x32.png", 32}, {"sub/" + MasterFile, 64}}
	got := m.WithMasterSize(512)
	want := Manifest{{MasterFile, 512}, {"32x32.png", 32}, {"sub/" + MasterFile, 64}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WithMasterSize(512) = %+v, want %+v", got, want)
	}
	if m[0].Size != 1024 {
		t.Error("WithMasterSize modified its receiver")
	}
}
