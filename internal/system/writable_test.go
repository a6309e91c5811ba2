package system

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCheckWritableTempDir(t *testing.T) {
	if err := CheckWritable(t.TempDir()); err != nil {
		t.Errorf("CheckWritable(TempDir) = %v", err)
	}
}

func TestCheckWritableReadOnlyDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })
	if err := CheckWritable(dir); err == nil {
		t.Error("CheckWritable on a read-only directory should fail")
	}
}
