//go:build !unix

package system

// CheckWritable is a no-op where access(2) is unavailable; write errors
// surface when the first file is created instead.
func CheckWritable(dir string) error { return nil }
