//go:build !debug
// +build !debug

package spheres3d

func DebugLog(format string, args ...interface{}) {}
