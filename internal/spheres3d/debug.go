//go:build debug
// +build debug

package spheres3d

import "fmt"

func DebugLog(format string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}
