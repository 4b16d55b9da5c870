package util

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether the named file or directory exists.
func FileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// ValidSystem returns true if s names a kernel virtual file that can be
// measured. Only /proc and /sys are fair game.
func ValidSystem(s string) bool {
	path := filepath.Clean(s)
	if !strings.HasPrefix(path, "/proc/") &&
		!strings.HasPrefix(path, "/sys/") {
		return false
	}
	return FileExists(path)
}

// Measure reads a kernel virtual file into memory in one shot. The
// contents of these files are ephemeral so they must be captured as
// early as possible and parsed from the copy.
func Measure(s string) ([]byte, error) {
	path := filepath.Clean(s)
	if !ValidSystem(path) {
		return nil, fmt.Errorf("invalid system: %v", path)
	}
	return ioutil.ReadFile(path)
}
