package plugin

import (
	"os"
	"path/filepath"
)

// candidates lists where a plugin set called name may live, most
// specific first.
func candidates(name string, dataDir string) []string {
	l := []string{
		name,
		filepath.Join("..", name),
		filepath.Join("/usr/share", name),
	}
	if dataDir != "" {
		l = append(l, filepath.Join(dataDir, name))
	}
	return l
}

// Locate finds the directory of the plugin set called name. It checks
// the working directory, its parent, /usr/share and dataDir, and
// returns the first that exists. An empty dataDir is skipped.
func Locate(name string, dataDir string) (path string, ok bool) {
	for _, p := range candidates(name, dataDir) {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
