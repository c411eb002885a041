// Package flagx contains option value types shared by the command
// line front end and the option parser.
package flagx

import (
	"errors"
	"path/filepath"

	"github.com/spf13/pflag"
)

// AbsPath is an option value that is always an absolute path. Relative
// paths are resolved against the working directory when set.
type AbsPath string

var _ pflag.Value = (*AbsPath)(nil)

// EmptyPathError is returned when setting an empty path.
var EmptyPathError = errors.New("empty path not allowed")

func (a AbsPath) String() string {
	return string(a)
}

// Set resolves value to an absolute path.
func (a *AbsPath) Set(value string) error {
	if value == "" {
		return EmptyPathError
	}
	path, err := filepath.Abs(value)
	if err != nil {
		return err
	}
	*a = AbsPath(filepath.Clean(path))
	return nil
}

// Type names the value in option help.
func (a *AbsPath) Type() string {
	return "path"
}

// Join returns the path of name inside a, unless name is already
// absolute.
func (a AbsPath) Join(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(string(a), name)
}
