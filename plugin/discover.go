package plugin

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/interfacer/interfacer/cliutil/interfacer"
	"golang.org/x/xerrors"
)

// ManifestExt is the file name extension of plugin manifests.
const ManifestExt = ".plugin"

// Discover instantiates the plugins enabled by the manifests in dir,
// sorted by category name.
func (r *Registry) Discover(dir string) ([]interfacer.Category, error) {
	children, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, xerrors.Errorf("listing plugins: %w", err)
	}

	// ReadDir sorts by file name, which keeps equal category names
	// in a stable order
	var cats []interfacer.Category
	for _, fi := range children {
		if fi.IsDir() || filepath.Ext(fi.Name()) != ManifestExt {
			continue
		}
		base := strings.TrimSuffix(fi.Name(), ManifestExt)
		if strings.HasPrefix(base, "_") {
			continue
		}

		path := filepath.Join(dir, fi.Name())
		m, err := ReadManifest(path)
		if err != nil {
			return nil, err
		}
		if m.Disabled {
			continue
		}
		name := m.Factory
		if name == "" {
			name = base
		}
		f, ok := r.Lookup(name)
		if !ok {
			return nil, &ErrUnknownFactory{Manifest: path, Factory: name}
		}
		cats = append(cats, f())
	}
	sortCategories(cats)
	return cats, nil
}

// Discover instantiates plugins of the default registry enabled by
// the manifests in dir.
func Discover(dir string) ([]interfacer.Category, error) {
	return Default.Discover(dir)
}
