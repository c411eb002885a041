package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/interfacer/interfacer/cliutil/interfacer"
)

// Factory returns a new instance of a plugin category.
type Factory func() interfacer.Category

// Registry is a collection of plugin factories, identified by name.
type Registry struct {
	lock      sync.Mutex
	factories map[string]Factory
}

// Default is the registry plugin packages register on.
var Default Registry

// Register adds a factory to the default registry.
func Register(name string, f Factory) {
	Default.Register(name, f)
}

// Register adds a factory under name. It panics if name is empty or
// already registered.
func (r *Registry) Register(name string, f Factory) {
	if name == "" {
		panic("plugin: Register called with empty name")
	}
	if f == nil {
		panic(fmt.Sprintf("plugin: Register of %q called with nil factory", name))
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("plugin: %q already registered", name))
	}
	if r.factories == nil {
		r.factories = make(map[string]Factory)
	}
	r.factories[name] = f
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin instantiates every registered plugin, sorted by category
// name.
func (r *Registry) Builtin() []interfacer.Category {
	var cats []interfacer.Category
	for _, name := range r.Names() {
		f, _ := r.Lookup(name)
		cats = append(cats, f())
	}
	sortCategories(cats)
	return cats
}

// Builtin instantiates every plugin of the default registry.
func Builtin() []interfacer.Category {
	return Default.Builtin()
}

func sortCategories(cats []interfacer.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Name() < cats[j].Name()
	})
}
