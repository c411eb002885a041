package plugin_test

import (
	"reflect"
	"testing"

	"github.com/interfacer/interfacer/plugin"
)

func TestRegistryLookup(t *testing.T) {
	r := newRegistry()
	f, ok := r.Lookup("ssh")
	if !ok {
		t.Fatal("factory not found")
	}
	if g, e := f().Name(), "ssh"; g != e {
		t.Errorf("unexpected category: %q != %q", g, e)
	}
	if _, ok := r.Lookup("frob"); ok {
		t.Errorf("unexpected factory for frob")
	}
}

func TestRegistryNames(t *testing.T) {
	r := newRegistry()
	if g, e := r.Names(), []string{"bolt", "ssh", "version", "zeta"}; !reflect.DeepEqual(g, e) {
		t.Errorf("unexpected names: %q != %q", g, e)
	}
}

func TestRegistryBuiltinSortedByCategoryName(t *testing.T) {
	r := newRegistry()
	if g, e := names(r.Builtin()), []string{"alpha", "bolt", "ssh", "version"}; !reflect.DeepEqual(g, e) {
		t.Errorf("unexpected categories: %q != %q", g, e)
	}
}

func TestRegistryBuiltinFreshInstances(t *testing.T) {
	r := newRegistry()
	a := r.Builtin()
	b := r.Builtin()
	if a[0] == b[0] {
		t.Errorf("factories returned the same instance twice")
	}
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	fn()
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := newRegistry()
	expectPanic(t, func() { r.Register("ssh", stub("ssh")) })
}

func TestRegistryInvalidPanics(t *testing.T) {
	r := &plugin.Registry{}
	expectPanic(t, func() { r.Register("", stub("x")) })
	expectPanic(t, func() { r.Register("x", nil) })
}
