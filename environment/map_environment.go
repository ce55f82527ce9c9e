package environment

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/go-librian/librian/module"
)

// Loader compiles the module named by target, given the path of the
// module that requested it. It is invoked by MapEnvironment only on a
// registry miss.
type Loader func(target, currentPath string) (*module.Module, error)

// MapEnvironment is a usable default Environment: an in-memory
// registry of path -> *module.Module, backed by a Loader for misses.
//
// Path comparison first tries an exact match, then falls back to
// Unicode NFC normalisation, so that visually-identical but
// differently-encoded path names - common in asset trees with
// accented characters - compare equal.
type MapEnvironment struct {
	// modules holds every module loaded so far, keyed by its path.
	modules map[string]*module.Module

	// load compiles a module this registry has not seen before.
	load Loader
}

// New builds a MapEnvironment whose registry starts empty; load is
// consulted on every registry miss.
func New(load Loader) *MapEnvironment {
	return &MapEnvironment{
		modules: make(map[string]*module.Module),
		load:    load,
	}
}

// ModulePathEquals reports whether p1 and p2 name the same module.
func (e *MapEnvironment) ModulePathEquals(p1, p2 string) bool {
	if p1 == p2 {
		return true
	}
	return norm.NFC.String(p1) == norm.NFC.String(p2)
}

// LoadModule returns the module named by target, loading and caching
// it on first use. currentPath is passed through to the Loader
// unchanged so relative targets can be resolved.
func (e *MapEnvironment) LoadModule(target, currentPath string) (*module.Module, error) {
	for path, mod := range e.modules {
		if e.ModulePathEquals(path, target) {
			return mod, nil
		}
	}

	if e.load == nil {
		return nil, fmt.Errorf("no loader configured for module %q", target)
	}

	mod, err := e.load(target, currentPath)
	if err != nil {
		return nil, err
	}

	e.modules[mod.Path] = mod
	return mod, nil
}

// Register pre-populates the registry with a module, bypassing the
// Loader. Useful for hosts that compile their whole module graph up
// front, and for tests.
func (e *MapEnvironment) Register(mod *module.Module) {
	e.modules[mod.Path] = mod
}
