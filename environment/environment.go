// Package environment defines the host-provided module loader and
// path-equivalence oracle the VM suspends on (spec §5, §6), plus a
// usable default implementation backed by an in-memory module
// registry.
package environment

import "github.com/go-librian/librian/module"

// Environment is the two operations a host must provide. LoadModule
// reports failure by returning an error rather than panicking;
// ModulePathEquals returns only a bool. Both may be called from the
// single-threaded VM loop only.
type Environment interface {
	// ModulePathEquals reports whether p1 and p2 name the same
	// module, which may require normalising either side.
	ModulePathEquals(p1, p2 string) bool

	// LoadModule returns the module named by target, compiling it if
	// necessary. currentPath lets the host resolve target relative
	// to the module that is requesting it.
	LoadModule(target, currentPath string) (*module.Module, error)
}
