package environment

import (
	"fmt"
	"testing"

	"github.com/go-librian/librian/module"
)

func TestExactPathEquals(t *testing.T) {
	env := New(nil)
	if !env.ModulePathEquals("chapter1", "chapter1") {
		t.Fatalf("identical paths should compare equal")
	}
	if env.ModulePathEquals("chapter1", "chapter2") {
		t.Fatalf("distinct paths should not compare equal")
	}
}

func TestUnicodeNormalizedPathEquals(t *testing.T) {
	env := New(nil)

	// "é" as a single precomposed rune vs. "e" + combining acute -
	// visually identical, differently encoded.
	precomposed := "café"
	decomposed := "café"

	if precomposed == decomposed {
		t.Fatalf("test fixture is not actually testing normalisation")
	}
	if !env.ModulePathEquals(precomposed, decomposed) {
		t.Fatalf("NFC-equivalent paths should compare equal")
	}
}

func TestLoadModuleCachesAndInvokesLoaderOnce(t *testing.T) {
	calls := 0
	env := New(func(target, currentPath string) (*module.Module, error) {
		calls++
		return module.New(target, nil), nil
	})

	first, err := env.LoadModule("chapter1", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	second, err := env.LoadModule("chapter1", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if first != second {
		t.Fatalf("expected the cached module to be returned on the second load")
	}
	if calls != 1 {
		t.Fatalf("loader invoked %d times, wanted 1", calls)
	}
}

func TestLoadModuleMissingLoader(t *testing.T) {
	env := New(nil)

	_, err := env.LoadModule("chapter1", "")
	if err == nil {
		t.Fatalf("expected an error with no loader configured")
	}
}

func TestLoadModulePropagatesLoaderError(t *testing.T) {
	env := New(func(target, currentPath string) (*module.Module, error) {
		return nil, fmt.Errorf("boom")
	})

	_, err := env.LoadModule("chapter1", "")
	if err == nil {
		t.Fatalf("expected the loader's error to propagate")
	}
}

func TestRegister(t *testing.T) {
	env := New(nil)
	env.Register(module.New("chapter1", nil))

	mod, err := env.LoadModule("chapter1", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if mod.Path != "chapter1" {
		t.Fatalf("got path %q, wanted chapter1", mod.Path)
	}
}
