package cliapp

import "testing"

func TestResolveSourcePrefersFileOverGenerators(t *testing.T) {
	o := &Options{File: "graph.el", KroneckerScale: 10, UniformScale: 10}
	if got := o.ResolveSource(); got != SourceFile {
		t.Errorf("ResolveSource() = %v, want SourceFile", got)
	}
}

func TestResolveSourceKronecker(t *testing.T) {
	o := &Options{KroneckerScale: 16}
	if got := o.ResolveSource(); got != SourceKronecker {
		t.Errorf("ResolveSource() = %v, want SourceKronecker", got)
	}
}

func TestResolveSourceUniform(t *testing.T) {
	o := &Options{UniformScale: 16}
	if got := o.ResolveSource(); got != SourceUniform {
		t.Errorf("ResolveSource() = %v, want SourceUniform", got)
	}
}

func TestResolveSourceNoneWhenNothingSet(t *testing.T) {
	o := &Options{}
	if got := o.ResolveSource(); got != SourceNone {
		t.Errorf("ResolveSource() = %v, want SourceNone", got)
	}
}
