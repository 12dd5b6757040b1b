package graphio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestReadEdgeListSymmetrized(t *testing.T) {
	path := writeTemp(t, "g.el", "# comment\n0 1\n1 2\n\n0 2\n")
	g, err := ReadEdgeList(path, true)
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.NumNodes() != 3 {
		t.Fatalf("NumNodes() = %d, want 3", g.NumNodes())
	}
	if g.Directed() {
		t.Errorf("symmetrized read should not be directed")
	}
	if g.OutDegree(0) != 2 {
		t.Errorf("OutDegree(0) = %d, want 2", g.OutDegree(0))
	}
}

func TestReadEdgeListDetectsAsymmetricAsDirected(t *testing.T) {
	path := writeTemp(t, "g.el", "0 1\n1 2\n")
	g, err := ReadEdgeList(path, false)
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if !g.Directed() {
		t.Errorf("one-directional edges without symmetrize should be marked directed")
	}
}

func TestReadEdgeListSymmetricWithoutSymmetrizeFlag(t *testing.T) {
	path := writeTemp(t, "g.el", "0 1\n1 0\n1 2\n2 1\n")
	g, err := ReadEdgeList(path, false)
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.Directed() {
		t.Errorf("explicitly symmetric edge list should not be marked directed")
	}
}

func TestReadEdgeListWeightedIgnoresWeight(t *testing.T) {
	path := writeTemp(t, "g.wel", "0 1 3.5\n1 2 1.0\n")
	g, err := ReadEdgeList(path, true)
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.OutDegree(0) != 1 {
		t.Errorf("OutDegree(0) = %d, want 1", g.OutDegree(0))
	}
}

func TestReadEdgeListBadLineErrors(t *testing.T) {
	path := writeTemp(t, "g.el", "0 notanumber\n")
	if _, err := ReadEdgeList(path, true); err == nil {
		t.Errorf("expected an error for a malformed node id")
	}
}
