package arbor

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	tree := FromLevelOrder(1, 2, 3, 4)
	var sb strings.Builder
	Tree2Dot(tree, &sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT digraph header, got %q", out)
	}
	for _, label := range []string{"label=\"1\"", "label=\"2\"", "label=\"3\"", "label=\"4\""} {
		if !strings.Contains(out, label) {
			t.Errorf("missing node %s in DOT output", label)
		}
	}
	if !strings.Contains(out, "->") {
		t.Errorf("expected edges in DOT output")
	}
}

func TestTree2DotEmpty(t *testing.T) {
	var sb strings.Builder
	Tree2Dot(New[int](), &sb)
	if !strings.Contains(sb.String(), "strict digraph {") {
		t.Errorf("expected a valid empty digraph, got %q", sb.String())
	}
}

func TestSketcherWrite(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	color.NoColor = true // deterministic output
	tree := canonical()
	sketcher := NewSketcher[int](nil)
	var sb strings.Builder
	if err := sketcher.Write(tree, &sb); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != tree.Len() {
		t.Errorf("expected one line per node, got %d lines for %d nodes",
			len(lines), tree.Len())
	}
	for _, v := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		if !strings.Contains(sb.String(), v) {
			t.Errorf("sketch misses node value %s", v)
		}
	}
}

func TestSketcherWriteEmptyTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	sketcher := NewSketcher[int](nil)
	var sb strings.Builder
	if err := sketcher.Write(New[int](), &sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "·\n" {
		t.Errorf("expected placeholder for empty tree, got %q", sb.String())
	}
}
