package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette maps structural node roles to console colors, used for display.
// It may be partial; roles without a color print unstyled.
type Palette struct {
	Inner *color.Color
	Leaf  *color.Color
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Inner: color.New(color.FgBlue),
		Leaf:  color.New(color.FgGreen),
	}
}

// Sketcher renders the node structure of a tree as an indented console
// sketch, one node per line, right subtree above and left subtree below its
// parent. It is meant for interactive debugging on consoles with a fixed
// width font.
type Sketcher[T comparable] struct {
	colors *Palette
	width  int // line length in fixed-width ‘en’s
}

// NewSketcher creates a sketcher for trees over T.
//
// colors maps node roles to display colors and may be nil, selecting a
// default palette. The line width is taken from the current terminal's
// properties (if stdout is interactive), with a fallback of 65.
func NewSketcher[T comparable](colors *Palette) *Sketcher[T] {
	fw := &Sketcher[T]{
		colors: colors,
		width:  widthFromTerminal(),
	}
	if fw.colors == nil {
		fw.colors = makeDefaultPalette()
	}
	return fw
}

// widthFromTerminal checks whether stdout is a terminal, and if so reads the
// terminal's width to size sketch lines accordingly.
func widthFromTerminal() int {
	width := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 10 {
			width = w
		}
	}
	T().P("format", "console").Infof("setting sketch width to %d en", width)
	return width
}

// Print outputs a tree sketch to stdout.
func (fw *Sketcher[T]) Print(tree *Tree[T]) error {
	return fw.Write(tree, os.Stdout)
}

// Write outputs a tree sketch to w.
func (fw *Sketcher[T]) Write(tree *Tree[T], w io.Writer) error {
	if tree == nil || tree.root == nil {
		_, err := io.WriteString(w, "·\n")
		return err
	}
	return fw.sketch(tree.root, "", "", w)
}

func (fw *Sketcher[T]) sketch(n *Node[T], branch, cont string, w io.Writer) error {
	if n.right != nil {
		if err := fw.sketch(n.right, cont+"  ┌─", cont+"  │ ", w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, branch+" "); err != nil {
		return err
	}
	value := fw.clip(fmt.Sprintf("%v", n.value), len(branch)+1)
	fw.styledValue(value, n.IsLeaf(), w)
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if n.left != nil {
		return fw.sketch(n.left, cont+"  └─", cont+"    ", w)
	}
	return nil
}

// styledValue prints a node value, colorized per the node's role.
func (fw *Sketcher[T]) styledValue(s string, isleaf bool, w io.Writer) {
	c := fw.colors.Inner
	if isleaf {
		c = fw.colors.Leaf
	}
	if c != nil {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// clip shortens a value string so the sketch line fits the console width.
func (fw *Sketcher[T]) clip(s string, used int) string {
	room := fw.width - used
	if room < 3 {
		room = 3
	}
	if len(s) <= room {
		return s
	}
	return strings.TrimSpace(s[:room-1]) + "…"
}
