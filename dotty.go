package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
)

type nodeids[T comparable] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T comparable]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T comparable](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	emit := func(node *Node[T]) {
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf())
		label := fmt.Sprintf("%v", node.value)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		if node.IsLeaf() {
			return
		}
		if node.left == nil {
			nilid := ID + 10000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			_ = ids.alloc(node.left)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(node.left))
		}
		if node.right == nil {
			nilid := ID + 10001
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			_ = ids.alloc(node.right)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(node.right))
		}
	}
	if tree != nil && tree.root != nil {
		fringe := []*Node[T]{tree.root}
		for len(fringe) > 0 {
			node := fringe[0]
			fringe = fringe[1:]
			emit(node)
			if node.left != nil {
				fringe = append(fringe, node.left)
			}
			if node.right != nil {
				fringe = append(fringe, node.right)
			}
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode(id int) string {
	s := "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
	//s = fmt.Sprintf(s, id)
	return s
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		//s += ",fillcolor=\"#a3d7e4\""
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
