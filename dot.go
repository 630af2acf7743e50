package arbor

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type nodeids[C comparable] struct {
	idTable map[C]int
	max     int
}

func newtable[C comparable]() nodeids[C] {
	return nodeids[C]{
		idTable: make(map[C]int),
		max:     1,
	}
}

func (ids *nodeids[C]) alloc(cursor C) int {
	if id, ok := ids.idTable[cursor]; ok {
		return id
	}
	ids.idTable[cursor] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Dot[B, L any, C comparable](t Traversable[B, L, C], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[C]()
	nodelist, edgelist := "", ""
	eachNode(t, func(cursor C, depth int) {
		ID := ids.alloc(cursor)
		val := t.ValueAt(cursor)
		styles := nodeDotStyles(val.IsLeaf())
		if val.IsLeaf() {
			payload, _ := val.Leaf()
			label := dotEscape(fmt.Sprintf("%v", payload))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		} else {
			payload, _ := val.Branch()
			label := dotEscape(fmt.Sprintf("%v", payload))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
			for n := 0; n < t.NumChildrenOf(cursor); n++ {
				child, ok := t.ChildOf(cursor, n)
				if !ok {
					continue
				}
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	out := ""
	for _, r := range s {
		if r == '"' || r == '\\' {
			out += "\\"
		}
		out += string(r)
	}
	return out
}

// Dump writes an indented console rendition of a tree to w, one node
// per line. Branch nodes are colorized when w is a terminal.
func Dump[B, L any, C comparable](t Traversable[B, L, C], w io.Writer) {
	branchColor := color.New(color.FgCyan, color.Bold)
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		branchColor.DisableColor()
	}
	eachNode(t, func(cursor C, depth int) {
		for i := 0; i < depth; i++ {
			io.WriteString(w, "    ")
		}
		val := t.ValueAt(cursor)
		if val.IsLeaf() {
			payload, _ := val.Leaf()
			fmt.Fprintf(w, "leaf %v\n", payload)
		} else {
			payload, _ := val.Branch()
			branchColor.Fprintf(w, "branch %v", payload)
			fmt.Fprintf(w, " (%d children)\n", t.NumChildrenOf(cursor))
		}
	})
}

// eachNode walks all nodes of t depth-first with an explicit stack,
// calling f in pre-order.
func eachNode[B, L any, C comparable](t Traversable[B, L, C], f func(cursor C, depth int)) {
	type frame struct {
		cursor C
		depth  int
	}
	stack := []frame{{cursor: t.CursorToRoot()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(top.cursor, top.depth)
		for n := t.NumChildrenOf(top.cursor) - 1; n >= 0; n-- {
			if child, ok := t.ChildOf(top.cursor, n); ok {
				stack = append(stack, frame{cursor: child, depth: top.depth + 1})
			}
		}
	}
}
