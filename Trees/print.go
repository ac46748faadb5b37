package Trees

import (
	"fmt"
	"io"
	"strings"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

func (u *BST[T]) output(sb *strings.Builder, cur nodePtr[T], prefix string) {
	kids := make([]string, 0, 2)
	links := make([]nodePtr[T], 0, 2)
	if cur.l != u.nilPtr {
		kids, links = append(kids, "L:"), append(links, cur.l)
	}
	if cur.r != u.nilPtr {
		kids, links = append(kids, "R:"), append(links, cur.r)
	}
	for i, c := range links {
		branch, indent := branchMid, indentMid
		if i == len(links)-1 {
			branch, indent = branchLast, indentLast
		}
		fmt.Fprintf(sb, "%s%s%s%v\n", prefix, branch, kids[i], c.v)
		u.output(sb, c, prefix+indent)
	}
}

// String renders the shape of the tree for diagnostics, one node per line
// under a "BST" header. A child is tagged L: or R: so a lone child's side
// is visible. The format isn't stable. Recursive.
func (u *BST[T]) String() string {
	var sb strings.Builder
	sb.WriteString("BST\n")
	if u.root != u.nilPtr {
		fmt.Fprintf(&sb, "%v\n", u.root.v)
		u.output(&sb, u.root, "")
	}
	return sb.String()
}

// Print writes String to w.
func (u *BST[T]) Print(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}
