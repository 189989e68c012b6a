package utils

import (
	"fmt"
	"io"
)

const (
	pipe    = "│   "
	tee     = "├── "
	lasttee = "└── "
	blank   = "    "
)

// TreeNode is one labelled node of a printable tree.
type TreeNode struct {
	Level    int
	Label    string
	Children []*TreeNode
	Parent   *TreeNode
	Left     *TreeNode
	Right    *TreeNode
}

// AddChild appends a child labelled label and links it to its siblings.
func (node *TreeNode) AddChild(label string) *TreeNode {
	var pre *TreeNode
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &TreeNode{
		Level:  node.Level + 1,
		Label:  label,
		Parent: node,
		Left:   pre,
	}
	if pre != nil {
		pre.Right = child
	}

	node.Children = append(node.Children, child)
	return child
}

// ShowTree writes the tree to w, using prefix for indentation and the
// difference between tee and lasttee to mark the end of a branch.
func (node *TreeNode) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		fmt.Fprintln(w, node.Label)
	} else {
		subFix := lasttee
		if node.Right != nil {
			subFix = tee
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, subFix, node.Label)

		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += blank
		}
	}

	for _, child := range node.Children {
		child.ShowTree(w, prefix)
	}
}
