package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"sorttrace/src/sort"
	"sorttrace/src/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formatText = "text"
	formatJSON = "json"
	formatHeap = "heap"
)

func validFormat(f string) bool {
	return f == formatText || f == formatJSON || f == formatHeap
}

// traceDocument is the json form of a finished run.
type traceDocument struct {
	Algorithm sort.Algorithm  `json:"algorithm"`
	Values    []float64       `json:"values"`
	Trace     []sort.Snapshot `json:"trace"`
}

func writeTrace(w io.Writer, format string, engine sort.Engine) error {
	switch format {
	case formatJSON:
		return json.NewEncoder(w).Encode(traceDocument{
			Algorithm: engine.Algorithm(),
			Values:    engine.Values().Values(),
			Trace:     engine.Recorder().Snapshots(),
		})
	case formatHeap:
		HeapTree(engine.Values()).ShowTree(w, "")
		return nil
	default:
		for i, s := range engine.Recorder().Snapshots() {
			if _, err := fmt.Fprintf(w, "#%d %s\n", i, FormatSnapshot(s)); err != nil {
				return err
			}
		}
		return nil
	}
}

var highlight = color.New(color.FgGreen, color.Bold)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatSnapshot renders one frame on a single line. Selected elements are
// coloured, or bracketed when colour is off.
func FormatSnapshot(s sort.Snapshot) string {
	parts := make([]string, len(s))
	for i, e := range s {
		v := formatValue(e.Value)
		switch {
		case !e.Selected:
			parts[i] = v
		case color.NoColor:
			parts[i] = "[" + v + "]"
		default:
			parts[i] = highlight.Sprint(v)
		}
	}
	return strings.Join(parts, " ")
}

// HeapTree lays seq out as the heap heap_sort builds: 0 is the root with
// 1 as its only child, and node k >= 1 has children 2k and 2k+1.
func HeapTree(seq sort.Sequence) *utils.TreeNode {
	if len(seq) == 0 {
		return &utils.TreeNode{Label: "(empty)"}
	}
	label := func(i int) string {
		return fmt.Sprintf("[%d] %s", i, formatValue(seq[i].Value))
	}
	root := &utils.TreeNode{Label: label(0)}
	var grow func(node *utils.TreeNode, k int)
	grow = func(node *utils.TreeNode, k int) {
		for _, c := range []int{2 * k, 2*k + 1} {
			if c < len(seq) {
				grow(node.AddChild(label(c)), c)
			}
		}
	}
	if len(seq) > 1 {
		grow(root.AddChild(label(1)), 1)
	}
	return root
}
