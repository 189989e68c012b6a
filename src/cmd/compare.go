package cmd

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sorttrace/src/sort"
)

func CmdCompare() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Action:    compare,
		Category:  "SORT",
		Usage:     "run every algorithm on the same input and compare their traces",
		ArgsUsage: "[VALUE ...]",
		Description: `
Runs each algorithm in turn over the same input and reports how many
snapshots it recorded and roughly how much memory the trace holds.

Examples:
$ sorttrace compare 5 3 4 1 2
$ sorttrace compare --random 500 --seed 42`,
		Flags: inputFlags(),
	}
}

// TraceStat summarises the trace one algorithm produced.
type TraceStat struct {
	Algorithm sort.Algorithm
	Snapshots int
	Bytes     uint64
	Sorted    bool
}

// Compare sorts values with every algorithm, one after another.
func Compare(values []float64) ([]TraceStat, error) {
	stats := make([]TraceStat, 0, len(sort.Algorithms))
	for _, alg := range sort.Algorithms {
		engine := sort.Create(string(alg), values)
		if engine == nil {
			return nil, errors.Wrapf(sort.ErrUnknownAlgorithm, "%q", alg)
		}
		result := engine.Sort()
		rec := engine.Recorder()
		stats = append(stats, TraceStat{
			Algorithm: alg,
			Snapshots: rec.Len(),
			Bytes:     uint64(rec.Size()) * uint64(unsafe.Sizeof(sort.Element{})),
			Sorted:    isSorted(result),
		})
	}
	return stats, nil
}

func isSorted(seq sort.Sequence) bool {
	for i := 1; i < len(seq); i++ {
		if sort.Compare(seq[i], seq[i-1]) < 0 {
			return false
		}
	}
	return true
}

func compare(c *cli.Context) error {
	if err := setup(c, 0); err != nil {
		return err
	}
	values, err := loadValues(c)
	if err != nil {
		return err
	}
	stats, err := Compare(values)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%-12s %10s %10s %s\n", "ALGORITHM", "SNAPSHOTS", "MEMORY", "SORTED")
	for _, s := range stats {
		fmt.Fprintf(w, "%-12s %10d %10s %t\n", s.Algorithm, s.Snapshots, humanize.Bytes(s.Bytes), s.Sorted)
	}
	return nil
}
