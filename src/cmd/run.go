package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sorttrace/src/sort"
)

func algorithmNames() string {
	names := make([]string, len(sort.Algorithms))
	for i, a := range sort.Algorithms {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

func CmdRun() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Action:    run,
		Category:  "SORT",
		Usage:     "sort values and print the recorded trace",
		ArgsUsage: "[VALUE ...]",
		Description: `
Sorts the given numbers with one algorithm and prints every recorded
snapshot, one per animation frame.

Examples:
$ sorttrace run -a quick_sort 5 3 4 1 2
# 20 random values in [10, 300], as JSON
$ sorttrace run -a heap_sort --random 20 --format json
# final array laid out as the heap used by heap_sort
$ sorttrace run -a heap_sort --format heap 9 4 7 1`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   string(sort.InsertSort),
				EnvVars: []string{"SORTTRACE_ALGORITHM"},
				Usage:   fmt.Sprintf("sort algorithm (%s)", algorithmNames()),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				EnvVars: []string{"SORTTRACE_FORMAT"},
				Usage:   "output format (text, json, heap)",
			},
		}, inputFlags()...),
	}
}

func run(c *cli.Context) error {
	if err := setup(c, 0); err != nil {
		return err
	}
	format := c.String("format")
	if !validFormat(format) {
		return errors.Errorf("unknown format %q", format)
	}
	values, err := loadValues(c)
	if err != nil {
		return err
	}

	engine := sort.Create(c.String("algorithm"), values)
	if engine == nil {
		return errors.Wrapf(sort.ErrUnknownAlgorithm, "%q (choose one of %s)", c.String("algorithm"), algorithmNames())
	}
	engine.Sort()
	logger.Infof("%s: %d values, %d snapshots", engine.Algorithm(), len(values), engine.Recorder().Len())

	return errors.Wrap(writeTrace(c.App.Writer, format, engine), "write trace")
}
